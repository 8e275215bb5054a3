package behavior

import (
	"html/template"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	pagetable "github.com/domonda/go-pagetable"
	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/events"
)

// Indicator shows the movement type derived from
// the from and to location fields of a movement form.
type Indicator struct {
	page    *Page
	from    *html.Node
	to      *html.Node
	display *html.Node
}

func bindIndicator(p *Page) *Indicator {
	cfg := p.Config.Indicator
	i := &Indicator{
		page:    p,
		from:    p.Doc.ElementByID(cfg.FromID),
		to:      p.Doc.ElementByID(cfg.ToID),
		display: p.Doc.ElementByID(cfg.DisplayID),
	}
	if i.from == nil || i.to == nil {
		return i
	}
	p.Bus.Subscribe(events.TypeChange, func(ev events.Event) {
		if ev.Target() == i.from || ev.Target() == i.to {
			i.UpdateIndicator(i.from, i.to)
		}
	})
	p.Bus.Subscribe(events.TypeLoad, func(events.Event) {
		i.UpdateIndicator(i.from, i.to)
	})
	return i
}

// Bound reports if both location fields exist.
func (i *Indicator) Bound() bool {
	return i.from != nil && i.to != nil
}

// Classification returns the classification of the current field values.
func (i *Indicator) Classification() pagetable.Classification {
	if !i.Bound() {
		return pagetable.NoClassification
	}
	return pagetable.Classify(dom.FieldValue(i.from), dom.FieldValue(i.to))
}

// UpdateIndicator classifies the values of the from and to fields
// and renders the result into the display element if there is one.
// The display element is shown only for a classification.
func (i *Indicator) UpdateIndicator(from, to *html.Node) pagetable.Classification {
	c := pagetable.Classify(dom.FieldValue(from), dom.FieldValue(to))
	i.page.Logger.Debug("Movement type", zap.Stringer("classification", c))
	if i.display == nil {
		return c
	}

	dom.SetAttr(i.display, "class", strings.TrimSpace("alert "+c.AlertClass()))
	content := `<i class="fas fa-info-circle"></i> ` +
		template.HTMLEscapeString(i.page.Labels.MovementType()) +
		`: <strong>` + template.HTMLEscapeString(i.page.Labels.Classification(c)) + `</strong>`
	if err := dom.SetInnerHTML(i.display, content); err != nil {
		i.page.Logger.Warn("Can't render movement type", zap.Error(err))
	}
	if c == pagetable.NoClassification {
		dom.SetStyleProperty(i.display, "display", "none")
	} else {
		dom.SetStyleProperty(i.display, "display", "block")
	}
	return c
}
