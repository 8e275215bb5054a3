package behavior

import (
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/events"
)

const (
	rippleClass  = "ripple"
	animateClass = "animate"
)

// RowConfig describes an activatable table row.
type RowConfig struct {
	Row *html.Node
	// Target is the navigation target of the row.
	// Rows without target are inert.
	Target string
}

// RowActivation navigates to the target of an activatable row
// when it is clicked or the activation key is pressed within it.
type RowActivation struct {
	page *Page
	rows []*RowConfig
}

func bindRowActivation(p *Page) *RowActivation {
	r := &RowActivation{page: p}
	cfg := p.Config.Rows
	for _, row := range p.Doc.FindAll(r.isActivatable) {
		r.rows = append(r.rows, &RowConfig{
			Row:    row,
			Target: dom.AttrOr(row, cfg.TargetAttr, ""),
		})
	}
	p.Bus.Subscribe(events.TypeClick, r.onClick)
	p.Bus.Subscribe(events.TypeKeyDown, r.onKeyDown)
	return r
}

func (r *RowActivation) isActivatable(n *html.Node) bool {
	return dom.IsTag(n, atom.Tr) && dom.HasClass(n, r.page.Config.Rows.ActivatableClass)
}

// Rows returns the activatable rows found at initialization.
func (r *RowActivation) Rows() []*RowConfig {
	return r.rows
}

// Row returns the config of the activatable row containing n or nil.
func (r *RowActivation) Row(n *html.Node) *RowConfig {
	row := dom.Closest(n, r.isActivatable)
	if row == nil {
		return nil
	}
	for _, cfg := range r.rows {
		if cfg.Row == row {
			return cfg
		}
	}
	return nil
}

func (r *RowActivation) onClick(ev events.Event) {
	// Interactive elements handle their own activation
	if dom.Closest(ev.Target(), dom.IsInteractive) != nil {
		return
	}
	cfg := r.Row(ev.Target())
	if cfg == nil || cfg.Target == "" {
		return
	}
	click := ev.(*events.Click)
	r.ripple(cfg.Row, click.ClientX, click.ClientY)
	r.navigate(cfg)
}

func (r *RowActivation) onKeyDown(ev events.Event) {
	if ev.(*events.KeyDown).Key != r.page.Config.Rows.ActivationKey {
		return
	}
	cfg := r.Row(ev.Target())
	if cfg == nil || cfg.Target == "" {
		return
	}
	r.navigate(cfg)
}

// ripple restarts the ripple animation of row
// centered at the viewport coordinates x, y.
func (r *RowActivation) ripple(row *html.Node, x, y float64) {
	rect := r.page.Host.BoundingRect(row)
	dom.AddClass(row, rippleClass)
	dom.SetStyleProperty(row, "--ripple-x", px(x-rect.Left))
	dom.SetStyleProperty(row, "--ripple-y", px(y-rect.Top))
	dom.RemoveClass(row, animateClass)
	r.page.Host.Reflow(row)
	dom.AddClass(row, animateClass)
}

func (r *RowActivation) navigate(cfg *RowConfig) {
	r.page.Logger.Debug("Row activated", zap.String("target", cfg.Target))
	r.page.Host.Navigate(cfg.Target)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
