package behavior

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/events"
)

const confirmAttr = "data-confirm"

// bindConfirmations asks the host to confirm clicks on elements
// with a data-confirm attribute and prevents the default action
// of the click if the user declines.
func bindConfirmations(p *Page) {
	p.Bus.Subscribe(events.TypeClick, func(ev events.Event) {
		el := dom.Closest(ev.Target(), func(n *html.Node) bool { return dom.HasAttr(n, confirmAttr) })
		if el == nil {
			return
		}
		message := dom.AttrOr(el, confirmAttr, "")
		if message == "" {
			message = p.Config.ConfirmMessage
		}
		if !p.Host.Confirm(message) {
			p.Logger.Debug("Action not confirmed", zap.String("message", message))
			ev.PreventDefault()
		}
	})
}

// bindShortcuts follows the first add link on Ctrl/Cmd+N
// and the first back link on Escape.
func bindShortcuts(p *Page) {
	if !p.Config.Shortcuts {
		return
	}
	p.Bus.Subscribe(events.TypeKeyDown, func(ev events.Event) {
		key := ev.(*events.KeyDown)
		switch {
		case (key.Ctrl || key.Meta) && key.Key == "n":
			ev.PreventDefault()
			if link := firstLinkContaining(p.Doc, "/add"); link != nil {
				p.Click(link, 0, 0)
			}
		case key.Key == "Escape":
			if link := firstLinkContaining(p.Doc, "back"); link != nil {
				p.Click(link, 0, 0)
			}
		}
	})
}

func firstLinkContaining(doc *dom.Document, s string) *html.Node {
	return doc.First(func(n *html.Node) bool {
		href, ok := dom.Attr(n, "href")
		return ok && dom.IsTag(n, atom.A) && strings.Contains(href, s)
	})
}

// bindResponsiveTables wraps every table that is not yet
// inside a responsive container into one when the page loads.
func bindResponsiveTables(p *Page) {
	class := p.Config.ResponsiveClass
	if class == "" {
		return
	}
	p.Bus.Subscribe(events.TypeLoad, func(events.Event) {
		for _, table := range p.Doc.Tables() {
			if table.Node.Parent == nil || dom.Closest(table.Node.Parent, dom.ClassMatcher(class)) != nil {
				continue
			}
			dom.Wrap(table.Node, dom.NewElement(atom.Div, html.Attribute{Key: "class", Val: class}))
		}
	})
}

// bindAlertAutoClose removes dismissible alerts after the configured delay.
func bindAlertAutoClose(p *Page) {
	cfg := p.Config.Alerts
	if cfg.AutoClose <= 0 || cfg.DismissibleClass == "" {
		return
	}
	p.Bus.Subscribe(events.TypeLoad, func(events.Event) {
		for _, alert := range p.Doc.FindAll(dom.ClassMatcher(cfg.DismissibleClass)) {
			p.Host.SetTimeout(cfg.AutoClose, func() {
				dom.Detach(alert)
			})
		}
	})
}

// bindDashboardRefresh reloads the dashboard page periodically
// while it is visible.
func bindDashboardRefresh(p *Page) {
	cfg := p.Config.Dashboard
	if cfg.Refresh <= 0 {
		return
	}
	p.Bus.Subscribe(events.TypeLoad, func(events.Event) {
		if p.Host.Path() != cfg.Path {
			return
		}
		p.Host.SetInterval(cfg.Refresh, func() {
			if !p.Host.Hidden() {
				p.Host.Reload()
			}
		})
	})
}
