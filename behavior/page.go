// Package behavior binds the interactive behaviors of an inventory page
// to a parsed HTML document: table sorting, filtering and export,
// the movement type indicator, clickable rows and the smaller
// page load behaviors like confirmations and keyboard shortcuts.
//
// All behaviors operate on an explicit Page context and react
// to events dispatched on its Bus. Missing DOM hooks are tolerated,
// the affected behavior simply does nothing.
package behavior

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	pagetable "github.com/domonda/go-pagetable"
	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/events"
	"github.com/domonda/go-pagetable/labels"
)

// Page is the context shared by all behaviors of one document.
type Page struct {
	Doc        *dom.Document
	Host       Host
	Config     *pagetable.PageConfig
	Logger     *zap.Logger
	Bus        *events.Bus
	Comparator *pagetable.Comparator
	Labels     *labels.Localizer

	Sorter     *Sorter
	Filter     *Filter
	Exporter   *Exporter
	Indicator  *Indicator
	Rows       *RowActivation
	Validation *FormValidation

	initialized bool
}

// PageOption configures a Page created by NewPage.
type PageOption func(*Page)

// WithConfig sets the configuration of the page.
func WithConfig(config *pagetable.PageConfig) PageOption {
	return func(p *Page) { p.Config = config }
}

// WithLogger sets the logger of the page.
func WithLogger(logger *zap.Logger) PageOption {
	return func(p *Page) { p.Logger = logger }
}

// NewPage returns a Page for doc using the capabilities of host.
// Without options the page uses pagetable.DefaultPageConfig
// and discards all log output.
// The configuration is validated once here.
func NewPage(doc *dom.Document, host Host, options ...PageOption) (*Page, error) {
	p := &Page{
		Doc:    doc,
		Host:   host,
		Config: pagetable.DefaultPageConfig(),
		Logger: zap.NewNop(),
		Bus:    events.NewBus(),
	}
	for _, option := range options {
		option(p)
	}
	if err := p.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid page config: %w", err)
	}
	tag, err := p.Config.LanguageTag()
	if err != nil {
		return nil, err
	}
	p.Comparator = pagetable.NewComparator(tag)
	p.Labels, err = labels.New(tag)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Init binds all behaviors to the document and dispatches
// the Load event. Calling Init again has no effect.
func (p *Page) Init() {
	if p.initialized {
		return
	}
	p.initialized = true

	bindResponsiveTables(p)
	bindAlertAutoClose(p)
	p.Validation = bindFormValidation(p)
	p.Indicator = bindIndicator(p)
	p.Sorter = bindSorter(p)
	p.Filter = bindFilter(p)
	bindConfirmations(p)
	p.Exporter = bindExporter(p)
	bindDashboardRefresh(p)
	bindSubmitLoading(p)
	bindShortcuts(p)
	p.Rows = bindRowActivation(p)

	p.Bus.Dispatch(&events.Load{})
	p.Logger.Info("Page initialized",
		zap.Int("sortableColumns", len(p.Sorter.Columns())),
		zap.Int("activatableRows", len(p.Rows.Rows())),
	)
}

// Click dispatches a click on target at the viewport coordinates x, y
// and performs the default action of the host unless a handler
// prevented it: links navigate and submit buttons submit their form.
// It returns false if the default action was prevented.
// Clicks on disabled buttons are not dispatched at all.
func (p *Page) Click(target *html.Node, x, y float64) bool {
	if button := dom.Closest(target, dom.TagMatcher(atom.Button)); button != nil && dom.HasAttr(button, "disabled") {
		p.Logger.Debug("Ignoring click on disabled button")
		return false
	}
	if !p.Bus.Dispatch(events.NewClick(target, x, y)) {
		return false
	}
	if link := dom.Closest(target, dom.TagMatcher(atom.A)); link != nil {
		if href, ok := dom.Attr(link, "href"); ok {
			p.Host.Navigate(href)
		}
		return true
	}
	if button := dom.Closest(target, isSubmitButton); button != nil {
		if form := dom.Closest(button, dom.TagMatcher(atom.Form)); form != nil {
			p.Submit(form)
		}
	}
	return true
}

// KeyDown dispatches a key press while target has focus.
// It returns false if the default action was prevented.
func (p *Page) KeyDown(target *html.Node, key string, ctrl, meta bool) bool {
	if target == nil {
		target = p.Doc.Root
	}
	return p.Bus.Dispatch(events.NewKeyDown(target, key, ctrl, meta))
}

// TypeInto sets the value of a text field and dispatches an Input event.
func (p *Page) TypeInto(field *html.Node, value string) {
	if !dom.SetFieldValue(field, value) {
		return
	}
	p.Bus.Dispatch(events.NewInput(field, value))
}

// ChangeField commits a new value to a form field and dispatches
// a Change event. It returns false if the field can't hold value,
// in which case no event is dispatched.
func (p *Page) ChangeField(field *html.Node, value string) bool {
	if !dom.SetFieldValue(field, value) {
		return false
	}
	p.Bus.Dispatch(events.NewChange(field, dom.FieldValue(field)))
	return true
}

// Submit dispatches a Submit event on form and passes the form
// to the host if no handler prevented it.
func (p *Page) Submit(form *html.Node) bool {
	if !p.Bus.Dispatch(events.NewSubmit(form)) {
		p.Logger.Debug("Form submission prevented", zap.String("form", dom.AttrOr(form, "id", "")))
		return false
	}
	p.Host.SubmitForm(form)
	return true
}

// PrintReport opens the print dialog of the host.
func (p *Page) PrintReport() {
	p.Host.Print()
}

func isSubmitButton(n *html.Node) bool {
	if !dom.IsTag(n, atom.Button) {
		return false
	}
	// Buttons in forms submit unless declared otherwise
	typ, ok := dom.Attr(n, "type")
	return !ok || typ == "submit"
}
