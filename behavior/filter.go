package behavior

import (
	"go.uber.org/zap"
	"golang.org/x/net/html"

	pagetable "github.com/domonda/go-pagetable"
	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/events"
)

// Filter hides the body rows of a table
// that don't contain the text typed into the search input.
type Filter struct {
	page  *Page
	input *html.Node
	table *dom.Table
}

func bindFilter(p *Page) *Filter {
	f := &Filter{page: p, input: p.Doc.ElementByID(p.Config.Search.InputID)}
	if f.input == nil {
		return f
	}
	if id, ok := dom.Attr(f.input, p.Config.Search.TableAttr); ok && p.Config.Search.TableAttr != "" {
		f.table = p.Doc.TableByID(id)
	} else {
		for _, table := range p.Doc.Tables() {
			if table.Body() != nil {
				f.table = table
				break
			}
		}
	}
	if f.table == nil {
		p.Logger.Debug("Search input without table", zap.String("input", p.Config.Search.InputID))
		return f
	}
	p.Bus.Subscribe(events.TypeInput, f.onInput)
	return f
}

// Input returns the bound search input or nil.
func (f *Filter) Input() *html.Node { return f.input }

// Table returns the filtered table or nil.
func (f *Filter) Table() *dom.Table { return f.table }

func (f *Filter) onInput(ev events.Event) {
	if ev.Target() != f.input {
		return
	}
	f.Filter(f.table, ev.(*events.Input).Value)
}

// Filter shows the body rows of table whose text contains term
// ignoring case and hides all others.
// An empty term shows every row.
// Rows are never reordered or removed.
func (f *Filter) Filter(table *dom.Table, term string) {
	if table == nil {
		return
	}
	visible := 0
	for _, row := range table.BodyRows() {
		match := pagetable.MatchesFilter(dom.TextContent(row), term)
		dom.SetHidden(row, !match)
		if match {
			visible++
		}
	}
	f.page.Logger.Debug("Filtered table",
		zap.String("table", table.ID()),
		zap.String("term", term),
		zap.Int("visible", visible),
	)
}
