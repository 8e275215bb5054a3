package behavior

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	pagetable "github.com/domonda/go-pagetable"
	"github.com/domonda/go-pagetable/dom"
	"github.com/domonda/go-pagetable/events"
)

// ColumnConfig describes one sortable column.
type ColumnConfig struct {
	// Key names the column and the data-<key> cell attribute
	// holding canonical sort values.
	Key string
	// Index of the header cell within its row.
	Index  int
	Header *html.Node
	Table  *dom.Table
}

// Direction returns the sort direction persisted on the header.
func (c *ColumnConfig) Direction(orderAttr string) pagetable.SortDirection {
	return pagetable.ParseSortDirection(dom.AttrOr(c.Header, orderAttr, ""))
}

// Sorter reorders table body rows when a sortable header is clicked.
type Sorter struct {
	page    *Page
	columns []*ColumnConfig
}

func bindSorter(p *Page) *Sorter {
	s := &Sorter{page: p}
	keyAttr := p.Config.Sort.KeyAttr
	headers := p.Doc.FindAll(func(n *html.Node) bool {
		return dom.IsTag(n, atom.Th) && dom.HasAttr(n, keyAttr)
	})
	for _, header := range headers {
		table := dom.ClosestTable(header)
		if table == nil {
			continue
		}
		s.columns = append(s.columns, &ColumnConfig{
			Key:    dom.AttrOr(header, keyAttr, ""),
			Index:  dom.CellIndex(header),
			Header: header,
			Table:  table,
		})
		dom.SetStyleProperty(header, "cursor", "pointer")
	}
	p.Bus.Subscribe(events.TypeClick, s.onClick)
	return s
}

// Columns returns the sortable columns of all tables in document order.
func (s *Sorter) Columns() []*ColumnConfig {
	return s.columns
}

// Column returns the column of table with key or nil.
func (s *Sorter) Column(table *dom.Table, key string) *ColumnConfig {
	if table == nil {
		return nil
	}
	for _, col := range s.columns {
		if col.Table.Node == table.Node && col.Key == key {
			return col
		}
	}
	return nil
}

func (s *Sorter) onClick(ev events.Event) {
	header := dom.Closest(ev.Target(), dom.TagMatcher(atom.Th))
	if header == nil {
		return
	}
	for _, col := range s.columns {
		if col.Header == header {
			s.sort(col)
			return
		}
	}
}

// SortTableBy sorts the body rows of table by the column with key
// in the toggled direction of the column.
// Unknown columns are ignored.
func (s *Sorter) SortTableBy(table *dom.Table, key string) {
	col := s.Column(table, key)
	if col == nil {
		s.page.Logger.Debug("No sortable column", zap.String("key", key))
		return
	}
	s.sort(col)
}

func (s *Sorter) sort(col *ColumnConfig) {
	cfg := s.page.Config.Sort
	dir := col.Direction(cfg.OrderAttr).Toggled()

	if body := col.Table.Body(); body != nil {
		rows := col.Table.BodyRows()
		pagetable.SortStable(rows, s.sortValue(col), dir, s.page.Comparator)
		for _, row := range rows {
			body.RemoveChild(row)
			body.AppendChild(row)
		}
	}

	dom.SetAttr(col.Header, cfg.OrderAttr, dir.Attr())
	for _, other := range s.columns {
		if other.Table.Node == col.Table.Node {
			dom.RemoveClass(other.Header, cfg.ClassPrefix+"asc", cfg.ClassPrefix+"desc")
		}
	}
	dom.AddClass(col.Header, cfg.ClassPrefix+dir.Attr())

	s.page.Logger.Debug("Sorted table",
		zap.String("table", col.Table.ID()),
		zap.String("column", col.Key),
		zap.Stringer("direction", dir),
	)
}

// sortValue returns the func extracting the sort value of a row:
// the cell carrying the data-<key> attribute with its non-empty value
// or its text, else the text of the cell below the header,
// else an empty string.
func (s *Sorter) sortValue(col *ColumnConfig) func(*html.Node) string {
	// attribute names are lower case in parsed HTML
	attr := "data-" + strings.ToLower(col.Key)
	return func(row *html.Node) string {
		cells := dom.Cells(row)
		for _, cell := range cells {
			if v, ok := dom.Attr(cell, attr); ok {
				if v != "" {
					return v
				}
				return strings.TrimSpace(dom.TextContent(cell))
			}
		}
		if col.Index >= 0 && col.Index < len(cells) {
			return strings.TrimSpace(dom.TextContent(cells[col.Index]))
		}
		return ""
	}
}
