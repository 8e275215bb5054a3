package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	pagetable "github.com/domonda/go-pagetable"
)

// Table binds a <table> element of a document.
// All accessors read the live tree, so they reflect
// any reordering or visibility changes.
type Table struct {
	Node *html.Node
}

// NewTable returns a Table for n or nil if n is not a table element.
func NewTable(n *html.Node) *Table {
	if !IsTag(n, atom.Table) {
		return nil
	}
	return &Table{Node: n}
}

// ClosestTable returns the table that contains n or nil.
func ClosestTable(n *html.Node) *Table {
	return NewTable(Closest(n, TagMatcher(atom.Table)))
}

// TableByID returns the table with the id or nil.
func (d *Document) TableByID(id string) *Table {
	return NewTable(d.ElementByID(id))
}

// Tables returns all tables of the document.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, n := range d.FindAll(TagMatcher(atom.Table)) {
		tables = append(tables, &Table{Node: n})
	}
	return tables
}

// ID returns the id attribute of the table.
func (t *Table) ID() string {
	return AttrOr(t.Node, "id", "")
}

// Owns reports if n belongs to this table and not to a nested one.
func (t *Table) Owns(n *html.Node) bool {
	return Closest(n.Parent, TagMatcher(atom.Table)) == t.Node
}

// Rows returns every row of the table in document order,
// header rows included.
func (t *Table) Rows() []*html.Node {
	return FindAll(t.Node, func(n *html.Node) bool {
		return n.DataAtom == atom.Tr && t.Owns(n)
	})
}

// Body returns the first tbody of the table or nil.
func (t *Table) Body() *html.Node {
	for c := t.Node.FirstChild; c != nil; c = c.NextSibling {
		if IsTag(c, atom.Tbody) {
			return c
		}
	}
	return nil
}

// BodyRows returns the rows of the first tbody in their current order.
func (t *Table) BodyRows() []*html.Node {
	body := t.Body()
	if body == nil {
		return nil
	}
	var rows []*html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if IsTag(c, atom.Tr) {
			rows = append(rows, c)
		}
	}
	return rows
}

// Headers returns the header cells of the table:
// the th cells inside thead or, without thead,
// the th cells of the first row.
func (t *Table) Headers() []*html.Node {
	var headerRows []*html.Node
	for _, row := range t.Rows() {
		if IsTag(row.Parent, atom.Thead) {
			headerRows = append(headerRows, row)
		}
	}
	if len(headerRows) == 0 {
		if rows := t.Rows(); len(rows) > 0 {
			headerRows = rows[:1]
		}
	}
	var headers []*html.Node
	for _, row := range headerRows {
		for _, cell := range Cells(row) {
			if IsTag(cell, atom.Th) {
				headers = append(headers, cell)
			}
		}
	}
	return headers
}

// Cells returns the td and th children of a row.
func Cells(row *html.Node) []*html.Node {
	var cells []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if IsTag(c, atom.Td, atom.Th) {
			cells = append(cells, c)
		}
	}
	return cells
}

// CellIndex returns the index of cell within its row or -1.
func CellIndex(cell *html.Node) int {
	if cell == nil || cell.Parent == nil {
		return -1
	}
	for i, c := range Cells(cell.Parent) {
		if c == cell {
			return i
		}
	}
	return -1
}

// CellTexts returns the text content of every cell of row.
func CellTexts(row *html.Node) []string {
	cells := Cells(row)
	texts := make([]string, len(cells))
	for i, cell := range cells {
		texts[i] = TextContent(cell)
	}
	return texts
}

// Title returns the caption text of the table
// or its id if there is no caption.
func (t *Table) Title() string {
	for c := t.Node.FirstChild; c != nil; c = c.NextSibling {
		if IsTag(c, atom.Caption) {
			return strings.TrimSpace(TextContent(c))
		}
	}
	return t.ID()
}

// View returns a snapshot of all rows, header rows included,
// as a headerless ragged StringsView. Every view row holds
// the cells of the table row at the same index of Rows.
func (t *Table) View() *pagetable.StringsView {
	var rows [][]string
	for _, row := range t.Rows() {
		rows = append(rows, CellTexts(row))
	}
	return pagetable.NewRaggedStringsView(t.Title(), rows)
}

// VisibleView returns the rows of View
// that are not hidden by a filter.
func (t *Table) VisibleView() *pagetable.FilteredView {
	return t.FilteredView(func(row *html.Node) bool { return !IsHidden(row) })
}

// FilteredView returns the rows of View for which keep returns true.
func (t *Table) FilteredView(keep func(row *html.Node) bool) *pagetable.FilteredView {
	rows := t.Rows()
	return pagetable.NewFilteredRowsView(t.View(), func(i int) bool { return keep(rows[i]) })
}
