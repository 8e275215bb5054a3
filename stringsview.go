package pagetable

import (
	"strings"
)

// StringsView is a View implementation that uses strings as cell values.
// It is the snapshot type produced from rendered table markup.
//
// The Cols field defines the column names and determines the number of columns.
// A row within Rows can have fewer elements than Cols,
// in which case empty strings are returned for the missing cells.
//
// Example:
//
//	view := pagetable.NewStringsView(
//	    "Products",
//	    [][]string{
//	        {"SKU", "Name", "Location"},
//	        {"W-1", "Widget", "Shelf A"},
//	        {"G-2", "Gadget", "Shelf B"},
//	    },
//	)
//	fmt.Println(view.Cell(0, 1)) // Output: Widget
type StringsView struct {
	// Tit is the title of this view, returned by the Title() method.
	Tit string

	// Cols contains the column names defining both the column headers
	// and the number of columns in this view.
	Cols []string

	// Rows contains the data rows, where each row is a slice of strings.
	Rows [][]string

	// Ragged rows report their own length from RowLen
	// instead of being padded to the number of columns.
	Ragged bool
}

var (
	_ View     = new(StringsView)
	_ RowLener = new(StringsView)
)

// NewStringsView creates a new StringsView.
//
// If no cols are passed and rows is not empty, then the first row
// is used as column names and removed from the data rows.
// All column names have leading and trailing whitespace trimmed.
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = append([]string(nil), rows[0]...)
		rows = rows[1:]
	}
	for i, col := range cols {
		cols[i] = strings.TrimSpace(col)
	}
	return &StringsView{Tit: title, Cols: cols, Rows: rows}
}

// NewRaggedStringsView creates a Ragged StringsView without a header
// where the number of columns is the length of the longest row.
// The column names are empty strings.
func NewRaggedStringsView(title string, rows [][]string) *StringsView {
	numCols := 0
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	return &StringsView{Tit: title, Cols: make([]string, numCols), Rows: rows, Ragged: true}
}

// Title returns the title of this view.
func (view *StringsView) Title() string { return view.Tit }

// Columns returns the column names of this view.
func (view *StringsView) Columns() []string { return view.Cols }

// NumRows returns the number of data rows in this view.
func (view *StringsView) NumRows() int { return len(view.Rows) }

// RowLen returns the number of cells of row.
// Rows of a view that is not Ragged have as many cells as columns.
func (view *StringsView) RowLen(row int) int {
	if row < 0 || row >= len(view.Rows) {
		return 0
	}
	if !view.Ragged {
		return len(view.Cols)
	}
	return min(len(view.Rows[row]), len(view.Cols))
}

// Cell returns the string at [row][col],
// an empty string if the row has fewer columns,
// or nil if row or col are out of bounds.
func (view *StringsView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return nil
	}
	if col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}

// NewHeaderViewFrom creates a HeaderView from the title
// and columns of an existing View.
func NewHeaderViewFrom(source View) *HeaderView {
	return &HeaderView{Tit: source.Title(), Cols: source.Columns()}
}

// HeaderView is a View with exactly one row
// holding the column names as values.
type HeaderView struct {
	Tit  string
	Cols []string
}

var _ View = new(HeaderView)

func (view *HeaderView) Title() string     { return view.Tit }
func (view *HeaderView) Columns() []string { return view.Cols }
func (view *HeaderView) NumRows() int      { return 1 }

func (view *HeaderView) Cell(row, col int) any {
	if row != 0 || col < 0 || col >= len(view.Cols) {
		return nil
	}
	return view.Cols[col]
}
