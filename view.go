package pagetable

// View is a read-only snapshot of tabular data.
//
// Views decouple the table markup of a page from the
// formats a table can be exported or previewed as.
type View interface {
	// Title of the view, used as caption or sheet name.
	Title() string
	// Columns returns the column titles
	// which also define the number of columns.
	Columns() []string
	// NumRows returns the number of data rows.
	NumRows() int
	// Cell returns the value at row and col
	// or nil if the indices are out of bounds.
	Cell(row, col int) any
}

// CellString returns the cell at row and col as string.
// Out of bounds and nil cells are returned as empty string.
func CellString(view View, row, col int) string {
	switch v := view.Cell(row, col).(type) {
	case nil:
		return ""
	case string:
		return v
	case interface{ String() string }:
		return v.String()
	default:
		return ""
	}
}

// ViewRows returns all data rows of a view as strings.
// If addHeaderRow is true then the column titles
// are returned as first row.
func ViewRows(view View, addHeaderRow bool) [][]string {
	numCols := len(view.Columns())
	rows := make([][]string, 0, view.NumRows()+1)
	if addHeaderRow {
		rows = append(rows, append([]string(nil), view.Columns()...))
	}
	for row := 0; row < view.NumRows(); row++ {
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col] = CellString(view, row, col)
		}
		rows = append(rows, rowStrs)
	}
	return rows
}

// RowLener is implemented by views whose rows
// can hold fewer cells than the view has columns.
type RowLener interface {
	// RowLen returns the number of cells of row.
	RowLen(row int) int
}

// RowLen returns the number of cells of row,
// which is the number of columns unless
// the view implements RowLener.
func RowLen(view View, row int) int {
	if r, ok := view.(RowLener); ok {
		return r.RowLen(row)
	}
	return len(view.Columns())
}

// RowStrings returns the RowLen cells of row as strings.
func RowStrings(view View, row int) []string {
	strs := make([]string, RowLen(view, row))
	for col := range strs {
		strs[col] = CellString(view, row, col)
	}
	return strs
}
