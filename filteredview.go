package pagetable

var (
	_ View     = new(FilteredView)
	_ RowLener = new(FilteredView)
)

// FilteredView selects and reorders rows and columns of a Source view
// without copying cell data.
type FilteredView struct {
	Source View
	// If not nil then the view has as many
	// rows as RowMapping has elements and
	// every element is a row index into the Source view.
	// If nil then all Source rows are used.
	RowMapping []int
	// If not nil then the view has as many
	// columns as ColumnMapping has elements and
	// every element is a column index into the Source view.
	// If nil then the view has as many columns as the Source view.
	ColumnMapping []int
}

// NewFilteredRowsView returns a FilteredView of the source
// rows for which keep returns true.
func NewFilteredRowsView(source View, keep func(row int) bool) *FilteredView {
	mapping := make([]int, 0, source.NumRows())
	for row := 0; row < source.NumRows(); row++ {
		if keep(row) {
			mapping = append(mapping, row)
		}
	}
	return &FilteredView{Source: source, RowMapping: mapping}
}

func (view *FilteredView) Title() string {
	return view.Source.Title()
}

func (view *FilteredView) Columns() []string {
	sourceCols := view.Source.Columns()
	if view.ColumnMapping == nil {
		return sourceCols
	}
	mappedCols := make([]string, len(view.ColumnMapping))
	for i, iSource := range view.ColumnMapping {
		if iSource >= 0 && iSource < len(sourceCols) {
			mappedCols[i] = sourceCols[iSource]
		}
	}
	return mappedCols
}

func (view *FilteredView) NumRows() int {
	if view.RowMapping != nil {
		return len(view.RowMapping)
	}
	return view.Source.NumRows()
}

// RowLen returns the number of cells of the mapped source row
// or the number of mapped columns if ColumnMapping is set.
func (view *FilteredView) RowLen(row int) int {
	if row < 0 || row >= view.NumRows() {
		return 0
	}
	if view.ColumnMapping != nil {
		return len(view.ColumnMapping)
	}
	if view.RowMapping != nil {
		row = view.RowMapping[row]
	}
	return RowLen(view.Source, row)
}

func (view *FilteredView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= view.NumRows() || col >= len(view.Columns()) {
		return nil
	}
	if view.RowMapping != nil {
		row = view.RowMapping[row]
	}
	if view.ColumnMapping != nil {
		col = view.ColumnMapping[col]
	}
	return view.Source.Cell(row, col)
}
