package pagetable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func ExampleNewStringsView() {
	view := NewStringsView(
		"Products",
		[][]string{
			{"SKU", "Name", "Location"},
			{"W-1", "Widget", "Shelf A"},
			{"G-2", "Gadget"},
		},
	)
	fmt.Println(view.Columns())
	fmt.Println(ViewRows(view, false))
	// Output:
	// [SKU Name Location]
	// [[W-1 Widget Shelf A] [G-2 Gadget ]]
}

func TestViewRows(t *testing.T) {
	view := NewStringsView("T", [][]string{{"1", "2"}, {"3"}}, " A ", "B")
	require.Equal(t, []string{"A", "B"}, view.Columns())
	require.Equal(t, [][]string{{"A", "B"}, {"1", "2"}, {"3", ""}}, ViewRows(view, true))
	require.Nil(t, view.Cell(2, 0))
	require.Nil(t, view.Cell(0, 2))
	require.Nil(t, view.Cell(-1, 0))
}

func TestNewRaggedStringsView(t *testing.T) {
	view := NewRaggedStringsView("T", [][]string{{"a"}, {"b", "c", "d"}, {}})
	require.Len(t, view.Columns(), 3)
	require.Equal(t, 3, view.NumRows())
	require.Equal(t, [][]string{{"a", "", ""}, {"b", "c", "d"}, {"", "", ""}}, ViewRows(view, false))
}

func TestRowLen(t *testing.T) {
	ragged := NewRaggedStringsView("T", [][]string{{"a"}, {"b", "c", "d"}, {}})
	padded := NewStringsView("T", [][]string{{"1"}}, "A", "B")
	tests := []struct {
		name string
		view View
		row  int
		want int
	}{
		{name: "ragged short row", view: ragged, row: 0, want: 1},
		{name: "ragged full row", view: ragged, row: 1, want: 3},
		{name: "ragged empty row", view: ragged, row: 2, want: 0},
		{name: "out of bounds", view: ragged, row: 3, want: 0},
		{name: "padded", view: padded, row: 0, want: 2},
		{name: "header", view: NewHeaderViewFrom(padded), row: 0, want: 2},
		{name: "filtered ragged", view: NewFilteredRowsView(ragged, func(row int) bool { return row != 1 }), row: 0, want: 1},
		{name: "column mapping", view: &FilteredView{Source: ragged, ColumnMapping: []int{1, 0}}, row: 0, want: 2},
		{name: "with title", view: ViewWithTitle(ragged, "X"), row: 1, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RowLen(tt.view, tt.row))
		})
	}
	require.Equal(t, []string{"a"}, RowStrings(ragged, 0))
	require.Equal(t, []string{"1", ""}, RowStrings(padded, 0))
}

func TestFilteredView(t *testing.T) {
	data := NewStringsView("T", [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}}, "Name", "Qty")

	rows := NewFilteredRowsView(data, func(row int) bool { return row != 1 })
	require.Equal(t, [][]string{{"a", "1"}, {"c", "3"}}, ViewRows(rows, false))

	cols := &FilteredView{Source: data, ColumnMapping: []int{1, 0}}
	require.Equal(t, []string{"Qty", "Name"}, cols.Columns())
	require.Equal(t, "2", cols.Cell(1, 0))
	require.Nil(t, cols.Cell(3, 0))
}

func TestViewWithTitle(t *testing.T) {
	data := NewStringsView("T", nil, "A")
	view := ViewWithTitle(data, "Renamed")
	require.Equal(t, "Renamed", view.Title())
	require.Equal(t, []string{"A"}, view.Columns())
}

type stringer int

func (s stringer) String() string { return fmt.Sprintf("#%d", int(s)) }

type anyView struct{ cells []any }

func (v anyView) Title() string       { return "" }
func (v anyView) Columns() []string   { return make([]string, len(v.cells)) }
func (v anyView) NumRows() int        { return 1 }
func (v anyView) Cell(_, col int) any { return v.cells[col] }

func TestCellString(t *testing.T) {
	view := anyView{cells: []any{nil, "s", stringer(3), 42}}
	require.Equal(t, []string{"", "s", "#3", ""}, ViewRows(view, false)[0])
}
