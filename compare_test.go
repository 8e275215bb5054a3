package pagetable

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestComparator_Compare(t *testing.T) {
	cmp := NewComparator(language.English)
	tests := []struct {
		name string
		a, b string
		dir  SortDirection
		want Ordering
	}{
		{name: "ascending before", a: "apple", b: "banana", dir: SortAscending, want: Before},
		{name: "ascending after", a: "banana", b: "apple", dir: SortAscending, want: After},
		{name: "descending swaps", a: "apple", b: "banana", dir: SortDescending, want: After},
		{name: "unset like ascending", a: "apple", b: "banana", dir: SortUnset, want: Before},
		{name: "equal", a: "Shelf", b: "Shelf", dir: SortAscending, want: Equal},
		{name: "equal descending", a: "Shelf", b: "Shelf", dir: SortDescending, want: Equal},
		{name: "empty first", a: "", b: "a", dir: SortAscending, want: Before},
		{name: "empty last descending", a: "", b: "a", dir: SortDescending, want: After},
		{name: "case insensitive primary", a: "apple", b: "Banana", dir: SortAscending, want: Before},
		{name: "lexical not numeric", a: "10", b: "9", dir: SortAscending, want: Before},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, cmp.Compare(tt.a, tt.b, tt.dir))
		})
	}
}

func TestComparator_Language(t *testing.T) {
	require.Equal(t, language.German, NewComparator(language.German).Language())
}

func TestSortStable(t *testing.T) {
	type item struct {
		name string
		pos  int
	}
	cmp := NewComparator(language.English)
	key := func(i item) string { return i.name }

	t.Run("ascending keeps ties in order", func(t *testing.T) {
		rows := []item{{"b", 0}, {"a", 1}, {"b", 2}, {"a", 3}}
		SortStable(rows, key, SortAscending, cmp)
		require.Equal(t, []item{{"a", 1}, {"a", 3}, {"b", 0}, {"b", 2}}, rows)
	})

	t.Run("descending keeps ties in order", func(t *testing.T) {
		rows := []item{{"a", 0}, {"b", 1}, {"a", 2}, {"b", 3}}
		SortStable(rows, key, SortDescending, cmp)
		require.Equal(t, []item{{"b", 1}, {"b", 3}, {"a", 0}, {"a", 2}}, rows)
	})

	t.Run("key computed once per row", func(t *testing.T) {
		rows := []item{{"c", 0}, {"a", 1}, {"b", 2}}
		calls := 0
		SortStable(rows, func(i item) string { calls++; return i.name }, SortAscending, cmp)
		require.Equal(t, 3, calls)
		require.Equal(t, "a", rows[0].name)
	})

	t.Run("empty", func(t *testing.T) {
		var rows []item
		SortStable(rows, key, SortAscending, cmp)
		require.Empty(t, rows)
	})
}

func TestSortDirection(t *testing.T) {
	require.Equal(t, SortDescending, SortUnset.Toggled())
	require.Equal(t, SortDescending, SortAscending.Toggled())
	require.Equal(t, SortAscending, SortDescending.Toggled())

	for _, dir := range []SortDirection{SortUnset, SortAscending, SortDescending} {
		require.Equal(t, dir, ParseSortDirection(dir.Attr()), dir.String())
	}
	require.Equal(t, SortUnset, ParseSortDirection("ASC"))
	require.Equal(t, "SortDirection(7)", SortDirection(7).String())
}
