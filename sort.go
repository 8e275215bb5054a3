package pagetable

import "slices"

// SortStable sorts rows in place by the string returned from key
// using cmp in direction dir.
// Rows with equal keys keep their relative order.
// The key of every row is computed exactly once.
func SortStable[R any](rows []R, key func(R) string, dir SortDirection, cmp *Comparator) {
	type keyed struct {
		row R
		key string
	}
	tmp := make([]keyed, len(rows))
	for i, row := range rows {
		tmp[i] = keyed{row: row, key: key(row)}
	}
	slices.SortStableFunc(tmp, func(a, b keyed) int {
		return int(cmp.Compare(a.key, b.key, dir))
	})
	for i := range tmp {
		rows[i] = tmp[i].row
	}
}
