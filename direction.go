package pagetable

import "fmt"

// SortDirection is the per-column sort state.
type SortDirection int

const (
	SortUnset SortDirection = iota
	SortAscending
	SortDescending
)

// ParseSortDirection parses the value of a data-order attribute.
// Any value other than "asc" or "desc" is SortUnset.
func ParseSortDirection(s string) SortDirection {
	switch s {
	case "asc":
		return SortAscending
	case "desc":
		return SortDescending
	}
	return SortUnset
}

// Toggled returns the direction the next sort invocation uses.
// An unset direction counts as ascending,
// so the first sort of a column is descending.
func (d SortDirection) Toggled() SortDirection {
	if d == SortDescending {
		return SortAscending
	}
	return SortDescending
}

// Attr returns the data-order attribute value of the direction.
func (d SortDirection) Attr() string {
	switch d {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	}
	return ""
}

func (d SortDirection) String() string {
	switch d {
	case SortUnset:
		return "unset"
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	}
	return fmt.Sprintf("SortDirection(%d)", int(d))
}
