package pagetable

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchesFilter reports if text contains term ignoring case.
// An empty term matches every text.
func MatchesFilter(text, term string) bool {
	if term == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(text), fold.String(term))
}
