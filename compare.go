package pagetable

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ordering is the result of comparing two cell values.
type Ordering int

const (
	Before Ordering = -1
	Equal  Ordering = 0
	After  Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Before:
		return "before"
	case Equal:
		return "equal"
	case After:
		return "after"
	}
	return "invalid Ordering"
}

// Comparator orders cell values using locale-aware
// lexical string comparison.
// Values are never interpreted as numbers or dates.
//
// A Comparator is not safe for concurrent use.
type Comparator struct {
	lang     language.Tag
	collator *collate.Collator
}

// NewComparator returns a Comparator collating for lang.
func NewComparator(lang language.Tag) *Comparator {
	return &Comparator{lang: lang, collator: collate.New(lang)}
}

// Language returns the collation language.
func (c *Comparator) Language() language.Tag {
	return c.lang
}

// Compare returns the ordering of a relative to b for the passed direction.
// SortDescending mirrors SortAscending by swapping the operands,
// SortUnset compares like SortAscending.
func (c *Comparator) Compare(a, b string, dir SortDirection) Ordering {
	if dir == SortDescending {
		a, b = b, a
	}
	switch r := c.collator.CompareString(a, b); {
	case r < 0:
		return Before
	case r > 0:
		return After
	}
	return Equal
}
