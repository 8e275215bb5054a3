package pagetable

import "strings"

// Option flags modify how a table is exported.
type Option int

const (
	// OptionVisibleRowsOnly exports only rows not hidden by a filter.
	OptionVisibleRowsOnly Option = 1 << iota
	// OptionWriteBOM prefixes text exports with a UTF-8 byte order mark.
	OptionWriteBOM
)

func (o Option) Has(option Option) bool {
	return o&option != 0
}

func (o Option) String() string {
	var b strings.Builder
	if o.Has(OptionVisibleRowsOnly) {
		b.WriteString("VisibleRowsOnly")
	}
	if o.Has(OptionWriteBOM) {
		if b.Len() > 0 {
			b.WriteString("|")
		}
		b.WriteString("WriteBOM")
	}
	if b.Len() == 0 {
		return "no Option"
	}
	return b.String()
}

func HasOption(options []Option, option Option) bool {
	for _, o := range options {
		if o.Has(option) {
			return true
		}
	}
	return false
}
