package htmltable

import (
	"fmt"
	"html/template"
	"strings"
)

// CellFormatter formats the string value of a cell as HTML.
// The returned HTML is not escaped any further.
type CellFormatter func(row int, value string) template.HTML

var (
	// HTMLCodeCellFormatter wraps the escaped value in a code element.
	HTMLCodeCellFormatter CellFormatter = func(row int, value string) template.HTML {
		return template.HTML("<code>" + template.HTMLEscapeString(value) + "</code>") //#nosec G203
	}
)

// HTMLAnchorCellFormatter returns a CellFormatter that renders the value
// as link to the URL returned by href for the row.
// Rows for which href returns an empty string are rendered as text.
func HTMLAnchorCellFormatter(href func(row int, value string) string) CellFormatter {
	return func(row int, value string) template.HTML {
		text := template.HTMLEscapeString(value)
		url := href(row, value)
		if url == "" {
			return template.HTML(text) //#nosec G203
		}
		return template.HTML(fmt.Sprintf("<a href='%s'>%s</a>", template.HTMLEscapeString(url), text)) //#nosec G203
	}
}

// HTMLSpanClassCellFormatter formats the cell value within an HTML span element
// with the passed class.
func HTMLSpanClassCellFormatter(class string) CellFormatter {
	return func(row int, value string) template.HTML {
		text := template.HTMLEscapeString(value)
		return template.HTML(fmt.Sprintf("<span class='%s'>%s</span>", template.HTMLEscapeString(class), text)) //#nosec G203
	}
}

func attrs(keyVals ...string) template.HTMLAttr {
	var b strings.Builder
	for i := 0; i+1 < len(keyVals); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, `%s="%s"`, keyVals[i], template.HTMLEscapeString(keyVals[i+1]))
	}
	return template.HTMLAttr(b.String()) //#nosec G203
}
