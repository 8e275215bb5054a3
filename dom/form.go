package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FieldValue returns the current value of an input,
// textarea or select element.
// A select without selected option has the value of its first option.
func FieldValue(n *html.Node) string {
	switch {
	case IsTag(n, atom.Input):
		return AttrOr(n, "value", "")
	case IsTag(n, atom.Textarea):
		return TextContent(n)
	case IsTag(n, atom.Select):
		options := FindAll(n, TagMatcher(atom.Option))
		for _, o := range options {
			if HasAttr(o, "selected") {
				return optionValue(o)
			}
		}
		if len(options) > 0 {
			return optionValue(options[0])
		}
	}
	return ""
}

// SetFieldValue sets the value of an input, textarea or select element.
// For a select the first option with the value becomes selected,
// false is returned if no such option exists or n is not a form field.
func SetFieldValue(n *html.Node, value string) bool {
	switch {
	case IsTag(n, atom.Input):
		SetAttr(n, "value", value)
		return true
	case IsTag(n, atom.Textarea):
		SetText(n, value)
		return true
	case IsTag(n, atom.Select):
		options := FindAll(n, TagMatcher(atom.Option))
		index := -1
		for i, o := range options {
			if optionValue(o) == value {
				index = i
				break
			}
		}
		if index < 0 {
			return false
		}
		for i, o := range options {
			if i == index {
				SetAttr(o, "selected", "")
			} else {
				RemoveAttr(o, "selected")
			}
		}
		return true
	}
	return false
}

func optionValue(o *html.Node) string {
	if v, ok := Attr(o, "value"); ok {
		return v
	}
	return strings.Join(strings.Fields(TextContent(o)), " ")
}

// FormFields returns the input, select and textarea
// elements of a form in document order.
func FormFields(form *html.Node) []*html.Node {
	return FindAll(form, TagMatcher(atom.Input, atom.Select, atom.Textarea))
}
