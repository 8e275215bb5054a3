package dom

import (
	"strings"

	"golang.org/x/net/html"
)

type styleDecl struct {
	prop, value string
}

// propName folds prop to lower case
// unless it is a case-sensitive custom property.
func propName(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	return strings.ToLower(prop)
}

func parseStyle(n *html.Node) (decls []styleDecl) {
	for _, part := range strings.Split(AttrOr(n, "style", ""), ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = propName(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		decls = append(decls, styleDecl{prop: prop, value: strings.TrimSpace(value)})
	}
	return decls
}

// StyleProperty returns the inline style value of prop.
// Property names are case-insensitive.
func StyleProperty(n *html.Node, prop string) string {
	prop = propName(prop)
	for _, d := range parseStyle(n) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// SetStyleProperty sets the inline style value of prop.
// An empty value removes the property,
// an empty style attribute is removed entirely.
func SetStyleProperty(n *html.Node, prop, value string) {
	prop = propName(prop)
	var (
		decls = parseStyle(n)
		out   = decls[:0]
		found bool
	)
	for _, d := range decls {
		if d.prop == prop {
			if found || value == "" {
				continue
			}
			d.value = value
			found = true
		}
		out = append(out, d)
	}
	if !found && value != "" {
		out = append(out, styleDecl{prop: prop, value: value})
	}
	if len(out) == 0 {
		RemoveAttr(n, "style")
		return
	}
	parts := make([]string, len(out))
	for i, d := range out {
		parts[i] = d.prop + ": " + d.value
	}
	SetAttr(n, "style", strings.Join(parts, "; "))
}

// IsHidden reports if n is hidden by an inline display:none style.
func IsHidden(n *html.Node) bool {
	return strings.EqualFold(StyleProperty(n, "display"), "none")
}

// SetHidden hides n with display:none or removes
// the inline display property to show it again.
func SetHidden(n *html.Node, hidden bool) {
	if hidden {
		SetStyleProperty(n, "display", "none")
	} else {
		SetStyleProperty(n, "display", "")
	}
}
