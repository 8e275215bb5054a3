package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attr returns the value of the attribute key
// and if the attribute is present on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrOr returns the value of the attribute key or def if absent.
func AttrOr(n *html.Node, key, def string) string {
	if v, ok := Attr(n, key); ok {
		return v
	}
	return def
}

// HasAttr reports if the attribute key is present on n.
func HasAttr(n *html.Node, key string) bool {
	_, ok := Attr(n, key)
	return ok
}

// SetAttr sets or adds the attribute key.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr removes the attribute key if present.
func RemoveAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace != "" || a.Key != key {
			attrs = append(attrs, a)
		}
	}
	n.Attr = attrs
}

// IsTag reports if n is an element with one of the passed tags.
func IsTag(n *html.Node, tags ...atom.Atom) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, tag := range tags {
		if n.DataAtom == tag {
			return true
		}
	}
	return false
}

// TagMatcher returns a match func for elements with one of the tags.
func TagMatcher(tags ...atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool { return IsTag(n, tags...) }
}

func classes(n *html.Node) []string {
	return strings.Fields(AttrOr(n, "class", ""))
}

// HasClass reports if class is one of the classes of n.
func HasClass(n *html.Node, class string) bool {
	for _, c := range classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// ClassMatcher returns a match func for elements having the class.
func ClassMatcher(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return HasClass(n, class) }
}

// AddClass adds class to n if not already present.
func AddClass(n *html.Node, class string) {
	if HasClass(n, class) {
		return
	}
	SetAttr(n, "class", strings.Join(append(classes(n), class), " "))
}

// RemoveClass removes every passed class from n.
func RemoveClass(n *html.Node, remove ...string) {
	if !HasAttr(n, "class") {
		return
	}
	var kept []string
outer:
	for _, c := range classes(n) {
		for _, r := range remove {
			if c == r {
				continue outer
			}
		}
		kept = append(kept, c)
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// TextContent returns the concatenated text of all
// text node descendants of n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	if n != nil {
		traverse(n)
	}
	return b.String()
}

// SetText replaces all children of n with a single text node.
func SetText(n *html.Node, text string) {
	RemoveChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// SetInnerHTML replaces all children of n with the parsed fragment.
func SetInnerHTML(n *html.Node, fragment string) error {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), n)
	if err != nil {
		return err
	}
	RemoveChildren(n)
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return nil
}

// RemoveChildren detaches all children of n.
func RemoveChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

// Detach removes n from its parent.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Wrap inserts wrapper at the position of n and moves n into it.
func Wrap(n, wrapper *html.Node) {
	if n.Parent != nil {
		n.Parent.InsertBefore(wrapper, n)
		n.Parent.RemoveChild(n)
	}
	wrapper.AppendChild(n)
}

// NewElement returns a detached element node.
func NewElement(tag atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
		Attr:     attrs,
	}
}

// IsInteractive reports if n is an element that handles
// activation itself: link, button, form control or label.
func IsInteractive(n *html.Node) bool {
	return IsTag(n, atom.A, atom.Button, atom.Input, atom.Select, atom.Textarea, atom.Label)
}
