// Package dom provides access to a live HTML document tree
// parsed with golang.org/x/net/html.
//
// All lookups return nil when an element is absent,
// callers are expected to handle the missing case.
package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is the root of a parsed HTML page.
type Document struct {
	Root *html.Node
}

// Parse reads a complete HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{Root: root}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the current state of the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root)
}

func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err.Error()
	}
	return buf.String()
}

// ElementByID returns the first element with the id attribute
// or nil if there is none.
func (d *Document) ElementByID(id string) *html.Node {
	if id == "" {
		return nil
	}
	return d.First(func(n *html.Node) bool {
		v, ok := Attr(n, "id")
		return ok && v == id
	})
}

// First returns the first element in document order
// for which match returns true, or nil.
func (d *Document) First(match func(*html.Node) bool) *html.Node {
	return First(d.Root, match)
}

// FindAll returns all elements in document order
// for which match returns true.
func (d *Document) FindAll(match func(*html.Node) bool) []*html.Node {
	return FindAll(d.Root, match)
}

// First returns the first element below and including root
// for which match returns true, or nil.
func First(root *html.Node, match func(*html.Node) bool) (found *html.Node) {
	var traverse func(*html.Node) bool
	traverse = func(n *html.Node) bool {
		if n.Type == html.ElementNode && match(n) {
			found = n
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if traverse(c) {
				return true
			}
		}
		return false
	}
	if root != nil {
		traverse(root)
	}
	return found
}

// FindAll returns all elements below and including root
// for which match returns true.
func FindAll(root *html.Node, match func(*html.Node) bool) (found []*html.Node) {
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	if root != nil {
		traverse(root)
	}
	return found
}

// Closest returns n or its nearest ancestor element
// for which match returns true, or nil.
func Closest(n *html.Node, match func(*html.Node) bool) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && match(n) {
			return n
		}
	}
	return nil
}

// Contains reports if n is root or a descendant of root.
func Contains(root, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}
