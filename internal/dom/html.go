package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// htmlNode adapts an element of an x/net/html tree to Node
type htmlNode struct {
	n *html.Node
}

// Parse parses an HTML document with browser-style error recovery and
// returns its root element (<html>).
func Parse(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return htmlNode{n: c}, nil
		}
	}
	return nil, fmt.Errorf("parse html: document has no root element")
}

// ParseString parses an HTML string into a node tree
func ParseString(htmlContent string) (Node, error) {
	return Parse(strings.NewReader(htmlContent))
}

func (h htmlNode) Tag() string {
	return h.n.Data
}

func (h htmlNode) Attr(key string) (string, bool) {
	for _, attr := range h.n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Text collects the text nodes before the first child element. Comments are
// skipped, and an empty result counts as no text.
func (h htmlNode) Text() (string, bool) {
	var buf strings.Builder
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			break
		}
		if c.Type == html.TextNode {
			buf.WriteString(c.Data)
		}
	}
	if buf.Len() == 0 {
		return "", false
	}
	return buf.String(), true
}

func (h htmlNode) Children() []Node {
	var children []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, htmlNode{n: c})
		}
	}
	return children
}
