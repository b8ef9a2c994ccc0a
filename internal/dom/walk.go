package dom

// Node is the read-only view of a parsed element that the walkers need.
type Node interface {
	// Tag returns the element name
	Tag() string

	// Attr returns the value of the attribute and whether it is present
	Attr(key string) (string, bool)

	// Text returns the text that precedes the first child element
	Text() (string, bool)

	// Children returns the child elements in document order
	Children() []Node
}

// FindAll finds all nodes matching a predicate, depth-first in document order.
// Matching a node does not stop the walk from descending into it.
func FindAll(root Node, predicate func(Node) bool) []Node {
	var results []Node

	var walk func(Node)
	walk = func(node Node) {
		if predicate(node) {
			results = append(results, node)
		}
		for _, c := range node.Children() {
			walk(c)
		}
	}

	walk(root)
	return results
}

// SelectByClass returns every node whose class attribute equals className.
// The comparison is on the whole attribute value, so "Arab headword" does
// not match "Arab".
func SelectByClass(root Node, className string) []Node {
	return FindAll(root, func(n Node) bool {
		class, ok := n.Attr("class")
		return ok && class == className
	})
}

// Child returns the i-th child element of n.
func Child(n Node, i int) (Node, bool) {
	children := n.Children()
	if i < 0 || i >= len(children) {
		return nil, false
	}
	return children[i], true
}
