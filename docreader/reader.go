// Package docreader gives the normalizer read-only typed access to a
// parsed document tree. The normalizer only ever uses these lookup
// primitives; all schema knowledge stays out of this package.
package docreader

// Node is one element of a parsed document tree.
type Node interface {
	// Name returns the local element name.
	Name() string
	// Text returns the trimmed character data of the element, or "".
	Text() string
	// Attr returns the named attribute value, or "".
	Attr(name string) string
	// Element returns the first direct child with the given name, or nil.
	Element(name string) Node
	// Elements returns all direct children with the given name.
	Elements(name string) []Node
}

// ChildText returns the text of the first child with the given name,
// or "" when the child is absent.
func ChildText(n Node, name string) string {
	if n == nil {
		return ""
	}
	child := n.Element(name)
	if child == nil {
		return ""
	}
	return child.Text()
}
