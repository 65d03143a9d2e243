package dataapi

import (
	"strconv"
	"strings"
)

// PathNode is one step in an error's location trail: either a field name or
// an array index.
type PathNode struct {
	name    string
	index   int
	indexed bool
}

// Name returns a field-name path node.
func Name(name string) PathNode { return PathNode{name: name} }

// Index returns a zero-based array-index path node.
func Index(i int) PathNode { return PathNode{index: i, indexed: true} }

// IsIndex reports whether the node is an array index.
func (n PathNode) IsIndex() bool { return n.indexed }

// FieldName returns the field name for a name node ("" for index nodes).
func (n PathNode) FieldName() string { return n.name }

// ArrayIndex returns the index for an index node (0 for name nodes).
func (n PathNode) ArrayIndex() int { return n.index }

func (n PathNode) String() string {
	if n.indexed {
		return strconv.Itoa(n.index)
	}
	return n.name
}

// Path is an ordered sequence of nodes read outer-to-inner. Composites build
// it by prepending their own context as errors bubble up, so an error never
// loses its location.
type Path []PathNode

// Prepend returns a new Path with node in front. The receiver is not
// modified.
func (p Path) Prepend(node PathNode) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, node)
	return append(out, p...)
}

// String renders the path JSON-Pointer style, e.g. "/items/2/price".
// An empty path renders as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, n := range p {
		b.WriteByte('/')
		b.WriteString(n.String())
	}
	return b.String()
}
