package trie

// boxedValue is the payload carried by a value node. Each implementation is a
// *valueBox[T] for the type the value was inserted with.
type boxedValue interface {
	unwrap() any
}

// valueBox holds a single value of type T. The box is shared by pointer between
// every version that still references the owning node.
type valueBox[T any] struct {
	v T
}

func (b *valueBox[T]) unwrap() any {
	return b.v
}

// node represents a node in the trie. A node is never modified once it is
// reachable from a Trie.
type node struct {
	// children maps the next character to the child node
	children map[rune]*node

	// isEnd marks if this node represents the end of a key
	isEnd bool

	// value is non-nil only on value nodes, which always have isEnd set
	value boxedValue
}

// newNode creates a new structural trie node
func newNode() *node {
	return &node{
		children: make(map[rune]*node),
	}
}

// newValueNode creates a value node. children is shared, not copied.
func newValueNode(children map[rune]*node, value boxedValue) *node {
	return &node{
		children: children,
		isEnd:    true,
		value:    value,
	}
}

// clone returns a shallow copy of n with its own children map, so that the
// copy may be modified before it is published. Cloning nil yields an empty
// structural node.
func (n *node) clone() *node {
	if n == nil {
		return newNode()
	}
	children := make(map[rune]*node, len(n.children)+1)
	for ch, child := range n.children {
		children[ch] = child
	}
	return &node{
		children: children,
		isEnd:    n.isEnd,
		value:    n.value,
	}
}

// dead reports whether n carries neither a key nor any children.
func (n *node) dead() bool {
	return len(n.children) == 0 && !n.isEnd
}

// valueOf returns the value stored at n if it was inserted as a T.
func valueOf[T any](n *node) (T, bool) {
	var zero T
	if n == nil || !n.isEnd {
		return zero, false
	}
	box, ok := n.value.(*valueBox[T])
	if !ok {
		return zero, false
	}
	return box.v, true
}
