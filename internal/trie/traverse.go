package trie

import (
	"sort"
)

// TraverseFunc is the type of the function called for each key-value pair in the trie.
// If the function returns false, the traversal stops.
type TraverseFunc func(key string, value any) bool

// KeysWithPrefix returns all keys in the trie that have the given prefix, in
// lexicographical order.
func (t Trie) KeysWithPrefix(prefix string) []string {
	results := []string{}
	t.Traverse(prefix, func(key string, _ any) bool {
		results = append(results, key)
		return true
	})
	return results
}

// Traverse traverses all key-value pairs with the given prefix in lexicographical
// order. For each key-value pair, it calls the given function. If the function
// returns false, the traversal stops.
func (t Trie) Traverse(prefix string, f TraverseFunc) {
	start := t.findNode(prefix)
	if start == nil {
		return
	}

	// depth is the length of path once the frame's edge is appended.
	type frame struct {
		n     *node
		ch    rune
		depth int
	}

	// One shared key buffer and an explicit stack keep deep tries linear in
	// both time and memory.
	path := []rune(prefix)
	base := len(path)
	stack := []frame{{n: start, depth: base}}
	var children []rune
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > base {
			path = append(path[:top.depth-1], top.ch)
		}

		if top.n.isEnd {
			if !f(string(path), top.n.value.unwrap()) {
				return
			}
		}

		// Push children in reverse order so the smallest is visited first.
		children = sortedChildren(top.n, children[:0])
		for i := len(children) - 1; i >= 0; i-- {
			ch := children[i]
			stack = append(stack, frame{n: top.n.children[ch], ch: ch, depth: top.depth + 1})
		}
	}
}

// sortedChildren appends the edge characters of n to buf in ascending order
func sortedChildren(n *node, buf []rune) []rune {
	for ch := range n.children {
		buf = append(buf, ch)
	}
	if len(buf) > 1 {
		sort.Slice(buf, func(i, j int) bool { return buf[i] < buf[j] })
	}
	return buf
}
