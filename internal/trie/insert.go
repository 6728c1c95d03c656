package trie

// Insert returns a new version of t with value stored at key. Any value already
// stored at key is replaced, whatever its type. t itself is not modified.
//
// Only the nodes on the path from the root to key are copied; every other
// subtree of the result is shared with t.
func Insert[T any](t Trie, key string, value T) Trie {
	chars := []rune(key)

	// path[i] is the node of t reached after consuming chars[:i], or nil once
	// the key leaves the existing structure.
	path := make([]*node, len(chars))
	cur := t.root
	for i, ch := range chars {
		path[i] = cur
		if cur != nil {
			cur = cur.children[ch]
		}
	}

	// The new terminal node keeps any longer keys that pass through it.
	var children map[rune]*node
	if cur != nil {
		children = cur.children
	}
	next := newValueNode(children, &valueBox[T]{v: value})

	for i := len(chars) - 1; i >= 0; i-- {
		n := path[i].clone()
		n.children[chars[i]] = next
		next = n
	}

	size := t.size
	if cur == nil || !cur.isEnd {
		size++
	}
	return Trie{root: next, size: size}
}
