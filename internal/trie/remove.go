package trie

// Remove returns a new version of t without key. Branches left without any
// key are pruned, and removing the last key yields an empty trie.
//
// If key is not stored in t, Remove returns t itself and allocates nothing
// beyond the descent bookkeeping.
func Remove(t Trie, key string) Trie {
	if t.root == nil {
		return t
	}
	chars := []rune(key)

	// Check the key exists before copying anything.
	path := make([]*node, len(chars))
	cur := t.root
	for i, ch := range chars {
		path[i] = cur
		child, exists := cur.children[ch]
		if !exists {
			return t
		}
		cur = child
	}
	if !cur.isEnd {
		return t
	}

	// The value is dropped; a nil subtree stands for a pruned branch.
	var next *node
	if len(cur.children) > 0 {
		next = &node{children: cur.children}
	}

	for i := len(chars) - 1; i >= 0; i-- {
		n := path[i].clone()
		if next == nil {
			delete(n.children, chars[i])
		} else {
			n.children[chars[i]] = next
		}
		if n.dead() {
			n = nil
		}
		next = n
	}

	return Trie{root: next, size: t.size - 1}
}
