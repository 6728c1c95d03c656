// Package trie implements a persistent string-keyed map backed by a trie.
//
// A Trie value is an immutable version of the map. Insert and Remove return a
// new version and leave the receiver untouched; the two versions share every
// subtree that lies off the modified key's path. Values of different types may
// live in the same trie, and Search only returns a value when it was inserted
// with the requested type.
//
// All operations are safe for concurrent use, since nodes are never modified
// after they become reachable from a version.
package trie

// Trie is a single version of the map. The zero value is an empty trie.
type Trie struct {
	root *node
	size int
}

// New returns an empty trie.
func New() Trie {
	return Trie{}
}

// Len returns the number of keys stored in t.
func (t Trie) Len() int {
	return t.size
}

// IsEmpty reports whether t holds no keys.
func (t Trie) IsEmpty() bool {
	return t.root == nil
}

// Contains reports whether a value of any type is stored at key.
func (t Trie) Contains(key string) bool {
	n := t.findNode(key)
	return n != nil && n.isEnd
}

// Lookup returns the value stored at key regardless of its type.
func (t Trie) Lookup(key string) (any, bool) {
	n := t.findNode(key)
	if n == nil || !n.isEnd {
		return nil, false
	}
	return n.value.unwrap(), true
}

// findNode returns the node corresponding to the key, or nil if not found
func (t Trie) findNode(key string) *node {
	n := t.root
	for _, ch := range key {
		if n == nil {
			return nil
		}
		n = n.children[ch]
	}
	return n
}
