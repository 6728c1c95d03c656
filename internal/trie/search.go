package trie

// Search returns the value stored at key in t. The second result is false when
// the key is absent or when the stored value was not inserted as a T; both
// cases are indistinguishable to the caller.
//
// The value is returned by copy. Values holding references (slices, maps,
// pointers) remain shared with every version that stores them and must not
// be modified by the caller.
func Search[T any](t Trie, key string) (T, bool) {
	return valueOf[T](t.findNode(key))
}
