package scenario

// Default returns the reference scenario: a handful of mixed-type inserts,
// removals including one of an absent key, and an insert at the empty key.
// The last search reads version 5, taken before any removal, to show that
// older versions are unaffected.
func Default() []Step {
	five := 5
	return []Step{
		{Op: OpInsert, Key: "abc", Type: TypeInt, Value: 123},
		{Op: OpInsert, Key: "ab", Type: TypeInt, Value: 12},
		{Op: OpInsert, Key: "abcedfg", Type: TypeInt, Value: 888},
		{Op: OpInsert, Key: "ijk", Type: TypeString, Value: "xyz"},
		{Op: OpInsert, Key: "xyz", Type: TypeFloat, Value: 0.888},
		{Op: OpSearch, Key: "abc", Type: TypeInt},
		{Op: OpSearch, Key: "ab", Type: TypeInt},
		{Op: OpSearch, Key: "ijk", Type: TypeString},
		{Op: OpSearch, Key: "xyz", Type: TypeFloat},
		{Op: OpRemove, Key: "ijk"},
		{Op: OpRemove, Key: "ijkf"},
		{Op: OpRemove, Key: "ab"},
		{Op: OpSearch, Key: "ijk", Type: TypeString},
		{Op: OpSearch, Key: "abc", Type: TypeInt},
		{Op: OpSearch, Key: "ab", Type: TypeInt},
		{Op: OpInsert, Key: "", Type: TypeString, Value: "naughty"},
		{Op: OpSearch, Key: "", Type: TypeString},
		{Op: OpSearch, Key: "ijk", Type: TypeString, Version: &five},
	}
}
