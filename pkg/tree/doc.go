// Package tree provides an in-memory general tree: nodes with any number of
// ordered children and a back-reference to their parent.
//
// # Core Types
//
// Node carries a Name, an arbitrary Value, its Children in insertion order
// and a non-owning Parent pointer. Tree wraps an optional Root; a nil root is
// an empty tree.
//
// # Building
//
// Trees are built by linking nodes directly (AddChild, Adopt), by applying
// index paths (InsertByPath, BuildFromEdges), or by decoding nested
// {value, name, children} mappings (FromStructured, ParseYAML, LoadFile).
//
// # Paths
//
// Two path forms are supported. Index paths such as "0/2" select children by
// zero-based position and are handled by Resolve, InsertByPath and PathOf.
// Name paths such as "docs/api" match child names and are handled by
// (*Tree).Lookup.
//
// # Validation
//
// The Limits type bounds fan-out, depth, name length and node count.
// Decoding applies no limits unless asked: ParseYAMLWithLimits and
// FromStructuredWithLimits take DefaultLimits, RelaxedLimits or StrictLimits
// when the input is untrusted.
//
// # Usage Example
//
//	root, err := tree.BuildFromEdges("root", []tree.Edge{
//		{Path: "", Value: "B"},
//		{Path: "", Value: "C"},
//		{Path: "0", Value: "D"},
//	})
//	if err != nil {
//		return err
//	}
//
//	t := tree.New(root)
//	d, _ := t.Resolve("0/0") // D
//	fmt.Print(t.Display())
//
// Traversals are iterative, so very deep trees can be walked without growing
// the goroutine stack.
package tree
