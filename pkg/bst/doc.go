// Package bst implements an unbalanced binary search tree over ordered values,
// with lossless conversion to and from nested {value, left, right} mappings
// and their YAML text form.
//
// # Ordering
//
// Values are ordered by Go's native < operator (cmp.Ordered). Duplicates are
// allowed and always descend to the right: for every node, values in the left
// subtree are strictly less than the node's value and values in the right
// subtree are greater than or equal to it. No rebalancing is performed, so
// inserting sorted input produces a list-shaped tree.
//
// Float NaN values are not totally ordered and must not be inserted.
//
// # Serialization
//
// ToStructured converts a tree into *Doc values, which marshal to YAML with
// keys in value, left, right order:
//
//	value: 10
//	left:
//	  value: 5
//	  left: null
//	  right: null
//	right: null
//
// DecodeStructured is the inverse over raw codec output (map[string]any and
// friends). It rejects nodes without a value and values that do not fit the
// element type, returning types.ErrMalformed or types.ErrTypeMismatch.
//
// # Usage Example
//
//	t := bst.New(10, 5, 15, 3, 7, 12, 17)
//	t.Delete(10)
//	fmt.Println(t.Inorder()) // [3 5 7 12 15 17]
//
//	out, err := t.ToYAML()
//	if err != nil {
//		return err
//	}
//	back, err := bst.Load[int](string(out))
package bst
