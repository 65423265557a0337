// Package types defines the error taxonomy shared by the treekit packages.
//
// Every failure carries a stable ErrKind so callers can branch on intent
// rather than message text:
//
//	t, err := tree.LoadFile("layout.yaml")
//	switch {
//	case errors.Is(err, types.ErrNotFound):
//		// create a fresh tree
//	case types.IsKind(err, types.ErrKindFormat):
//		// report the bad document
//	}
//
// This package has no dependencies beyond the standard library.
package types
