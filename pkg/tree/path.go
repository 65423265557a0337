package tree

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/joshuapare/treekit/pkg/types"
)

const (
	// PathSeparator separates child indices in an index path.
	PathSeparator = "/"
	// NameSeparator separates child names in a name path.
	NameSeparator = PathSeparator
)

// PathError records a failure to resolve an index path.
type PathError struct {
	Path    string // full path as given
	Segment string // offending segment; empty when the path could not be started
	Index   int    // zero-based position of Segment in the path, or -1
	Err     error  // types.ErrInvalidPath, types.ErrIndexOutOfRange or types.ErrNotFound
}

func (e *PathError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("path %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("path %q: segment %d (%q): %v", e.Path, e.Index, e.Segment, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// Resolve walks an index path from root. Each PathSeparator-delimited
// segment is a zero-based child index; a path that is empty after trimming
// whitespace selects root.
//
// A segment that is not an integer fails with types.ErrInvalidPath. So does
// an empty segment, as in "0//1", "/0" or "0/": only a path that is empty as
// a whole selects root. A negative index, one past the last child, or one too
// large for int fails with types.ErrIndexOutOfRange. A nil root fails with
// types.ErrNotFound.
func Resolve(root *Node, path string) (*Node, error) {
	if root == nil {
		return nil, &PathError{Path: path, Index: -1, Err: types.ErrNotFound}
	}

	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return root, nil
	}

	node := root
	for i, seg := range strings.Split(trimmed, PathSeparator) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, &PathError{Path: path, Segment: seg, Index: i, Err: types.ErrInvalidPath}
		}
		idx, err := strconv.Atoi(seg)
		if errors.Is(err, strconv.ErrRange) {
			return nil, &PathError{Path: path, Segment: seg, Index: i, Err: types.ErrIndexOutOfRange}
		}
		if err != nil {
			return nil, &PathError{Path: path, Segment: seg, Index: i, Err: types.ErrInvalidPath}
		}
		if idx < 0 || idx >= len(node.Children) {
			return nil, &PathError{Path: path, Segment: seg, Index: i, Err: types.ErrIndexOutOfRange}
		}
		node = node.Children[idx]
	}
	return node, nil
}

// AttachByPath resolves path from root and appends child to the node found.
func AttachByPath(root *Node, path string, child *Node) (*Node, error) {
	parent, err := Resolve(root, path)
	if err != nil {
		return nil, err
	}
	return parent.AddChild(child), nil
}

// InsertByPath resolves path from root and appends a new node holding value.
// It returns the new node.
func InsertByPath(root *Node, path string, value any) (*Node, error) {
	return AttachByPath(root, path, NewNode(value))
}

// Edge describes one insertion: a new child with Value under the node at
// index path Path.
type Edge struct {
	Path  string
	Value any
}

// BuildFromEdges creates a root holding rootValue and applies edges in
// order. Each edge's path is resolved against the tree as built so far.
func BuildFromEdges(rootValue any, edges []Edge) (*Node, error) {
	root := NewNode(rootValue)
	for i, e := range edges {
		if _, err := InsertByPath(root, e.Path, e.Value); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return root, nil
}

// PathOf returns the index path of n relative to its root; the root's path
// is empty. Resolve(n.Root(), PathOf(n)) returns n.
func PathOf(n *Node) string {
	var indices []string
	for n != nil && n.Parent != nil {
		indices = append(indices, strconv.Itoa(slices.Index(n.Parent.Children, n)))
		n = n.Parent
	}
	slices.Reverse(indices)
	return strings.Join(indices, PathSeparator)
}

// Resolve walks an index path from the tree root.
func (t *Tree) Resolve(path string) (*Node, error) {
	return Resolve(t.Root, path)
}

// InsertByPath appends a new node holding value under the node at path.
func (t *Tree) InsertByPath(path string, value any) (*Node, error) {
	return InsertByPath(t.Root, path, value)
}
