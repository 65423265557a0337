package tree

import (
	"errors"
	"fmt"
	"strings"
)

// initialStackCapacity is the starting capacity of traversal stacks and
// queues. Most trees fit without reallocation.
const initialStackCapacity = 64

// SkipAll can be returned by a WalkFunc to stop a walk without error.
var SkipAll = errors.New("skip all remaining nodes")

// WalkFunc is called for each visited node. Returning a non-nil error stops
// the walk; SkipAll stops it without reporting an error.
type WalkFunc func(n *Node) error

// Order selects a traversal order.
type Order int

const (
	PreOrder Order = iota
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	case LevelOrder:
		return "levelorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses an order name as accepted on the command line.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pre", "preorder":
		return PreOrder, nil
	case "post", "postorder":
		return PostOrder, nil
	case "level", "levelorder", "bfs":
		return LevelOrder, nil
	default:
		return 0, fmt.Errorf("unknown traversal order %q", s)
	}
}

// Tree wraps an optional root node. The zero value is an empty tree.
type Tree struct {
	Root *Node
}

// New wraps root in a Tree. root may be nil.
func New(root *Node) *Tree {
	return &Tree{Root: root}
}

// IsEmpty reports whether the tree has no root.
func (t *Tree) IsEmpty() bool {
	return t.Root == nil
}

// Walk visits the subtree rooted at start in the given order. A nil start
// visits nothing.
func Walk(start *Node, order Order, fn WalkFunc) error {
	if start == nil {
		return nil
	}

	var err error
	switch order {
	case PreOrder:
		err = walkPre(start, fn)
	case PostOrder:
		err = walkPost(start, fn)
	case LevelOrder:
		err = walkLevel(start, fn)
	default:
		return fmt.Errorf("walk: unknown order %v", order)
	}
	if errors.Is(err, SkipAll) {
		return nil
	}
	return err
}

func walkPre(start *Node, fn WalkFunc) error {
	stack := make([]*Node, 0, initialStackCapacity)
	stack = append(stack, start)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(n); err != nil {
			return err
		}
		// Push in reverse so the first child is visited first.
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return nil
}

func walkPost(start *Node, fn WalkFunc) error {
	// Node-right-left pre-order, reversed, is left-right-node post-order.
	stack := make([]*Node, 0, initialStackCapacity)
	reversed := make([]*Node, 0, initialStackCapacity)
	stack = append(stack, start)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reversed = append(reversed, n)
		stack = append(stack, n.Children...)
	}
	for i := len(reversed) - 1; i >= 0; i-- {
		if err := fn(reversed[i]); err != nil {
			return err
		}
	}
	return nil
}

func walkLevel(start *Node, fn WalkFunc) error {
	queue := make([]*Node, 0, initialStackCapacity)
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if err := fn(n); err != nil {
			return err
		}
		queue = append(queue, n.Children...)
	}
	return nil
}

func collect(start *Node, order Order) []*Node {
	nodes := make([]*Node, 0)
	_ = Walk(start, order, func(n *Node) error {
		nodes = append(nodes, n)
		return nil
	})
	return nodes
}

// Preorder lists the subtree rooted at n, each node before its children.
func Preorder(n *Node) []*Node { return collect(n, PreOrder) }

// Postorder lists the subtree rooted at n, each node after its children.
func Postorder(n *Node) []*Node { return collect(n, PostOrder) }

// Levelorder lists the subtree rooted at n breadth-first.
func Levelorder(n *Node) []*Node { return collect(n, LevelOrder) }

// Values returns the Value of each node.
func Values(nodes []*Node) []any {
	values := make([]any, len(nodes))
	for i, n := range nodes {
		values[i] = n.Value
	}
	return values
}

// Names returns the Name of each node.
func Names(nodes []*Node) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	return names
}

// Walk visits every node of the tree in the given order.
func (t *Tree) Walk(order Order, fn WalkFunc) error { return Walk(t.Root, order, fn) }

// Preorder lists all nodes in pre-order.
func (t *Tree) Preorder() []*Node { return Preorder(t.Root) }

// Postorder lists all nodes in post-order.
func (t *Tree) Postorder() []*Node { return Postorder(t.Root) }

// Levelorder lists all nodes breadth-first.
func (t *Tree) Levelorder() []*Node { return Levelorder(t.Root) }

// Find returns the first node named name in pre-order, or nil.
func (t *Tree) Find(name string) *Node {
	var found *Node
	_ = Walk(t.Root, PreOrder, func(n *Node) error {
		if n.Name == name {
			found = n
			return SkipAll
		}
		return nil
	})
	return found
}

// FindAll returns every node named name in pre-order.
func (t *Tree) FindAll(name string) []*Node {
	var found []*Node
	_ = Walk(t.Root, PreOrder, func(n *Node) error {
		if n.Name == name {
			found = append(found, n)
		}
		return nil
	})
	return found
}

// Height returns the height of the subtree rooted at n in edges: 0 for nil
// or a leaf.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	h := 0
	for _, child := range n.Children {
		h = max(h, Height(child)+1)
	}
	return h
}

// Height returns the height of the tree in edges.
func (t *Tree) Height() int {
	return Height(t.Root)
}

// NodeCount returns the number of nodes in the tree.
func (t *Tree) NodeCount() int {
	return len(t.Preorder())
}

// Lookup finds a node by a NameSeparator-delimited path of child names,
// starting below the root. Empty segments are ignored and an empty path
// returns the root. The first child with a matching name is followed at each
// level. Returns nil if not found.
func (t *Tree) Lookup(namePath string) *Node {
	if t.Root == nil {
		return nil
	}
	return lookup(t.Root, splitPath(namePath))
}

func lookup(node *Node, segments []string) *Node {
	for _, seg := range segments {
		var next *Node
		for _, child := range node.Children {
			if child.Name == seg {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		node = next
	}
	return node
}

// splitPath splits a name path into its non-empty segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	segments := make([]string, 0)
	start := 0
	for i := range len(path) {
		if path[i] == NameSeparator[0] {
			if i > start {
				segments = append(segments, path[start:i])
			}
			start = i + 1
		}
	}
	if start < len(path) {
		segments = append(segments, path[start:])
	}

	return segments
}
