package bst

import "cmp"

// Node is a single BST node. Left and Right are nil or exclusively owned by
// this node.
type Node[T cmp.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a binary search tree. The zero value is an empty tree.
type Tree[T cmp.Ordered] struct {
	Root *Node[T]
}

// New creates a tree and inserts values in order.
func New[T cmp.Ordered](values ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.Root == nil
}

// Insert adds value as a new leaf. Values less than a node go left; all
// others, including equal values, go right.
func (t *Tree[T]) Insert(value T) {
	link := &t.Root
	for *link != nil {
		if value < (*link).Value {
			link = &(*link).Left
		} else {
			link = &(*link).Right
		}
	}
	*link = &Node[T]{Value: value}
}

// Search returns the first node on the descent path whose value equals value,
// or nil if there is none.
func (t *Tree[T]) Search(value T) *Node[T] {
	node := t.Root
	for node != nil {
		if node.Value == value {
			return node
		}
		if value < node.Value {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return nil
}

// Contains reports whether value is stored in the tree.
func (t *Tree[T]) Contains(value T) bool {
	return t.Search(value) != nil
}

// Delete removes one occurrence of value and reports whether it was found.
//
// A node with two children takes the value of its in-order successor (the
// minimum of its right subtree), and the successor is then removed from the
// right subtree.
func (t *Tree[T]) Delete(value T) bool {
	var found bool
	t.Root = deleteNode(t.Root, value, &found)
	return found
}

// deleteNode removes value from the subtree rooted at n and returns the new
// subtree root.
func deleteNode[T cmp.Ordered](n *Node[T], value T, found *bool) *Node[T] {
	if n == nil {
		return nil
	}

	switch {
	case value < n.Value:
		n.Left = deleteNode(n.Left, value, found)
	case value > n.Value:
		n.Right = deleteNode(n.Right, value, found)
	default:
		*found = true
		if n.Left == nil {
			return n.Right
		}
		if n.Right == nil {
			return n.Left
		}

		// Two children: the successor has no left child, so removing it
		// below always takes one of the branches above.
		successor := minNode(n.Right)
		n.Value = successor.Value
		var removed bool
		n.Right = deleteNode(n.Right, successor.Value, &removed)
	}

	return n
}

// minNode returns the leftmost node of a non-nil subtree.
func minNode[T cmp.Ordered](n *Node[T]) *Node[T] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Min returns the smallest stored value.
func (t *Tree[T]) Min() (T, bool) {
	if t.Root == nil {
		var zero T
		return zero, false
	}
	return minNode(t.Root).Value, true
}

// Max returns the largest stored value.
func (t *Tree[T]) Max() (T, bool) {
	if t.Root == nil {
		var zero T
		return zero, false
	}
	n := t.Root
	for n.Right != nil {
		n = n.Right
	}
	return n.Value, true
}

// Height returns the number of node levels: 0 for an empty tree, 1 for a
// single node.
func (t *Tree[T]) Height() int {
	return height(t.Root)
}

func height[T cmp.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return max(height(n.Left), height(n.Right)) + 1
}

// Size returns the number of nodes.
func (t *Tree[T]) Size() int {
	size := 0
	_ = t.Walk(PreOrder, func(*Node[T]) error {
		size++
		return nil
	})
	return size
}
