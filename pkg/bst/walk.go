package bst

import (
	"cmp"
	"fmt"
	"strings"
)

// initialStackCapacity is the pre-allocated capacity for traversal stacks.
// Balanced trees of a few billion nodes stay below this depth.
const initialStackCapacity = 64

// Order selects a depth-first visitation order.
type Order int

const (
	// InOrder visits left subtree, node, right subtree.
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "inorder"
	case PreOrder:
		return "preorder"
	case PostOrder:
		return "postorder"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder maps "in", "pre", "post" (or their "...order" forms) to an Order.
// Matching ignores case and surrounding space.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "inorder":
		return InOrder, nil
	case "pre", "preorder":
		return PreOrder, nil
	case "post", "postorder":
		return PostOrder, nil
	default:
		return 0, fmt.Errorf("unknown traversal order %q", s)
	}
}

// Walk visits every node in the given order. Returning a non-nil error from
// fn stops the walk and returns that error. The tree must not be modified
// during the walk.
//
// Traversal is iterative, so stack usage does not grow with tree height.
func (t *Tree[T]) Walk(order Order, fn func(*Node[T]) error) error {
	switch order {
	case InOrder:
		return walkInOrder(t.Root, fn)
	case PreOrder:
		return walkPreOrder(t.Root, fn)
	case PostOrder:
		return walkPostOrder(t.Root, fn)
	default:
		return fmt.Errorf("unknown traversal order %d", int(order))
	}
}

func walkInOrder[T cmp.Ordered](root *Node[T], fn func(*Node[T]) error) error {
	stack := make([]*Node[T], 0, initialStackCapacity)
	n := root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.Left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(n); err != nil {
			return err
		}
		n = n.Right
	}
	return nil
}

func walkPreOrder[T cmp.Ordered](root *Node[T], fn func(*Node[T]) error) error {
	if root == nil {
		return nil
	}
	stack := make([]*Node[T], 0, initialStackCapacity)
	stack = append(stack, root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(n); err != nil {
			return err
		}
		// Right first so left is popped first
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
	return nil
}

func walkPostOrder[T cmp.Ordered](root *Node[T], fn func(*Node[T]) error) error {
	if root == nil {
		return nil
	}

	// Collect node-right-left order, then replay it backwards.
	stack := make([]*Node[T], 0, initialStackCapacity)
	var reversed []*Node[T]
	stack = append(stack, root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reversed = append(reversed, n)
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
	}

	for i := len(reversed) - 1; i >= 0; i-- {
		if err := fn(reversed[i]); err != nil {
			return err
		}
	}
	return nil
}

// Values returns the stored values in the given order.
func (t *Tree[T]) Values(order Order) []T {
	result := make([]T, 0)
	_ = t.Walk(order, func(n *Node[T]) error {
		result = append(result, n.Value)
		return nil
	})
	return result
}

// Inorder returns values in ascending order.
func (t *Tree[T]) Inorder() []T { return t.Values(InOrder) }

// Preorder returns values in node, left, right order.
func (t *Tree[T]) Preorder() []T { return t.Values(PreOrder) }

// Postorder returns values in left, right, node order.
func (t *Tree[T]) Postorder() []T { return t.Values(PostOrder) }
