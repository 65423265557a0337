package tree

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/joshuapare/treekit/pkg/types"
)

// Node is a general tree node.
//
// Children are exclusively owned and kept in insertion order. Parent is a
// non-owning back-reference maintained by AddChild, Adopt and RemoveChild;
// for every child c of n, c.Parent == n.
type Node struct {
	// Identity
	Name  string // defaults to the string form of Value
	Value any

	// Tree structure
	Parent   *Node
	Children []*Node
}

// NewNode creates a detached node named after its value.
func NewNode(value any) *Node {
	return NewNamedNode("", value)
}

// NewNamedNode creates a detached node. An empty name defaults to the string
// form of value.
func NewNamedNode(name string, value any) *Node {
	if name == "" {
		name = defaultName(value)
	}
	return &Node{Name: name, Value: value}
}

// defaultName is fmt.Sprint of value, except that floats keep a decimal
// point ("1.0", not "1") so they stay distinguishable from integers.
// Booleans render as "true" and "false".
func defaultName(value any) string {
	switch v := value.(type) {
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	}
	return fmt.Sprint(value)
}

func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

// AddChild appends child, points its Parent at n and returns it.
//
// AddChild does not check for cycles or detach child from a previous parent;
// linking an ancestor of n makes every traversal loop forever. Use Adopt when
// the caller cannot rule that out.
func (n *Node) AddChild(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Adopt is the checked form of AddChild. It fails with types.ErrCycle if
// child is n or one of its ancestors, and detaches child from its current
// parent before appending it to n.
func (n *Node) Adopt(child *Node) error {
	if child == nil {
		return fmt.Errorf("adopt: %w: nil child", types.ErrMalformed)
	}
	for a := n; a != nil; a = a.Parent {
		if a == child {
			return fmt.Errorf("adopt %q under %q: %w", child.Name, n.Name, types.ErrCycle)
		}
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	n.AddChild(child)
	return nil
}

// RemoveChild unlinks child if it is one of n's children (by identity) and
// reports whether it was.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.Children, child)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	child.Parent = nil
	return true
}

// Depth returns the number of parent hops to the root. The root has depth 0.
func (n *Node) Depth() int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// Root returns the topmost ancestor of n, or n itself.
func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// String renders the node as "name (value)".
func (n *Node) String() string {
	return fmt.Sprintf("%s (%v)", n.Name, n.Value)
}
