package tree

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/treekit/pkg/types"
)

// Limits bounds the shape of a tree to prevent resource exhaustion when
// building from untrusted input. A zero field disables that check.
type Limits struct {
	// MaxChildren is the maximum number of children a node can have.
	MaxChildren int

	// MaxTreeDepth is the maximum depth of any node, in edges from the root.
	// Structured decoding recurses once per level, so this also bounds stack use.
	MaxTreeDepth int

	// MaxNameLen is the maximum length of a node name in characters (not bytes).
	MaxNameLen int

	// MaxNodes is the maximum total number of nodes.
	MaxNodes int
}

// DefaultLimits returns limits that accept any reasonably hand-written or
// generated document.
func DefaultLimits() Limits {
	return Limits{
		MaxChildren:  MaxChildrenDefault,
		MaxTreeDepth: MaxTreeDepthPractical,
		MaxNameLen:   MaxNameLenDefault,
		MaxNodes:     MaxNodesDefault,
	}
}

// RelaxedLimits returns more permissive limits for very large trees.
func RelaxedLimits() Limits {
	return Limits{
		MaxChildren:  MaxChildrenRelaxed,
		MaxTreeDepth: MaxTreeDepthDeep,
		MaxNameLen:   MaxNameLenRelaxed,
		MaxNodes:     MaxNodesRelaxed,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxChildren:  MaxChildrenStrict,
		MaxTreeDepth: MaxTreeDepthShallow,
		MaxNameLen:   MaxNameLenStrict,
		MaxNodes:     MaxNodesStrict,
	}
}

// ValidationError represents a limit validation failure. It matches
// types.ErrLimit with errors.Is.
type ValidationError struct {
	Limit    string // Name of the limit that was exceeded
	Current  int    // Current value
	Maximum  int    // Maximum allowed value
	NodePath string // Index path to the node (if applicable)
}

func (e *ValidationError) Error() string {
	if e.NodePath != "" {
		return fmt.Sprintf("tree limit exceeded at %q: %s is %d (max %d)",
			e.NodePath, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("tree limit exceeded: %s is %d (max %d)",
		e.Limit, e.Current, e.Maximum)
}

func (e *ValidationError) Unwrap() error { return types.ErrLimit }

func exceeds(current, maximum int) bool {
	return maximum > 0 && current > maximum
}

// ValidateNode checks the node's own name and fan-out against limits.
func (n *Node) ValidateNode(limits Limits) error {
	if nameLen := utf8.RuneCountInString(n.Name); exceeds(nameLen, limits.MaxNameLen) {
		return &ValidationError{
			Limit:   "MaxNameLen",
			Current: nameLen,
			Maximum: limits.MaxNameLen,
		}
	}

	if exceeds(len(n.Children), limits.MaxChildren) {
		return &ValidationError{
			Limit:   "MaxChildren",
			Current: len(n.Children),
			Maximum: limits.MaxChildren,
		}
	}

	return nil
}

// ValidateTree checks every node of the tree, its depth and the total node
// count. The first violation found in pre-order is returned with its
// NodePath set.
func (t *Tree) ValidateTree(limits Limits) error {
	if t.Root == nil {
		return nil
	}

	type frame struct {
		node  *Node
		path  string
		depth int
	}

	count := 0
	stack := make([]frame, 0, initialStackCapacity)
	stack = append(stack, frame{node: t.Root})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		count++
		if exceeds(count, limits.MaxNodes) {
			return &ValidationError{
				Limit:    "MaxNodes",
				Current:  count,
				Maximum:  limits.MaxNodes,
				NodePath: f.path,
			}
		}
		if exceeds(f.depth, limits.MaxTreeDepth) {
			return &ValidationError{
				Limit:    "MaxTreeDepth",
				Current:  f.depth,
				Maximum:  limits.MaxTreeDepth,
				NodePath: f.path,
			}
		}
		if err := f.node.ValidateNode(limits); err != nil {
			ve := err.(*ValidationError)
			ve.NodePath = f.path
			return ve
		}

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:  f.node.Children[i],
				path:  joinIndex(f.path, i),
				depth: f.depth + 1,
			})
		}
	}
	return nil
}

func joinIndex(parent string, i int) string {
	if parent == "" {
		return fmt.Sprint(i)
	}
	return fmt.Sprintf("%s%s%d", parent, PathSeparator, i)
}
