package tree

import (
	"io"
	"strings"
)

// Outline glyphs.
const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "

	asciiBranchMid  = "|-- "
	asciiBranchLast = "`-- "
	asciiIndentMid  = "|   "
)

// OutlineOptions controls WriteOutline.
type OutlineOptions struct {
	MaxDepth int  // deepest level written, counted from the start node; 0 means no limit
	ASCII    bool // use plain ASCII connectors instead of box-drawing glyphs
}

// Display renders the tree as an indented outline, one "name (value)" line per
// node. An empty tree renders as "".
func (t *Tree) Display() string {
	var sb strings.Builder
	_ = WriteOutline(&sb, t.Root, OutlineOptions{})
	return sb.String()
}

// WriteOutline writes the tree outline to w.
func (t *Tree) WriteOutline(w io.Writer, opts OutlineOptions) error {
	return WriteOutline(w, t.Root, opts)
}

// WriteOutline writes the outline of the subtree rooted at start to w. The
// start node is drawn as a last sibling.
func WriteOutline(w io.Writer, start *Node, opts OutlineOptions) error {
	if start == nil {
		return nil
	}

	midBranch, lastBranch, midIndent := branchMid, branchLast, indentMid
	if opts.ASCII {
		midBranch, lastBranch, midIndent = asciiBranchMid, asciiBranchLast, asciiIndentMid
	}

	type frame struct {
		node   *Node
		prefix string
		last   bool
		depth  int
	}

	stack := make([]frame, 0, initialStackCapacity)
	stack = append(stack, frame{node: start, last: true})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		branch, indent := midBranch, midIndent
		if f.last {
			branch, indent = lastBranch, indentLast
		}
		if _, err := io.WriteString(w, f.prefix+branch+f.node.String()+"\n"); err != nil {
			return err
		}

		if opts.MaxDepth > 0 && f.depth >= opts.MaxDepth {
			continue
		}
		childPrefix := f.prefix + indent
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:   f.node.Children[i],
				prefix: childPrefix,
				last:   i == len(f.node.Children)-1,
				depth:  f.depth + 1,
			})
		}
	}
	return nil
}
