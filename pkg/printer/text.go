package printer

import (
	"cmp"
	"fmt"
	"io"

	"github.com/xlab/treeprint"

	"github.com/joshuapare/treekit/pkg/bst"
	"github.com/joshuapare/treekit/pkg/tree"
)

// EmptyTreeText is printed in text format for a tree without nodes.
const EmptyTreeText = "(empty)"

// Branch labels for BST children.
const (
	metaLeft  = "L"
	metaRight = "R"
)

// printTreeText prints a general tree outline.
func (p *Printer) printTreeText(t *tree.Tree) error {
	if t.IsEmpty() {
		_, err := fmt.Fprintln(p.writer, EmptyTreeText)
		return err
	}
	return t.WriteOutline(p.writer, tree.OutlineOptions{
		MaxDepth: p.opts.MaxDepth,
		ASCII:    p.opts.ASCII,
	})
}

// printBSTText renders a BST with treeprint. Children are tagged [L] or [R]
// so a lone child's side stays visible.
func printBSTText[T cmp.Ordered](p *Printer, t *bst.Tree[T]) error {
	if t.IsEmpty() {
		_, err := fmt.Fprintln(p.writer, EmptyTreeText)
		return err
	}

	root := treeprint.NewWithRoot(fmt.Sprint(t.Root.Value))
	addBSTChildren(root, t.Root, 1, p.opts.MaxDepth)

	_, err := io.WriteString(p.writer, root.String())
	return err
}

func addBSTChildren[T cmp.Ordered](branch treeprint.Tree, n *bst.Node[T], depth, maxDepth int) {
	if maxDepth > 0 && depth > maxDepth {
		return
	}
	for _, child := range []struct {
		meta string
		node *bst.Node[T]
	}{{metaLeft, n.Left}, {metaRight, n.Right}} {
		if child.node == nil {
			continue
		}
		if child.node.IsLeaf() {
			branch.AddMetaNode(child.meta, fmt.Sprint(child.node.Value))
			continue
		}
		sub := branch.AddMetaBranch(child.meta, fmt.Sprint(child.node.Value))
		addBSTChildren(sub, child.node, depth+1, maxDepth)
	}
}
