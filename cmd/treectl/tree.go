package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/internal/codec"
	"github.com/joshuapare/treekit/pkg/printer"
	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
)

var (
	treeDepth  int
	treeASCII  bool
	treeOrder  string
	treeNames  bool
	treeAll    bool
	treeByName bool
	treeName   string
	treeOutput string
	treeStrict bool
)

func init() {
	cmd := newTreeCmd()

	show := newTreeShowCmd()
	show.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	show.Flags().BoolVar(&treeASCII, "ascii", false, "ASCII-only characters")

	walk := newTreeWalkCmd()
	walk.Flags().StringVar(&treeOrder, "order", "pre", "Traversal order: pre, post or level")
	walk.Flags().BoolVar(&treeNames, "names", false, "Print node names instead of values")

	find := newTreeFindCmd()
	find.Flags().BoolVar(&treeAll, "all", false, "Report every match instead of the first")

	get := newTreeGetCmd()
	get.Flags().BoolVar(&treeByName, "by-name", false, "Treat <path> as a path of child names")
	get.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	get.Flags().BoolVar(&treeASCII, "ascii", false, "ASCII-only characters")

	add := newTreeAddCmd()
	add.Flags().StringVar(&treeName, "name", "", "Name of the new node (default: its value)")
	add.Flags().StringVarP(&treeOutput, "output", "o", "", "Write the resulting tree to this YAML file")

	stats := newTreeStatsCmd()
	stats.Flags().BoolVar(&treeStrict, "strict", false, "Check against strict limits instead of the defaults")

	cmd.AddCommand(show, walk, find, get, add, stats)
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Inspect and edit general trees",
		Long: `The tree commands operate on general trees stored as nested
{value, name, children} YAML mappings.

Nodes are addressed by index paths: "" is the root, "0" its first child,
"0/2" the third child of that child.

Example:
  treectl tree show layout.yaml --depth 2
  treectl tree walk layout.yaml --order level
  treectl tree find layout.yaml api
  treectl tree get layout.yaml 1/0
  treectl tree add layout.yaml 1 v3 --name changelog -o layout.yaml
  treectl tree stats layout.yaml`,
	}
}

func newTreeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Display tree structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeShow(args)
		},
	}
}

func newTreeWalkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walk <file>",
		Short: "List nodes in pre-, post- or level-order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeWalk(args)
		},
	}
}

func newTreeFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <file> <name>",
		Short: "Find nodes by name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeFind(args)
		},
	}
}

func newTreeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Display the subtree at an index path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeGet(args)
		},
	}
}

func newTreeAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file> <path> <value>",
		Short: "Add a child under the node at an index path",
		Long: `Add a child under the node at an index path.

<value> is parsed as a YAML scalar, so 8080 is stored as a number and
"8080" as a string.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeAdd(args)
		},
	}
}

func newTreeStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Show node count, height and fan-out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeStats(args)
		},
	}
}

func loadTree(path string) (*tree.Tree, error) {
	printVerbose("Loading tree: %s\n", path)
	t, err := tree.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tree: %w", err)
	}
	return t, nil
}

func outlinePrinter() (*printer.Printer, error) {
	return newPrinter(func(o *printer.Options) {
		o.MaxDepth = treeDepth
		o.ASCII = treeASCII
	})
}

func runTreeShow(args []string) error {
	t, err := loadTree(args[0])
	if err != nil {
		return err
	}
	p, err := outlinePrinter()
	if err != nil {
		return err
	}
	return p.PrintTree(t)
}

func runTreeWalk(args []string) error {
	order, err := tree.ParseOrder(treeOrder)
	if err != nil {
		return err
	}
	t, err := loadTree(args[0])
	if err != nil {
		return err
	}

	var items []any
	err = t.Walk(order, func(n *tree.Node) error {
		if treeNames {
			items = append(items, n.Name)
		} else {
			items = append(items, n.Value)
		}
		return nil
	})
	if err != nil {
		return err
	}

	p, err := newPrinter(nil)
	if err != nil {
		return err
	}
	return p.PrintSequence(items)
}

func runTreeFind(args []string) error {
	t, err := loadTree(args[0])
	if err != nil {
		return err
	}

	name := args[1]
	var matches []*tree.Node
	if treeAll {
		matches = t.FindAll(name)
	} else if n := t.Find(name); n != nil {
		matches = []*tree.Node{n}
	}
	if len(matches) == 0 {
		return fmt.Errorf("node %q: %w", name, types.ErrNotFound)
	}

	if textOutput() {
		for _, n := range matches {
			printInfo("%s\t%s\n", displayPath(tree.PathOf(n)), n)
		}
		return nil
	}

	items := make([]any, len(matches))
	for i, n := range matches {
		items[i] = map[string]any{
			"path":  tree.PathOf(n),
			"name":  n.Name,
			"value": n.Value,
			"depth": n.Depth(),
		}
	}
	p, err := newPrinter(nil)
	if err != nil {
		return err
	}
	return p.PrintSequence(items)
}

func runTreeGet(args []string) error {
	t, err := loadTree(args[0])
	if err != nil {
		return err
	}

	var node *tree.Node
	if treeByName {
		if node = t.Lookup(args[1]); node == nil {
			return fmt.Errorf("name path %q: %w", args[1], types.ErrNotFound)
		}
	} else {
		if node, err = t.Resolve(args[1]); err != nil {
			return err
		}
	}
	printVerbose("Resolved %q to %s at depth %d\n", args[1], node, node.Depth())

	p, err := outlinePrinter()
	if err != nil {
		return err
	}
	return p.PrintTree(tree.New(node))
}

func runTreeAdd(args []string) error {
	t, err := loadTree(args[0])
	if err != nil {
		return err
	}
	if t.IsEmpty() {
		return fmt.Errorf("cannot add to %s: %w: tree is empty", args[0], types.ErrNotFound)
	}

	var value any
	if err := codec.Unmarshal([]byte(args[2]), &value); err != nil {
		return fmt.Errorf("parse value %q: %w", args[2], err)
	}
	if value == nil {
		// An empty argument decodes to null; keep it as the empty string
		// the loader uses for missing values.
		value = ""
	}

	child, err := tree.AttachByPath(t.Root, args[1], tree.NewNamedNode(treeName, value))
	if err != nil {
		return err
	}
	if err := t.ValidateTree(tree.DefaultLimits()); err != nil {
		return err
	}
	printVerbose("Added %s at %s\n", child, displayPath(tree.PathOf(child)))

	if treeOutput != "" {
		if err := t.WriteFile(treeOutput); err != nil {
			return err
		}
		printInfo("Wrote %d nodes to %s\n", t.NodeCount(), treeOutput)
		return nil
	}

	p, err := newPrinter(func(o *printer.Options) {
		if o.Format == printer.FormatText {
			o.Format = printer.FormatYAML
		}
	})
	if err != nil {
		return err
	}
	return p.PrintTree(t)
}

func runTreeStats(args []string) error {
	t, err := loadTree(args[0])
	if err != nil {
		return err
	}

	leaves, maxChildren := 0, 0
	_ = t.Walk(tree.PreOrder, func(n *tree.Node) error {
		if n.IsLeaf() {
			leaves++
		}
		maxChildren = max(maxChildren, len(n.Children))
		return nil
	})

	limits := tree.DefaultLimits()
	if treeStrict {
		limits = tree.StrictLimits()
	}
	valid := "ok"
	if err := t.ValidateTree(limits); err != nil {
		valid = err.Error()
	}

	keys := []string{"file", "nodes", "height", "leaves", "max_children", "limits"}
	record := map[string]any{
		"file":         args[0],
		"nodes":        t.NodeCount(),
		"height":       t.Height(),
		"leaves":       leaves,
		"max_children": maxChildren,
		"limits":       valid,
	}

	p, err := newPrinter(nil)
	if err != nil {
		return err
	}
	if err := p.PrintRecord(keys, record); err != nil {
		return err
	}
	if valid != "ok" {
		return fmt.Errorf("%s: %w", args[0], types.ErrLimit)
	}
	return nil
}

// displayPath renders the root's empty path visibly.
func displayPath(p string) string {
	if p == "" {
		return "(root)"
	}
	return p
}
