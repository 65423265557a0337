package main

import (
	"cmp"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/pkg/bst"
	"github.com/joshuapare/treekit/pkg/printer"
	"github.com/joshuapare/treekit/pkg/types"
)

var (
	bstType   string
	bstOutput string
	bstOrder  string
	bstDepth  int
)

func init() {
	cmd := newBSTCmd()
	cmd.PersistentFlags().StringVarP(&bstType, "type", "t", "int", "Element type: int, float or string")
	cmd.PersistentFlags().StringVarP(&bstOutput, "output", "o", "", "Write the resulting tree to this YAML file")
	cmd.PersistentFlags().StringVar(&bstOrder, "order", "", "Print a traversal (in, pre or post) instead of the tree")
	cmd.PersistentFlags().IntVar(&bstDepth, "depth", 0, "Maximum depth to draw (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newBSTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bst",
		Short: "Build and edit binary search trees",
		Long: `The bst commands operate on binary search trees stored as nested
{value, left, right} YAML mappings. <input> is either a file path or literal
YAML text.

Example:
  treectl bst build 10 5 15 3 7 -o tree.yaml
  treectl bst show tree.yaml --order in
  treectl bst insert tree.yaml 12 17 -o tree.yaml
  treectl bst delete tree.yaml 10
  treectl bst search tree.yaml 7
  treectl bst build --type string pear apple mango`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "build <values...>",
			Short: "Build a tree by inserting values in order",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runBSTBuild(args)
			},
		},
		&cobra.Command{
			Use:   "show <input>",
			Short: "Display a tree or one of its traversals",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runBSTShow(args)
			},
		},
		&cobra.Command{
			Use:   "insert <input> <values...>",
			Short: "Insert values into a tree",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runBSTInsert(args)
			},
		},
		&cobra.Command{
			Use:   "delete <input> <values...>",
			Short: "Delete one occurrence of each value from a tree",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runBSTDelete(args)
			},
		},
		&cobra.Command{
			Use:   "search <input> <value>",
			Short: "Report whether a value is stored in a tree",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runBSTSearch(args)
			},
		},
	)
	return cmd
}

// bstRunner runs the bst subcommands for one element type.
type bstRunner interface {
	build(values []string) error
	show(input string) error
	insert(input string, values []string) error
	delete(input string, values []string) error
	search(input, value string) error
}

func newBSTRunner() (bstRunner, error) {
	switch bstType {
	case "int":
		return &bstCommand[int]{parse: strconv.Atoi}, nil
	case "float":
		return &bstCommand[float64]{parse: parseFloat}, nil
	case "string":
		return &bstCommand[string]{parse: func(s string) (string, error) { return s, nil }}, nil
	default:
		return nil, fmt.Errorf("unknown element type %q (want int, float or string)", bstType)
	}
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("NaN cannot be ordered")
	}
	return f, nil
}

func runBSTBuild(args []string) error {
	r, err := newBSTRunner()
	if err != nil {
		return err
	}
	return r.build(args)
}

func runBSTShow(args []string) error {
	r, err := newBSTRunner()
	if err != nil {
		return err
	}
	return r.show(args[0])
}

func runBSTInsert(args []string) error {
	r, err := newBSTRunner()
	if err != nil {
		return err
	}
	return r.insert(args[0], args[1:])
}

func runBSTDelete(args []string) error {
	r, err := newBSTRunner()
	if err != nil {
		return err
	}
	return r.delete(args[0], args[1:])
}

func runBSTSearch(args []string) error {
	r, err := newBSTRunner()
	if err != nil {
		return err
	}
	return r.search(args[0], args[1])
}

type bstCommand[T cmp.Ordered] struct {
	parse func(string) (T, error)
}

func (c *bstCommand[T]) parseAll(raw []string) ([]T, error) {
	values := make([]T, len(raw))
	for i, s := range raw {
		v, err := c.parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid %s: %w", types.ErrTypeMismatch, s, bstType, err)
		}
		values[i] = v
	}
	return values, nil
}

func (c *bstCommand[T]) load(input string) (*bst.Tree[T], error) {
	t, err := bst.Load[T](input)
	if err != nil {
		return nil, fmt.Errorf("failed to load tree: %w", err)
	}
	printVerbose("Loaded %d nodes (height %d)\n", t.Size(), t.Height())
	return t, nil
}

// emit writes the tree to --output when set, and prints it otherwise.
func (c *bstCommand[T]) emit(t *bst.Tree[T]) error {
	if bstOutput != "" {
		if err := t.WriteFile(bstOutput); err != nil {
			return err
		}
		printInfo("Wrote %d nodes to %s\n", t.Size(), bstOutput)
		return nil
	}
	return c.print(t)
}

func (c *bstCommand[T]) print(t *bst.Tree[T]) error {
	p, err := newPrinter(func(o *printer.Options) { o.MaxDepth = bstDepth })
	if err != nil {
		return err
	}
	if bstOrder == "" {
		return printer.PrintBST(p, t)
	}

	order, err := bst.ParseOrder(bstOrder)
	if err != nil {
		return err
	}
	values := t.Values(order)
	seq := make([]any, len(values))
	for i, v := range values {
		seq[i] = v
	}
	return p.PrintSequence(seq)
}

func (c *bstCommand[T]) build(raw []string) error {
	values, err := c.parseAll(raw)
	if err != nil {
		return err
	}
	return c.emit(bst.New(values...))
}

func (c *bstCommand[T]) show(input string) error {
	t, err := c.load(input)
	if err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		printVerbose("Warning: %v\n", err)
	}
	return c.print(t)
}

func (c *bstCommand[T]) insert(input string, raw []string) error {
	values, err := c.parseAll(raw)
	if err != nil {
		return err
	}
	t, err := c.load(input)
	if err != nil {
		return err
	}
	for _, v := range values {
		t.Insert(v)
	}
	return c.emit(t)
}

func (c *bstCommand[T]) delete(input string, raw []string) error {
	values, err := c.parseAll(raw)
	if err != nil {
		return err
	}
	t, err := c.load(input)
	if err != nil {
		return err
	}
	for _, v := range values {
		if !t.Delete(v) {
			printVerbose("Value %v not in tree, skipped\n", v)
		}
	}
	return c.emit(t)
}

func (c *bstCommand[T]) search(input, raw string) error {
	v, err := c.parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid %s: %w", types.ErrTypeMismatch, raw, bstType, err)
	}
	t, err := c.load(input)
	if err != nil {
		return err
	}
	if !t.Contains(v) {
		return fmt.Errorf("value %v: %w", v, types.ErrNotFound)
	}
	printInfo("found %v\n", v)
	return nil
}
