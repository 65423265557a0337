package printer

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/treekit/pkg/bst"
	"github.com/joshuapare/treekit/pkg/tree"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable outline.
	FormatText Format = "text"

	// FormatJSON outputs the structured node form as JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs the structured node form as YAML, the same shape the
	// loaders accept.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, yaml).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (json format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels below the root are drawn (text format
	// only, 0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ASCII draws general trees with plain ASCII connectors.
	// Default: false
	ASCII bool

	// Compact emits single-line JSON.
	// Default: false
	Compact bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
		ASCII:      false,
		Compact:    false,
	}
}

// Printer handles formatted output of trees.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	t, _ := tree.LoadFile("layout.yaml")
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintTree(t)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// PrintTree prints a general tree.
func (p *Printer) PrintTree(t *tree.Tree) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(t.ToStructured())
	case FormatYAML:
		return p.printYAML(t.ToStructured())
	default:
		return p.printTreeText(t)
	}
}

// PrintBST prints a binary search tree. It is a function rather than a
// method because Go methods cannot take type parameters.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	printer.PrintBST(p, bst.New(10, 5, 15))
func PrintBST[T cmp.Ordered](p *Printer, t *bst.Tree[T]) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(t.ToStructured())
	case FormatYAML:
		return p.printYAML(t.ToStructured())
	default:
		return printBSTText(p, t)
	}
}

// PrintSequence prints a flat list of values such as a traversal: one value
// per line in text format, an array in JSON and YAML.
func (p *Printer) PrintSequence(values []any) error {
	if values == nil {
		values = []any{}
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(values)
	case FormatYAML:
		return p.printYAML(values)
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(p.writer, v); err != nil {
				return err
			}
		}
		return nil
	}
}

// PrintRecord prints a flat set of named fields, such as statistics. Text
// output lists fields in the given key order.
func (p *Printer) PrintRecord(keys []string, record map[string]any) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(record)
	case FormatYAML:
		return p.printYAML(record)
	default:
		width := 0
		for _, k := range keys {
			width = max(width, len(k))
		}
		for _, k := range keys {
			if _, err := fmt.Fprintf(p.writer, "%-*s  %v\n", width+1, k+":", record[k]); err != nil {
				return err
			}
		}
		return nil
	}
}
