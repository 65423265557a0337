package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/treekit/pkg/bst"
	"github.com/joshuapare/treekit/pkg/tree"
)

func sampleTree(t *testing.T) *tree.Tree {
	t.Helper()
	root, err := tree.BuildFromEdges("root", []tree.Edge{
		{Path: "", Value: "a"},
		{Path: "", Value: "b"},
		{Path: "0", Value: "c"},
	})
	require.NoError(t, err)
	return tree.New(root)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"reg", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrinter_PrintTree_Text(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())

	require.NoError(t, p.PrintTree(sampleTree(t)))

	output := buf.String()
	t.Logf("Text output:\n%s", output)
	require.Equal(t, sampleTree(t).Display(), output)
}

func TestPrinter_PrintTree_TextOptions(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ASCII = true
	opts.MaxDepth = 1

	require.NoError(t, New(&buf, opts).PrintTree(sampleTree(t)))

	output := buf.String()
	require.Contains(t, output, "|-- a (a)")
	require.Contains(t, output, "`-- b (b)")
	require.NotContains(t, output, "c (c)")
}

func TestPrinter_PrintTree_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON

	require.NoError(t, New(&buf, opts).PrintTree(sampleTree(t)))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "root", doc["value"])
	require.Len(t, doc["children"], 2)
}

func TestPrinter_PrintTree_YAML(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatYAML

	require.NoError(t, New(&buf, opts).PrintTree(sampleTree(t)))

	back, err := tree.ParseYAML(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, sampleTree(t).Display(), back.Display())
}

func TestPrinter_PrintTree_Empty(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "(empty)\n"},
		{FormatJSON, "null\n"},
		{FormatYAML, "null\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			opts := DefaultOptions()
			opts.Format = tt.format

			require.NoError(t, New(&buf, opts).PrintTree(tree.New(nil)))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintBST_Text(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())

	require.NoError(t, PrintBST(p, bst.New(10, 5, 15, 3, 7, 12, 17)))

	output := buf.String()
	t.Logf("Text output:\n%s", output)
	require.True(t, strings.HasPrefix(output, "10\n"))
	require.Contains(t, output, "[L]")
	require.Contains(t, output, "[R]")
	for _, v := range []string{"3", "5", "7", "12", "15", "17"} {
		require.Contains(t, output, v)
	}
	require.Len(t, strings.Split(strings.TrimRight(output, "\n"), "\n"), 7)
}

func TestPrintBST_TextMaxDepth(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.MaxDepth = 1

	require.NoError(t, PrintBST(New(&buf, opts), bst.New(10, 5, 15, 3, 7, 12, 17)))

	output := buf.String()
	require.Len(t, strings.Split(strings.TrimRight(output, "\n"), "\n"), 3)
	require.NotContains(t, output, "17")
}

func TestPrintBST_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.Compact = true

	require.NoError(t, PrintBST(New(&buf, opts), bst.New(2, 1)))
	require.Equal(t, `{"value":2,"left":{"value":1,"left":null,"right":null},"right":null}`+"\n", buf.String())
}

func TestPrintBST_YAML(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatYAML
	src := bst.New("m", "c", "x")

	require.NoError(t, PrintBST(New(&buf, opts), src))

	back, err := bst.ParseYAML[string](buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, src.Preorder(), back.Preorder())
}

func TestPrintBST_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintBST(New(&buf, DefaultOptions()), bst.New[int]()))
	require.Equal(t, EmptyTreeText+"\n", buf.String())
}

func TestPrintSequence(t *testing.T) {
	values := []any{3, "x", 1.5}

	tests := []struct {
		format Format
		want   string
	}{
		{FormatText, "3\nx\n1.5\n"},
		{FormatJSON, "[\n  3,\n  \"x\",\n  1.5\n]\n"},
		{FormatYAML, "- 3\n- x\n- 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			opts := DefaultOptions()
			opts.Format = tt.format
			require.NoError(t, New(&buf, opts).PrintSequence(values))
			require.Equal(t, tt.want, buf.String())
		})
	}

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.Compact = true
	require.NoError(t, New(&buf, opts).PrintSequence(nil))
	require.Equal(t, "[]\n", buf.String())
}

func TestPrintRecord(t *testing.T) {
	keys := []string{"nodes", "height"}
	record := map[string]any{"nodes": 6, "height": 2}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintRecord(keys, record))
	require.Equal(t, "nodes:   6\nheight:  2\n", buf.String())

	buf.Reset()
	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.Compact = true
	require.NoError(t, New(&buf, opts).PrintRecord(keys, record))
	require.Equal(t, `{"height":2,"nodes":6}`+"\n", buf.String())
}
