package bst

import (
	"cmp"
	"fmt"
	"io"

	"github.com/joshuapare/treekit/internal/codec"
	"github.com/joshuapare/treekit/internal/fsutil"
)

// ToYAML renders the tree as YAML with keys in value, left, right order.
// An empty tree renders as "null".
func (t *Tree[T]) ToYAML() ([]byte, error) {
	return codec.Marshal(t.ToStructured())
}

// WriteFile writes the YAML form of the tree to path, replacing it atomically.
func (t *Tree[T]) WriteFile(path string) error {
	data, err := t.ToYAML()
	if err != nil {
		return err
	}
	if err := fsutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}

// ParseYAML decodes YAML text into a tree.
func ParseYAML[T cmp.Ordered](data []byte) (*Tree[T], error) {
	var raw any
	if err := codec.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return DecodeStructured[T](raw)
}

// ReadYAML decodes a tree from r.
func ReadYAML[T cmp.Ordered](r io.Reader) (*Tree[T], error) {
	var raw any
	if err := codec.Decode(r, &raw); err != nil {
		return nil, err
	}
	return DecodeStructured[T](raw)
}

// Load builds a tree from either a file path or literal YAML text.
//
// input is read as a file when it contains no line break and names an
// existing file; otherwise, or if reading fails, it is parsed as YAML text.
// A one-line YAML document that matches a filename on disk is therefore read
// from that file.
func Load[T cmp.Ordered](input string) (*Tree[T], error) {
	data, src := codec.ReadSource(input)
	tree, err := ParseYAML[T](data)
	if err != nil {
		return nil, fmt.Errorf("load %s input: %w", src, err)
	}
	return tree, nil
}

// LoadFile builds a tree from the YAML file at path. Unlike Load it never
// treats path as YAML text.
func LoadFile[T cmp.Ordered](path string) (*Tree[T], error) {
	data, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAML[T](data)
}
