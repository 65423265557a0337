package tree

import (
	"fmt"
	"io"

	"github.com/joshuapare/treekit/internal/codec"
	"github.com/joshuapare/treekit/internal/fsutil"
	"github.com/joshuapare/treekit/internal/logger"
)

// ParseYAML decodes a nested {value, name, children} YAML document into a
// tree without limits. An empty or null document yields an empty tree.
func ParseYAML(data []byte) (*Tree, error) {
	return ParseYAMLWithLimits(data, Limits{})
}

// ParseYAMLWithLimits is ParseYAML with explicit limits.
func ParseYAMLWithLimits(data []byte, limits Limits) (*Tree, error) {
	var raw any
	if err := codec.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	root, err := FromStructuredWithLimits(raw, limits)
	if err != nil {
		return nil, err
	}
	return New(root), nil
}

// ReadYAML decodes a tree from r.
func ReadYAML(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}
	return ParseYAML(data)
}

// LoadFile reads a tree from the YAML file at path. A missing file is
// reported as types.ErrNotFound.
func LoadFile(path string) (*Tree, error) {
	data, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debug("loaded tree", "path", path, "nodes", t.NodeCount())
	return t, nil
}

// ToYAML renders the tree in the same nested form LoadFile accepts.
// An empty tree renders as "null".
func (t *Tree) ToYAML() ([]byte, error) {
	return codec.Marshal(t.ToStructured())
}

// WriteFile writes the YAML form of the tree to path, replacing it atomically.
func (t *Tree) WriteFile(path string) error {
	data, err := t.ToYAML()
	if err != nil {
		return err
	}
	if err := fsutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}
