package tree

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/treekit/pkg/types"
)

// Mapping keys of the structured node form.
const (
	KeyValue    = "value"
	KeyName     = "name"
	KeyChildren = "children"
)

// Doc is the structured form of a node. Name is omitted when it equals the
// string form of Value, so emitted documents stay as terse as hand-written
// ones.
type Doc struct {
	Value    any    `yaml:"value" json:"value"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Children []*Doc `yaml:"children,omitempty" json:"children,omitempty"`
}

// ToStructured converts the subtree rooted at n into nested Docs.
func (n *Node) ToStructured() *Doc {
	d := &Doc{Value: n.Value}
	if n.Name != defaultName(n.Value) {
		d.Name = n.Name
	}
	if len(n.Children) > 0 {
		d.Children = make([]*Doc, len(n.Children))
		for i, child := range n.Children {
			d.Children[i] = child.ToStructured()
		}
	}
	return d
}

// ToStructured converts the tree into nested Docs. An empty tree yields nil.
func (t *Tree) ToStructured() *Doc {
	if t.Root == nil {
		return nil
	}
	return t.Root.ToStructured()
}

// FromDoc rebuilds a node tree from nested Docs. A nil Doc yields nil.
func FromDoc(d *Doc) *Node {
	if d == nil {
		return nil
	}
	n := NewNamedNode(d.Name, d.Value)
	for _, child := range d.Children {
		if c := FromDoc(child); c != nil {
			n.AddChild(c)
		}
	}
	return n
}

// FromStructured builds a node tree from untyped codec output. No limits
// are applied, so every tree ToStructured emits is accepted; use
// FromStructuredWithLimits for untrusted input.
//
// Each node is a mapping with optional keys value (default ""), name (default
// the string form of value) and children (a sequence of nodes). nil yields a
// nil root. Any malformed node aborts the whole build.
func FromStructured(data any) (*Node, error) {
	return FromStructuredWithLimits(data, Limits{})
}

// FromStructuredWithLimits is FromStructured with explicit limits. Limit
// violations are reported as *ValidationError.
func FromStructuredWithLimits(data any, limits Limits) (*Node, error) {
	if data == nil {
		return nil, nil
	}
	b := &builder{limits: limits}
	return b.build(data, "", 0)
}

type builder struct {
	limits Limits
	nodes  int
}

// build decodes one node. path is the index path used in error messages.
func (b *builder) build(data any, path string, depth int) (*Node, error) {
	if exceeds(depth, b.limits.MaxTreeDepth) {
		return nil, &ValidationError{Limit: "MaxTreeDepth", Current: depth, Maximum: b.limits.MaxTreeDepth, NodePath: path}
	}
	b.nodes++
	if exceeds(b.nodes, b.limits.MaxNodes) {
		return nil, &ValidationError{Limit: "MaxNodes", Current: b.nodes, Maximum: b.limits.MaxNodes, NodePath: path}
	}

	m, ok := asMapping(data)
	if !ok {
		return nil, fmt.Errorf("node %s: %w: expected mapping, got %T", describe(path), types.ErrMalformed, data)
	}

	value, ok := m[KeyValue]
	if !ok {
		value = ""
	}

	var name string
	switch raw := m[KeyName].(type) {
	case nil:
	case string:
		name = raw
	default:
		name = fmt.Sprint(raw)
	}
	node := NewNamedNode(name, value)
	if nameLen := utf8.RuneCountInString(node.Name); exceeds(nameLen, b.limits.MaxNameLen) {
		return nil, &ValidationError{Limit: "MaxNameLen", Current: nameLen, Maximum: b.limits.MaxNameLen, NodePath: path}
	}

	var children []any
	switch raw := m[KeyChildren].(type) {
	case nil:
	case []any:
		children = raw
	default:
		return nil, fmt.Errorf("node %s: %w: %q must be a sequence, got %T", describe(path), types.ErrMalformed, KeyChildren, raw)
	}
	if exceeds(len(children), b.limits.MaxChildren) {
		return nil, &ValidationError{Limit: "MaxChildren", Current: len(children), Maximum: b.limits.MaxChildren, NodePath: path}
	}

	for i, raw := range children {
		child, err := b.build(raw, joinIndex(path, i), depth+1)
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}

func describe(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

// asMapping accepts the mapping shapes produced by YAML and JSON decoders.
func asMapping(data any) (map[string]any, bool) {
	switch m := data.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				continue
			}
			out[key] = v
		}
		return out, true
	default:
		return nil, false
	}
}
