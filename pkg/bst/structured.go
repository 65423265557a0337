package bst

import (
	"cmp"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/treekit/pkg/types"
)

// Mapping keys of the structured node form.
const (
	KeyValue = "value"
	KeyLeft  = "left"
	KeyRight = "right"
)

// Doc is the structured form of a node: a nested {value, left, right}
// mapping. A nil *Doc stands for an absent node or an empty tree.
//
// Field order fixes the key order of emitted YAML and JSON.
type Doc[T cmp.Ordered] struct {
	Value T       `yaml:"value" json:"value"`
	Left  *Doc[T] `yaml:"left" json:"left"`
	Right *Doc[T] `yaml:"right" json:"right"`
}

// ToStructured converts the tree into nested Docs. An empty tree yields nil.
func (t *Tree[T]) ToStructured() *Doc[T] {
	return toDoc(t.Root)
}

func toDoc[T cmp.Ordered](n *Node[T]) *Doc[T] {
	if n == nil {
		return nil
	}
	return &Doc[T]{
		Value: n.Value,
		Left:  toDoc(n.Left),
		Right: toDoc(n.Right),
	}
}

// FromStructured rebuilds a tree from nested Docs. It is the exact inverse
// of ToStructured; node shape is taken as given, not re-derived by insertion.
func FromStructured[T cmp.Ordered](doc *Doc[T]) *Tree[T] {
	return &Tree[T]{Root: fromDoc(doc)}
}

func fromDoc[T cmp.Ordered](d *Doc[T]) *Node[T] {
	if d == nil {
		return nil
	}
	return &Node[T]{
		Value: d.Value,
		Left:  fromDoc(d.Left),
		Right: fromDoc(d.Right),
	}
}

// DecodeStructured rebuilds a tree from untyped codec output.
//
// nil yields an empty tree. Every node must be a mapping with a value key;
// missing left/right keys mean absent children. Values are converted to T
// without loss or the whole decode fails; no partial tree is returned.
func DecodeStructured[T cmp.Ordered](data any) (*Tree[T], error) {
	root, err := decodeNode[T](data, "root")
	if err != nil {
		return nil, err
	}
	return &Tree[T]{Root: root}, nil
}

func decodeNode[T cmp.Ordered](data any, where string) (*Node[T], error) {
	if data == nil {
		return nil, nil
	}

	m, ok := asMapping(data)
	if !ok {
		return nil, fmt.Errorf("%s: %w: expected mapping, got %T", where, types.ErrMalformed, data)
	}

	raw, ok := m[KeyValue]
	if !ok {
		return nil, fmt.Errorf("%s: %w: missing %q key", where, types.ErrMalformed, KeyValue)
	}
	value, err := coerce[T](raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", where, err)
	}

	left, err := decodeNode[T](m[KeyLeft], where+"."+KeyLeft)
	if err != nil {
		return nil, err
	}
	right, err := decodeNode[T](m[KeyRight], where+"."+KeyRight)
	if err != nil {
		return nil, err
	}

	return &Node[T]{Value: value, Left: left, Right: right}, nil
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

// MarshalYAML implements yaml.Marshaler.
func (t *Tree[T]) MarshalYAML() (any, error) {
	return t.ToStructured(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same rules as
// DecodeStructured.
func (t *Tree[T]) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %w", types.ErrMalformed, err)
	}
	decoded, err := DecodeStructured[T](raw)
	if err != nil {
		return err
	}
	t.Root = decoded.Root
	return nil
}

// Validate checks the ordering invariant: left subtrees strictly less than
// their parent, right subtrees greater than or equal to it. Trees built with
// Insert always pass; structured input is not checked on decode.
func (t *Tree[T]) Validate() error {
	type frame struct {
		node   *Node[T]
		lo, hi *T // lo inclusive, hi exclusive; nil = unbounded
	}

	stack := make([]frame, 0, initialStackCapacity)
	if t.Root != nil {
		stack = append(stack, frame{node: t.Root})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v := f.node.Value
		if v != v {
			return fmt.Errorf("%w: unordered value %v", types.ErrMalformed, v)
		}
		if f.lo != nil && v < *f.lo {
			return fmt.Errorf("%w: %v is in the right subtree of %v", types.ErrMalformed, v, *f.lo)
		}
		if f.hi != nil && !(v < *f.hi) {
			return fmt.Errorf("%w: %v is in the left subtree of %v", types.ErrMalformed, v, *f.hi)
		}

		if f.node.Left != nil {
			stack = append(stack, frame{node: f.node.Left, lo: f.lo, hi: &f.node.Value})
		}
		if f.node.Right != nil {
			stack = append(stack, frame{node: f.node.Right, lo: &f.node.Value, hi: f.hi})
		}
	}
	return nil
}
