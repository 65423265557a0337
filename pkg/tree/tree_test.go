package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTree builds
//
//	10
//	├── 5
//	│   ├── 3
//	│   └── 7
//	└── 15
//	    └── 18
func sampleTree() *Tree {
	root := NewNode(10)
	five := root.AddChild(NewNode(5))
	five.AddChild(NewNode(3))
	five.AddChild(NewNode(7))
	fifteen := root.AddChild(NewNode(15))
	fifteen.AddChild(NewNode(18))
	return New(root)
}

func TestTraversals(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t, []any{10, 5, 3, 7, 15, 18}, Values(tree.Preorder()))
	assert.Equal(t, []any{3, 7, 5, 18, 15, 10}, Values(tree.Postorder()))
	assert.Equal(t, []any{10, 5, 15, 3, 7, 18}, Values(tree.Levelorder()))
}

func TestTraversals_Empty(t *testing.T) {
	tree := New(nil)

	for _, nodes := range [][]*Node{tree.Preorder(), tree.Postorder(), tree.Levelorder()} {
		assert.NotNil(t, nodes)
		assert.Empty(t, nodes)
	}
	assert.Equal(t, 0, tree.NodeCount())
	assert.True(t, tree.IsEmpty())
}

func TestTraversals_FromSubtree(t *testing.T) {
	tree := sampleTree()
	five := tree.Root.Children[0]

	assert.Equal(t, []string{"5", "3", "7"}, Names(Preorder(five)))
	assert.Equal(t, []string{"3", "7", "5"}, Names(Postorder(five)))
	assert.Equal(t, []string{"5", "3", "7"}, Names(Levelorder(five)))
}

func TestTraversals_CountsAgree(t *testing.T) {
	tree := sampleTree()
	n := tree.NodeCount()

	assert.Equal(t, 6, n)
	assert.Len(t, tree.Postorder(), n)
	assert.Len(t, tree.Levelorder(), n)
}

func TestWalk_DeepChain(t *testing.T) {
	const depth = 100_000

	root := NewNode(0)
	n := root
	for i := 1; i < depth; i++ {
		n = n.AddChild(NewNode(i))
	}
	tree := New(root)

	for _, order := range []Order{PreOrder, PostOrder, LevelOrder} {
		t.Run(order.String(), func(t *testing.T) {
			count := 0
			require.NoError(t, tree.Walk(order, func(*Node) error {
				count++
				return nil
			}))
			assert.Equal(t, depth, count)
		})
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	tree := sampleTree()
	boom := errors.New("boom")

	var seen []any
	err := tree.Walk(LevelOrder, func(n *Node) error {
		seen = append(seen, n.Value)
		if n.Value == 15 {
			return boom
		}
		return nil
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []any{10, 5, 15}, seen)
}

func TestWalk_SkipAll(t *testing.T) {
	tree := sampleTree()

	var seen []any
	err := tree.Walk(PostOrder, func(n *Node) error {
		seen = append(seen, n.Value)
		if n.Value == 5 {
			return SkipAll
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []any{3, 7, 5}, seen)
}

func TestWalk_UnknownOrder(t *testing.T) {
	err := sampleTree().Walk(Order(9), func(*Node) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Order(9)")
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{"pre", PreOrder, false},
		{"preorder", PreOrder, false},
		{"POST", PostOrder, false},
		{" level ", LevelOrder, false},
		{"bfs", LevelOrder, false},
		{"inorder", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrder(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind(t *testing.T) {
	root := NewNamedNode("root", 0)
	a := root.AddChild(NewNamedNode("dup", 1))
	a.AddChild(NewNamedNode("deep", 2))
	root.AddChild(NewNamedNode("dup", 3))
	tree := New(root)

	assert.Same(t, a, tree.Find("dup"), "first match in pre-order")
	assert.Equal(t, 2, tree.Find("deep").Value)
	assert.Nil(t, tree.Find("missing"))
	assert.Nil(t, New(nil).Find("root"))

	all := tree.FindAll("dup")
	assert.Equal(t, []any{1, 3}, Values(all))
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 0, Height(nil))
	assert.Equal(t, 0, Height(NewNode("leaf")))
	assert.Equal(t, 2, sampleTree().Height())
	assert.Equal(t, 1, Height(sampleTree().Root.Children[0]))
	assert.Equal(t, 0, New(nil).Height())
}

func TestLookup(t *testing.T) {
	root := NewNamedNode("root", "")
	docs := root.AddChild(NewNamedNode("docs", ""))
	api := docs.AddChild(NewNamedNode("api", "v1"))
	root.AddChild(NewNamedNode("src", ""))
	tree := New(root)

	tests := []struct {
		path string
		want *Node
	}{
		{"", root},
		{"docs", docs},
		{"docs/api", api},
		{"/docs//api/", api},
		{"docs/missing", nil},
		{"api", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Same(t, tt.want, tree.Lookup(tt.path))
		})
	}

	assert.Nil(t, New(nil).Lookup("docs"))
}

func TestOrder_String(t *testing.T) {
	assert.Equal(t, "preorder", PreOrder.String())
	assert.Equal(t, "postorder", PostOrder.String())
	assert.Equal(t, "levelorder", LevelOrder.String())
}
