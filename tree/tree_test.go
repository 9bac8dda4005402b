package tree

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/mattn/go-runewidth"
)

func TestAddPath(t *testing.T) {
	tr := New[int]()

	index := tr.AddPath([]string{"a", "b", "c"})
	assert.Equal(t, 3, index)
	assert.Equal(t, 4, tr.Len())

	// Adding the same path again returns the same index without growing
	// the arena.
	assert.Equal(t, index, tr.AddPath([]string{"a", "b", "c"}))
	assert.Equal(t, 4, tr.Len())

	// A sibling only adds the missing node.
	assert.Equal(t, 4, tr.AddPath([]string{"a", "b", "d"}))
	assert.Equal(t, 5, tr.Len())
}

func TestAt(t *testing.T) {
	tr := New[int]()
	tr.AddPath([]string{"a", "b", "c"})

	node, ok := tr.At([]string{"a", "b"})
	assert.True(t, ok)
	node.Value = 42

	node, ok = tr.At([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, 42, node.Value)

	_, ok = tr.At([]string{"a", "x"})
	assert.False(t, ok)
}

func TestWalkAncestorsExcludesRoot(t *testing.T) {
	tr := New[int]()
	index := tr.AddPath([]string{"a", "b", "c"})

	visited := 0
	err := tr.WalkAncestors(index, func(node *Node[int]) {
		node.Value++
		visited++
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, visited)

	// The root keeps its zero value.
	assert.Equal(t, 0, tr.NodeAt(Root).Value)

	for _, path := range [][]string{{"a"}, {"a", "b"}, {"a", "b", "c"}} {
		node, ok := tr.At(path)
		assert.True(t, ok)
		assert.Equal(t, 1, node.Value)
	}
}

func TestWalkAncestorsRejectsBadIndex(t *testing.T) {
	tr := New[int]()
	err := tr.WalkAncestors(99, func(*Node[int]) {})
	assert.IsError(t, err, ErrNodeOutOfBounds)
}

func TestWalkDescendants(t *testing.T) {
	tr := New[int]()
	tr.AddPath([]string{"a", "b"})
	tr.AddPath([]string{"a", "c"})
	tr.AddPath([]string{"d"})

	index, ok := tr.IndexAt([]string{"a"})
	assert.True(t, ok)

	visited := 0
	err := tr.WalkDescendants(index, func(node *Node[int]) {
		visited++
	})
	assert.NoError(t, err)

	// Only b and c descend from a; a itself and d are not visited.
	assert.Equal(t, 2, visited)
}

func TestDisplay(t *testing.T) {
	tr := New[int]()
	tr.AddPath([]string{"b"})
	tr.AddPath([]string{"a", "z"})
	tr.AddPath([]string{"a", "m"})

	var sb strings.Builder
	assert.NoError(t, tr.Display(&sb, Root, func(*Node[int]) (string, bool) {
		return "", false
	}))

	want := "a\n  m\n  z\nb\n"
	assert.Equal(t, want, sb.String())
}

func TestDisplayWithSecondary(t *testing.T) {
	tr := New[int]()
	index := tr.AddPath([]string{"a"})
	tr.NodeAt(index).Value = 7

	var sb strings.Builder
	assert.NoError(t, tr.Display(&sb, Root, func(n *Node[int]) (string, bool) {
		return "£7.00", true
	}))

	want := runewidth.FillLeft("£7.00", 20) + "  a\n"
	assert.Equal(t, want, sb.String())
}
