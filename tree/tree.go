// Package tree implements an arena-allocated radix tree keyed by path
// segments. Reports use it as the account aggregation tree: account paths
// split on ':' map to chains of nodes, and a posting's quantity can be
// rolled up to every ancestor in a single walk.
//
// Nodes live in an append-only arena and are addressed by index, so
// indices handed out by AddPath stay valid for the life of the tree.
package tree

import (
	"errors"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slices"
)

// Root is the index of the root node. The root is created with the tree
// and is never removed.
const Root = 0

// ErrNodeOutOfBounds is returned when a node index does not name a node in
// the arena.
var ErrNodeOutOfBounds = errors.New("node index out of bounds")

// secondaryWidth is the column the display right-aligns secondary strings
// into, measured in display cells.
const secondaryWidth = 20

// Node is a single tree node holding a user-supplied value. The zero
// value of V is the value of nodes created implicitly along a path.
type Node[V any] struct {
	Value V

	parent   int
	children map[string]int
}

// Tree is the arena of nodes. The zero Tree is not usable; call New.
type Tree[V any] struct {
	arena []Node[V]
}

// New creates a tree holding only the root node.
func New[V any]() *Tree[V] {
	t := &Tree[V]{}
	t.arena = append(t.arena, Node[V]{parent: -1, children: map[string]int{}})
	return t
}

// Len returns the number of nodes in the arena, including the root.
func (t *Tree[V]) Len() int {
	return len(t.arena)
}

// AddPath walks the segments from the root, creating missing nodes with
// zero values, and returns the index of the terminal node. Adding the same
// path twice returns the same index without growing the arena.
func (t *Tree[V]) AddPath(path []string) int {
	index := Root
	for _, segment := range path {
		child, ok := t.arena[index].children[segment]
		if !ok {
			child = len(t.arena)
			t.arena = append(t.arena, Node[V]{parent: index, children: map[string]int{}})
			t.arena[index].children[segment] = child
		}
		index = child
	}
	return index
}

// NodeAt returns the node at index, or nil if the index is out of bounds.
func (t *Tree[V]) NodeAt(index int) *Node[V] {
	if index < 0 || index >= len(t.arena) {
		return nil
	}
	return &t.arena[index]
}

// IndexAt returns the index of the node at the given path.
func (t *Tree[V]) IndexAt(path []string) (int, bool) {
	index := Root
	for _, segment := range path {
		child, ok := t.arena[index].children[segment]
		if !ok {
			return 0, false
		}
		index = child
	}
	return index, true
}

// At returns the node at the given path, or nil and false if any segment
// is absent.
func (t *Tree[V]) At(path []string) (*Node[V], bool) {
	index, ok := t.IndexAt(path)
	if !ok {
		return nil, false
	}
	return &t.arena[index], true
}

// WalkAncestors applies f to the node at index and to each of its
// ancestors, stopping before the root. Each node is visited exactly once,
// which makes it the roll-up primitive: adding a posting's quantity inside
// f aggregates it at the leaf account and every parent in one pass.
func (t *Tree[V]) WalkAncestors(index int, f func(*Node[V])) error {
	if index < 0 || index >= len(t.arena) {
		return ErrNodeOutOfBounds
	}
	for index != Root {
		node := &t.arena[index]
		f(node)
		index = node.parent
	}
	return nil
}

// WalkDescendants applies f to every descendant of the node at index, not
// including the node itself. The walk is depth first: each node is visited
// before its own children, and siblings are visited in alphabetical order.
func (t *Tree[V]) WalkDescendants(index int, f func(*Node[V])) error {
	if index < 0 || index >= len(t.arena) {
		return ErrNodeOutOfBounds
	}
	for _, child := range t.sortedChildren(index) {
		f(&t.arena[child])
		// The arena is append-only, so recursing cannot invalidate child
		// indices gathered above.
		_ = t.WalkDescendants(child, f)
	}
	return nil
}

// Renderer produces an optional secondary string for a node, e.g. a
// formatted amount. Returning false renders the node's name alone.
type Renderer[V any] func(*Node[V]) (string, bool)

// Display writes the subtree under root (not including root itself) with
// children ordered alphabetically by segment and indent proportional to
// depth. When the renderer supplies a secondary string it is right-aligned
// in a leading column, using display width so that wide commodity symbols
// line up.
func (t *Tree[V]) Display(w io.Writer, root int, render Renderer[V]) error {
	if root < 0 || root >= len(t.arena) {
		return ErrNodeOutOfBounds
	}
	t.displayChildren(w, root, 0, render)
	return nil
}

func (t *Tree[V]) displayChildren(w io.Writer, index, depth int, render Renderer[V]) {
	node := &t.arena[index]
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		child := node.children[name]
		indent := depth * 2
		if secondary, ok := render(&t.arena[child]); ok {
			_, _ = fmt.Fprintf(w, "%s  %*s%s\n", runewidth.FillLeft(secondary, secondaryWidth), indent, "", name)
		} else {
			_, _ = fmt.Fprintf(w, "%*s%s\n", indent, "", name)
		}
		t.displayChildren(w, child, depth+1, render)
	}
}

func (t *Tree[V]) sortedChildren(index int) []int {
	node := &t.arena[index]
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	slices.Sort(names)

	children := make([]int, len(names))
	for i, name := range names {
		children[i] = node.children[name]
	}
	return children
}
