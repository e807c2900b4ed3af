package graph

import (
	"github.com/MichaelMMacLeod/kakoi/internal/slab"
)

// TreeID identifies a node in a Tree. The zero TreeID is invalid.
type TreeID struct {
	h slab.Handle
}

// IsZero reports whether id is the invalid zero id.
func (id TreeID) IsZero() bool {
	return id.h == slab.Handle{}
}

type treeNode[T any] struct {
	source   NodeID
	value    T
	children []TreeID
}

// Tree is the indication tree built when flattening a group for
// display: each tree node pairs a graph node with a caller payload.
// Trees are rebuilt per flatten; RemoveRoot discards the previous one
// and returns its slots to the free list, which is the only storage
// reclamation in the system.
type Tree[T any] struct {
	nodes *slab.Slab[treeNode[T]]
	root  TreeID
}

// NewTree returns an empty tree.
func NewTree[T any]() *Tree[T] {
	return &Tree[T]{nodes: slab.New[treeNode[T]]()}
}

// InsertRoot creates the root. Calling it while a root exists is a
// caller bug and panics; RemoveRoot first.
func (t *Tree[T]) InsertRoot(source NodeID, value T) TreeID {
	if !t.root.IsZero() {
		panic("graph: tree already has a root")
	}
	t.root = TreeID{t.nodes.Insert(treeNode[T]{source: source, value: value})}
	return t.root
}

// InsertChild appends a child under parent.
func (t *Tree[T]) InsertChild(parent TreeID, source NodeID, value T) TreeID {
	id := TreeID{t.nodes.Insert(treeNode[T]{source: source, value: value})}
	p := t.nodes.Ptr(parent.h)
	if p == nil {
		panic("graph: dangling tree id")
	}
	p.children = append(p.children, id)
	return id
}

// Root returns the root. ok is false for an empty tree.
func (t *Tree[T]) Root() (TreeID, bool) {
	return t.root, !t.root.IsZero()
}

// Node returns the graph node and payload at id.
func (t *Tree[T]) Node(id TreeID) (NodeID, T) {
	n, ok := t.nodes.Get(id.h)
	if !ok {
		panic("graph: dangling tree id")
	}
	return n.source, n.value
}

// Children returns a copy of id's children in insertion order.
func (t *Tree[T]) Children(id TreeID) []TreeID {
	n, ok := t.nodes.Get(id.h)
	if !ok {
		panic("graph: dangling tree id")
	}
	out := make([]TreeID, len(n.children))
	copy(out, n.children)
	return out
}

// RemoveRoot frees the entire tree iteratively, returning every slot
// to the free list. A no-op on an empty tree.
func (t *Tree[T]) RemoveRoot() {
	if t.root.IsZero() {
		return
	}
	stack := []TreeID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n, ok := t.nodes.Get(id.h)
		if !ok {
			continue
		}
		stack = append(stack, n.children...)
		t.nodes.Remove(id.h)
	}
	t.root = TreeID{}
}

// Len returns the number of live tree nodes.
func (t *Tree[T]) Len() int { return t.nodes.Len() }
