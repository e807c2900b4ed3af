// Package graph implements the chain graph: branch and leaf nodes
// connected by at most one outgoing Indication and one outgoing
// Extension edge per branch. An n-ary group is spelled as a chain of
// branches linked by Extension edges, each indicating one element.
// Transaction edges link successive committed roots and carry no
// structural meaning.
package graph

import (
	"github.com/MichaelMMacLeod/kakoi/internal/slab"
)

// NodeID identifies a node in a Graph. The zero NodeID is invalid.
type NodeID struct {
	h slab.Handle
}

// IsZero reports whether id is the invalid zero id.
func (id NodeID) IsZero() bool {
	return id.h == slab.Handle{}
}

type nodeKind uint8

const (
	branch nodeKind = iota
	leaf
)

type node struct {
	kind nodeKind
	text string
	// Zero ids mean the edge is absent.
	indication  NodeID
	extension   NodeID
	transaction NodeID
}

// Graph holds nodes and edges. Not safe for concurrent use.
type Graph struct {
	nodes *slab.Slab[node]
	root  NodeID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: slab.New[node]()}
}

func (g *Graph) node(id NodeID) *node {
	n := g.nodes.Ptr(id.h)
	if n == nil {
		panic("graph: dangling node id")
	}
	return n
}

// Insert creates a branch node with no edges.
func (g *Graph) Insert() NodeID {
	return NodeID{g.nodes.Insert(node{kind: branch})}
}

// InsertLeaf creates a leaf node carrying text. Leaves have no
// outgoing edges.
func (g *Graph) InsertLeaf(text string) NodeID {
	return NodeID{g.nodes.Insert(node{kind: leaf, text: text})}
}

// IsLeaf reports whether id is a leaf node.
func (g *Graph) IsLeaf(id NodeID) bool {
	return g.node(id).kind == leaf
}

// LeafText returns the text of a leaf node. ok is false for branches.
func (g *Graph) LeafText(id NodeID) (string, bool) {
	n := g.node(id)
	if n.kind != leaf {
		return "", false
	}
	return n.text, true
}

// Extend adds the Extension edge from -> to. A branch has at most one
// extension and leaves have none; violating either is a caller bug and
// panics.
func (g *Graph) Extend(from, to NodeID) {
	g.node(to) // existence check
	n := g.node(from)
	if n.kind == leaf {
		panic("graph: cannot extend a leaf")
	}
	if !n.extension.IsZero() {
		panic("graph: node already extended")
	}
	n.extension = to
}

// Indicate adds the Indication edge from -> to. A branch has at most
// one indication and leaves have none; violating either is a caller
// bug and panics.
func (g *Graph) Indicate(from, to NodeID) {
	g.node(to)
	n := g.node(from)
	if n.kind == leaf {
		panic("graph: a leaf cannot indicate")
	}
	if !n.indication.IsZero() {
		panic("graph: node already indicates")
	}
	n.indication = to
}

// ReductionOf follows id's outgoing Extension edge. ok is false when
// there is none.
func (g *Graph) ReductionOf(id NodeID) (NodeID, bool) {
	n := g.node(id)
	return n.extension, !n.extension.IsZero()
}

// IndicationOf follows id's outgoing Indication edge. ok is false when
// there is none.
func (g *Graph) IndicationOf(id NodeID) (NodeID, bool) {
	n := g.node(id)
	return n.indication, !n.indication.IsZero()
}

// Commit records a Transaction edge from the new root to the root it
// supersedes and makes it the graph's current root. prev may be zero
// for the first commit.
func (g *Graph) Commit(newRoot, prev NodeID) {
	n := g.node(newRoot)
	if !prev.IsZero() {
		g.node(prev)
		n.transaction = prev
	}
	g.root = newRoot
}

// Root returns the most recently committed root. ok is false before
// the first commit.
func (g *Graph) Root() (NodeID, bool) {
	return g.root, !g.root.IsZero()
}

// TransactionOf follows id's Transaction edge to the root it
// superseded. ok is false when id was a first commit or never
// committed.
func (g *Graph) TransactionOf(id NodeID) (NodeID, bool) {
	n := g.node(id)
	return n.transaction, !n.transaction.IsZero()
}

// ReduceUntilIndication walks Extension edges from id (inclusive)
// until it reaches a node with an Indication edge, returning that node
// and the indicated node. ok is false when the chain ends first.
func (g *Graph) ReduceUntilIndication(id NodeID) (at, indicated NodeID, ok bool) {
	cur := id
	for {
		n := g.node(cur)
		if !n.indication.IsZero() {
			return cur, n.indication, true
		}
		if n.extension.IsZero() {
			return NodeID{}, NodeID{}, false
		}
		cur = n.extension
	}
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return g.nodes.Len() }

// NewGroupWithLeaf creates a one-element group whose element is a new
// leaf carrying text. It returns the group's chain head and the leaf.
func (g *Graph) NewGroupWithLeaf(text string) (head, lf NodeID) {
	lf = g.InsertLeaf(text)
	head = g.Insert()
	g.Indicate(head, lf)
	return head, lf
}

// ExtendWithLeaf prepends a new element to the group headed by chain:
// a fresh branch indicating a new leaf and extending to chain. It
// returns the new chain head and the leaf.
func (g *Graph) ExtendWithLeaf(chain NodeID, text string) (head, lf NodeID) {
	head, lf = g.NewGroupWithLeaf(text)
	g.Extend(head, chain)
	return head, lf
}
