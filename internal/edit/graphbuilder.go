package edit

import (
	"github.com/MichaelMMacLeod/kakoi/internal/graph"
)

// GraphBuilder materializes instruction streams into a chain graph.
// Inserted payloads become leaf nodes.
type GraphBuilder struct {
	g *graph.Graph
}

// NewGraphBuilder returns a builder over g.
func NewGraphBuilder(g *graph.Graph) *GraphBuilder {
	return &GraphBuilder{g: g}
}

func (b *GraphBuilder) Insert() graph.NodeID { return b.g.Insert() }

func (b *GraphBuilder) Extend(from, to graph.NodeID) { b.g.Extend(from, to) }

func (b *GraphBuilder) Indicate(from, to graph.NodeID) { b.g.Indicate(from, to) }

func (b *GraphBuilder) Leaf(text string) graph.NodeID { return b.g.InsertLeaf(text) }

func (b *GraphBuilder) Group(n graph.NodeID) Source[graph.NodeID] {
	return &groupSource{it: b.g.Group(n)}
}

type groupSource struct {
	it *graph.GroupIterator
}

func (s *groupSource) Next() (Pair[graph.NodeID], bool) {
	at, indicated, ok := s.it.Next()
	if !ok {
		return Pair[graph.NodeID]{}, false
	}
	return Pair[graph.NodeID]{Node: at, Indicated: indicated}, true
}

// ApplyToGraph edits the group headed by source inside g, returning
// the new chain head. A zero source edits a fresh chain. ok is false
// when nothing was built.
func ApplyToGraph(g *graph.Graph, actions []Action[string], source graph.NodeID) (graph.NodeID, bool) {
	b := NewGraphBuilder(g)
	var src *graph.NodeID
	if !source.IsZero() {
		src = &source
	}
	return Apply[graph.NodeID, string](b, actions, src)
}
