// Package seed builds the example workspace used by the demo command:
// a small arena of named values and a committed chain describing them.
package seed

import (
	"github.com/MichaelMMacLeod/kakoi/internal/graph"
	"github.com/MichaelMMacLeod/kakoi/internal/store"
)

// DemoRegister is the register the example set is bound to.
const DemoRegister = "demo"

// Workspace is a seeded store and graph pair.
type Workspace struct {
	Store *store.Store
	Graph *graph.Graph
	// Root is the committed head of the example chain.
	Root graph.NodeID
}

// Demo returns a workspace holding the example content: a set of
// facts bound to DemoRegister, a name map, and a committed group
// chain with one nested group.
func Demo() *Workspace {
	s := store.New()

	facts := s.BindRegisterToEmptySet(DemoRegister)
	name := s.InsertString("kakoi")
	kind := s.InsertString("structure editor")
	s.SetInsert(facts, name.Key())
	s.SetInsert(facts, kind.Key())

	// Names are bound through a map so the demo shows value routes
	// beyond plain set membership.
	names := s.NewMap()
	s.MapInsert(names, s.InsertString("name").Key(), name.Key())
	s.MapInsert(names, s.InsertString("kind").Key(), kind.Key())
	s.SetInsert(facts, names.Key())

	g := graph.New()
	inner, _ := g.NewGroupWithLeaf("editor")
	inner, _ = g.ExtendWithLeaf(inner, "structure")
	tail, _ := g.NewGroupWithLeaf("a")
	head := g.Insert()
	g.Indicate(head, inner)
	g.Extend(head, tail)
	head, _ = g.ExtendWithLeaf(head, "is")
	head, _ = g.ExtendWithLeaf(head, "kakoi")
	g.Commit(head, graph.NodeID{})

	return &Workspace{Store: s, Graph: g, Root: head}
}
