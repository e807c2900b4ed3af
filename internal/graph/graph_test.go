package graph

import "testing"

func TestIndicateOneLeaf(t *testing.T) {
	g := New()
	head, lf := g.NewGroupWithLeaf("a")
	got, ok := g.IndicationOf(head)
	if !ok || got != lf {
		t.Fatalf("IndicationOf = %v, %v; want leaf", got, ok)
	}
	if text, ok := g.LeafText(lf); !ok || text != "a" {
		t.Fatalf("LeafText = %q, %v", text, ok)
	}
	if _, ok := g.ReductionOf(head); ok {
		t.Error("one-element group has an extension")
	}
}

func TestExtendWithLeafPrepends(t *testing.T) {
	g := New()
	tail, _ := g.NewGroupWithLeaf("z")
	head, _ := g.ExtendWithLeaf(tail, "a")
	next, ok := g.ReductionOf(head)
	if !ok || next != tail {
		t.Fatalf("ReductionOf(head) = %v, %v; want tail", next, ok)
	}
}

func TestEdgeContractsPanic(t *testing.T) {
	cases := []struct {
		name string
		do   func(g *Graph)
	}{
		{"extend a leaf", func(g *Graph) {
			lf := g.InsertLeaf("a")
			g.Extend(lf, g.Insert())
		}},
		{"indicate from a leaf", func(g *Graph) {
			lf := g.InsertLeaf("a")
			g.Indicate(lf, g.Insert())
		}},
		{"double extension", func(g *Graph) {
			n := g.Insert()
			g.Extend(n, g.Insert())
			g.Extend(n, g.Insert())
		}},
		{"double indication", func(g *Graph) {
			n := g.Insert()
			g.Indicate(n, g.Insert())
			g.Indicate(n, g.Insert())
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("no panic")
				}
			}()
			tc.do(New())
		})
	}
}

// chainOf builds a group of the given leaf texts in order and returns
// the chain head plus each element's chain node and leaf.
func chainOf(g *Graph, texts ...string) (head NodeID, ats, leaves []NodeID) {
	ats = make([]NodeID, len(texts))
	leaves = make([]NodeID, len(texts))
	for i := len(texts) - 1; i >= 0; i-- {
		if head.IsZero() {
			ats[i], leaves[i] = g.NewGroupWithLeaf(texts[i])
		} else {
			ats[i], leaves[i] = g.ExtendWithLeaf(head, texts[i])
		}
		head = ats[i]
	}
	return head, ats, leaves
}

func TestGroupIteratorOfThree(t *testing.T) {
	g := New()
	head, ats, leaves := chainOf(g, "a", "b", "c")
	it := g.Group(head)
	for i, want := range []string{"a", "b", "c"} {
		at, indicated, ok := it.Next()
		if !ok {
			t.Fatalf("iterator exhausted at element %d", i)
		}
		if at != ats[i] || indicated != leaves[i] {
			t.Errorf("element %d = (%v, %v), want (%v, %v)", i, at, indicated, ats[i], leaves[i])
		}
		if text, _ := g.LeafText(indicated); text != want {
			t.Errorf("element %d text = %q, want %q", i, text, want)
		}
	}
	if _, _, ok := it.Next(); ok {
		t.Error("iterator yielded past the end")
	}
	// Restartable: a fresh iterator walks the same elements.
	it2 := g.Group(head)
	if _, indicated, ok := it2.Next(); !ok || indicated != leaves[0] {
		t.Error("restarted iterator did not begin at the first element")
	}
}

func TestGroupIteratorSkipsBareBranches(t *testing.T) {
	g := New()
	tail, _, leaves := chainOf(g, "a")
	// A branch with no indication between head and the element.
	bare := g.Insert()
	g.Extend(bare, tail)
	it := g.Group(bare)
	_, indicated, ok := it.Next()
	if !ok || indicated != leaves[0] {
		t.Fatalf("iterator did not skip bare branch: %v, %v", indicated, ok)
	}
	if _, _, ok := it.Next(); ok {
		t.Error("iterator yielded past the end")
	}
}

func TestGroupIteratorEmpty(t *testing.T) {
	g := New()
	if _, _, ok := g.Group(NodeID{}).Next(); ok {
		t.Error("zero start yielded an element")
	}
	// A chain of bare branches has no elements.
	a := g.Insert()
	b := g.Insert()
	g.Extend(a, b)
	if _, _, ok := g.Group(a).Next(); ok {
		t.Error("bare chain yielded an element")
	}
}

func TestReduceUntilIndication(t *testing.T) {
	g := New()
	head, ats, leaves := chainOf(g, "a", "b")
	at, indicated, ok := g.ReduceUntilIndication(head)
	if !ok || at != ats[0] || indicated != leaves[0] {
		t.Fatalf("got (%v, %v, %v)", at, indicated, ok)
	}
	// Starting past the first indication finds the second.
	next, _ := g.ReductionOf(ats[0])
	_, indicated, ok = g.ReduceUntilIndication(next)
	if !ok || indicated != leaves[1] {
		t.Fatalf("second element = %v, %v", indicated, ok)
	}
}

func TestCommitChain(t *testing.T) {
	g := New()
	r1, _ := g.NewGroupWithLeaf("a")
	g.Commit(r1, NodeID{})
	r2, _ := g.ExtendWithLeaf(r1, "b")
	g.Commit(r2, r1)

	root, ok := g.Root()
	if !ok || root != r2 {
		t.Fatalf("Root = %v, %v; want r2", root, ok)
	}
	prev, ok := g.TransactionOf(r2)
	if !ok || prev != r1 {
		t.Fatalf("TransactionOf(r2) = %v, %v; want r1", prev, ok)
	}
	if _, ok := g.TransactionOf(r1); ok {
		t.Error("first commit has a transaction edge")
	}
}
