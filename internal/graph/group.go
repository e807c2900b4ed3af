package graph

// GroupIterator enumerates the elements of a group in chain order. It
// is finite, read-only, and restartable by constructing a new iterator
// from the same starting node. Branches without an indication are
// skipped; the walk ends when the chain runs out of extensions.
type GroupIterator struct {
	g   *Graph
	cur NodeID
	// done is set once the chain is exhausted; start may legitimately
	// be the zero id for an empty group.
	done bool
}

// Group returns an iterator over the group headed by start. A zero
// start yields an empty iteration.
func (g *Graph) Group(start NodeID) *GroupIterator {
	return &GroupIterator{g: g, cur: start, done: start.IsZero()}
}

// Next yields the next element: the chain node holding the indication
// and the indicated node. ok is false when the group is exhausted.
func (it *GroupIterator) Next() (at, indicated NodeID, ok bool) {
	if it.done {
		return NodeID{}, NodeID{}, false
	}
	at, indicated, ok = it.g.ReduceUntilIndication(it.cur)
	if !ok {
		it.done = true
		return NodeID{}, NodeID{}, false
	}
	next, hasNext := it.g.ReductionOf(at)
	if hasNext {
		it.cur = next
	} else {
		it.done = true
	}
	return at, indicated, true
}
