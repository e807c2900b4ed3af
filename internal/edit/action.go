// Package edit implements copy-on-write batch editing of chains. An
// Instructor walks a source chain and a sorted batch of edits in one
// pass, emitting the minimal instruction sequence that builds the
// edited chain while sharing every untouched node with the source. The
// Recursive driver replays instruction streams against a Builder,
// descending into nested groups breadth-first.
package edit

import (
	"sort"

	"github.com/MichaelMMacLeod/kakoi/internal/path"
)

// Op is the kind of an edit.
type Op uint8

const (
	// OpInsert places a new value at a position.
	OpInsert Op = iota
	// OpRemove deletes the value at a position.
	OpRemove
)

// Action is one edit in a batch. Insert positions are relative to the
// chain being built; Remove positions are relative to the source
// chain.
type Action[V any] struct {
	Op Op
	At path.Path
	// Value is the inserted payload; unused for OpRemove.
	Value V
}

// Insert builds an insert action.
func Insert[V any](at path.Path, v V) Action[V] {
	return Action[V]{Op: OpInsert, At: at, Value: v}
}

// Remove builds a remove action.
func Remove[V any](at path.Path) Action[V] {
	return Action[V]{Op: OpRemove, At: at}
}

// Sort orders a batch in chain-walk order, the order the Instructor
// consumes it in. Removes sort before inserts at the same position.
// The sort is stable.
func Sort[V any](actions []Action[V]) {
	sort.SliceStable(actions, func(i, j int) bool {
		if c := path.Compare(actions[i].At, actions[j].At); c != 0 {
			return c < 0
		}
		return actions[i].Op == OpRemove && actions[j].Op == OpInsert
	})
}
