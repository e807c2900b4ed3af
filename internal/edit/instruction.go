package edit

import (
	"github.com/MichaelMMacLeod/kakoi/internal/path"
)

// Pair is one element of a source chain: the chain node holding the
// indication and the node it indicates.
type Pair[N any] struct {
	Node      N
	Indicated N
}

// Source yields a chain's elements in order.
type Source[N any] interface {
	Next() (Pair[N], bool)
}

type sliceSource[N any] struct {
	pairs []Pair[N]
}

// SliceSource returns a Source over a fixed slice of pairs.
func SliceSource[N any](pairs []Pair[N]) Source[N] {
	return &sliceSource[N]{pairs: pairs}
}

func (s *sliceSource[N]) Next() (Pair[N], bool) {
	if len(s.pairs) == 0 {
		return Pair[N]{}, false
	}
	p := s.pairs[0]
	s.pairs = s.pairs[1:]
	return p, true
}

// TargetKind discriminates what an Indicate instruction points at.
type TargetKind uint8

const (
	// TargetOriginal indicates a brand-new value from an insert edit.
	TargetOriginal TargetKind = iota
	// TargetNode indicates an existing node copied forward unchanged.
	TargetNode
	// TargetCopy indicates a nested group that must itself be rebuilt;
	// the driver recurses into it.
	TargetCopy
)

// Target is the object of an Indicate instruction.
type Target[N, V any] struct {
	Kind TargetKind
	// Value is the inserted payload for TargetOriginal.
	Value V
	// Node is the existing node for TargetNode, or the nested source
	// group for TargetCopy (nil when the nested group has no source).
	Node *N
	// Start is the position the nested rebuild starts from; only
	// meaningful for TargetCopy.
	Start path.Path
}

// Original is the target of a fresh insert.
func Original[N, V any](v V) Target[N, V] {
	return Target[N, V]{Kind: TargetOriginal, Value: v}
}

// NodeTarget is the target of a copied-forward element.
func NodeTarget[N, V any](n N) Target[N, V] {
	return Target[N, V]{Kind: TargetNode, Node: &n}
}

// CopyTarget is the target of a nested rebuild starting at start with
// the given source group (nil for none).
func CopyTarget[N, V any](start path.Path, n *N) Target[N, V] {
	return Target[N, V]{Kind: TargetCopy, Node: n, Start: start}
}

// Instruction is one step of a chain build.
type Instruction[N, V any] interface {
	instruction()
}

// Indicate instructs the builder to append a chain node indicating
// Target. ReductionOf is the position of the previously appended node,
// nil for the first.
type Indicate[N, V any] struct {
	ReductionOf *path.Path
	Target      Target[N, V]
}

func (Indicate[N, V]) instruction() {}

// Extend closes a build. With To set, the new chain's tail extends to
// that existing node, sharing the rest of the source chain. Otherwise
// the chain ends at position Extends with a fresh empty branch.
type Extend[N, V any] struct {
	ReductionOf *path.Path
	To          *N
	Extends     path.Path
}

func (Extend[N, V]) instruction() {}
