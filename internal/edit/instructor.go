package edit

import (
	"github.com/MichaelMMacLeod/kakoi/internal/path"
)

// Instructor produces the instruction stream for one chain level. It
// advances two cursors in lockstep: cs is the position of the next
// unconsumed source element (remove edits classify against it) and cc
// is the position about to be built (insert edits classify against
// it). Both start at the level's start position.
//
// A nil source puts the instructor in fresh mode: there is nothing to
// copy forward, so positions skipped over by deep edits become empty
// nested groups, and the build always closes with a positional Extend.
type Instructor[N, V any] struct {
	actions []Action[V]
	head    int

	src     Source[N]
	pending *Pair[N]
	srcEOF  bool
	fresh   bool

	cs   path.Path
	cc   path.Path
	prev *path.Path
	done bool
}

// NewInstructor returns an instructor for one level. actions must be
// in Sort order and may extend beyond this level; positions the level
// cannot reach are skipped. src may be nil.
func NewInstructor[N, V any](start path.Path, actions []Action[V], src Source[N]) *Instructor[N, V] {
	return &Instructor[N, V]{
		actions: actions,
		src:     src,
		fresh:   src == nil,
		cs:      start.Clone(),
		cc:      start.Clone(),
	}
}

func (in *Instructor[N, V]) peekPair() (Pair[N], bool) {
	if in.pending == nil && !in.srcEOF && !in.fresh {
		if p, ok := in.src.Next(); ok {
			in.pending = &p
		} else {
			in.srcEOF = true
		}
	}
	if in.pending == nil {
		return Pair[N]{}, false
	}
	return *in.pending, true
}

func (in *Instructor[N, V]) takePair() (Pair[N], bool) {
	p, ok := in.peekPair()
	if ok {
		in.pending = nil
	}
	return p, ok
}

// indicate emits an Indicate at the current copy position and records
// that position as the next instruction's predecessor.
func (in *Instructor[N, V]) indicate(t Target[N, V]) Instruction[N, V] {
	ins := Indicate[N, V]{ReductionOf: in.prev, Target: t}
	pos := in.cc.Clone()
	in.prev = &pos
	return ins
}

func (in *Instructor[N, V]) reduceBoth() {
	in.cs = in.cs.Reduce()
	in.cc = in.cc.Reduce()
}

// nested builds the Copy target for an indirect edit: the rebuild
// starts at the value position of the node being built, with the
// current source element's indicated group as its source. The source
// element is consumed here; the edit itself is left for the nested
// level.
func (in *Instructor[N, V]) nested() Target[N, V] {
	t := Target[N, V]{Kind: TargetCopy, Start: in.cc.Indicate()}
	if pair, ok := in.takePair(); ok {
		n := pair.Indicated
		t.Node = &n
	}
	return t
}

// Next returns the next instruction. ok is false when the level is
// complete.
func (in *Instructor[N, V]) Next() (Instruction[N, V], bool) {
	for {
		if in.done {
			return nil, false
		}
		// Drop edits the build position can no longer reach.
		for in.head < len(in.actions) && !in.cc.Indicates(in.actions[in.head].At) {
			in.head++
		}
		if in.head == len(in.actions) {
			return in.finish()
		}
		a := in.actions[in.head]

		if a.Op == OpInsert {
			rel, _ := in.cc.Classify(a.At)
			switch rel {
			case path.Direct:
				in.head++
				ins := in.indicate(Original[N, V](a.Value))
				in.reduceBoth()
				return ins, true
			case path.Indirect:
				ins := in.indicate(in.nested())
				in.reduceBoth()
				return ins, true
			default: // the edit is deeper in the chain
				ins, ok := in.copyForward()
				if !ok {
					return nil, false
				}
				return ins, true
			}
		}

		rel, ok := in.cs.Classify(a.At)
		if !ok {
			// The source position was already passed; the edit cannot
			// take effect.
			in.head++
			continue
		}
		switch rel {
		case path.Direct:
			// Drop the element: consume it and emit nothing.
			in.head++
			in.takePair()
			in.cs = in.cs.Reduce()
		case path.Indirect:
			ins := in.indicate(in.nested())
			in.reduceBoth()
			return ins, true
		default:
			if in.fresh {
				in.head++
				continue
			}
			ins, ok := in.copyForward()
			if !ok {
				return nil, false
			}
			return ins, true
		}
	}
}

// copyForward carries the current element into the new chain
// untouched. In fresh mode there is nothing to carry, so the position
// is filled with an empty nested group; with an exhausted source the
// remaining edits are unreachable and the level ends.
func (in *Instructor[N, V]) copyForward() (Instruction[N, V], bool) {
	if in.fresh {
		ins := in.indicate(Target[N, V]{Kind: TargetCopy, Start: in.cc.Indicate()})
		in.reduceBoth()
		return ins, true
	}
	pair, ok := in.takePair()
	if !ok {
		in.done = true
		return nil, false
	}
	ins := in.indicate(NodeTarget[N, V](pair.Indicated))
	in.reduceBoth()
	return ins, true
}

// finish closes the level: attach the rest of the source chain when
// any remains, close a fresh build positionally, or end silently.
func (in *Instructor[N, V]) finish() (Instruction[N, V], bool) {
	in.done = true
	if !in.fresh {
		if pair, ok := in.takePair(); ok {
			n := pair.Node
			return Extend[N, V]{ReductionOf: in.prev, To: &n}, true
		}
		return nil, false
	}
	if in.prev == nil {
		return nil, false
	}
	return Extend[N, V]{ReductionOf: in.prev, Extends: in.cc.Clone()}, true
}
