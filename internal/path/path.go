// Package path implements positional addressing within a chain of
// branch nodes. A Path is a sequence of steps taken from a start node:
// an extension step follows the chain one node deeper, an indication
// step descends into the value a node points at. Paths are compared
// structurally and never mutated in place.
package path

// Step is a single move along a chain.
type Step uint8

const (
	// StepExtend follows a node's outgoing Extension edge.
	StepExtend Step = 0
	// StepIndicate follows a node's outgoing Indication edge.
	StepIndicate Step = 1
)

// Path is an immutable sequence of steps relative to some start node.
// The zero value addresses the start node itself.
type Path []Step

// New returns a path built from the given steps. Steps other than 0
// and 1 are a caller bug.
func New(steps ...Step) Path {
	p := make(Path, len(steps))
	copy(p, steps)
	return p
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Reduce returns a new path addressing the position one extension step
// deeper than p. p is unchanged.
func (p Path) Reduce() Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, StepExtend)
}

// Indicate returns a new path addressing the value indicated at p's
// position. p is unchanged.
func (p Path) Indicate() Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, StepIndicate)
}

// Equal reports whether p and q are the same position.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// isPrefixOf reports whether p is a (not necessarily proper) prefix of q.
func (p Path) isPrefixOf(q Path) bool {
	if len(p) > len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Indicates reports whether the position q sits somewhere inside the
// value structure reachable from position p: p must be a proper prefix
// of q and the remaining steps must descend through at least one
// indication. The relation is a strict partial order; it is not total.
func (p Path) Indicates(q Path) bool {
	if len(p) >= len(q) || !p.isPrefixOf(q) {
		return false
	}
	for _, s := range q[len(p):] {
		if s == StepIndicate {
			return true
		}
	}
	return false
}

// DirectlyIndicates reports whether q is exactly the value indicated
// at p, i.e. q == p + [indicate].
func (p Path) DirectlyIndicates(q Path) bool {
	return len(q) == len(p)+1 && q[len(p)] == StepIndicate && p.isPrefixOf(q)
}

// IndirectlyIndicates reports whether q lies strictly inside the value
// indicated at p: p indicates q and the first step past p is an
// indication step.
func (p Path) IndirectlyIndicates(q Path) bool {
	return p.Indicates(q) && q[len(p)] == StepIndicate
}

// Relation classifies how a position relates to an indicating path.
type Relation uint8

const (
	// Direct means q is exactly the value indicated at p.
	Direct Relation = iota
	// Indirect means q lies inside the value indicated at p.
	Indirect
	// Reduction means q is reached by first extending past p.
	Reduction
)

func (r Relation) String() string {
	switch r {
	case Direct:
		return "direct"
	case Indirect:
		return "indirect"
	case Reduction:
		return "reduction"
	}
	return "unknown"
}

// Classify reports how q relates to p. ok is false when p does not
// indicate q at all, in which case the relation is meaningless.
func (p Path) Classify(q Path) (Relation, bool) {
	if !p.Indicates(q) {
		return 0, false
	}
	if p.DirectlyIndicates(q) {
		return Direct, true
	}
	if p.IndirectlyIndicates(q) {
		return Indirect, true
	}
	return Reduction, true
}

// Compare orders paths in chain-walk order: positions visited earlier
// while walking a chain sort first. Indication steps sort before
// extension steps, and a path sorts before its own proper extensions.
// Returns -1, 0, or 1.
func Compare(p, q Path) int {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		if p[i] != q[i] {
			// An indication step is visited before the extension
			// step at the same depth.
			if p[i] == StepIndicate {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(p) < len(q):
		return -1
	case len(p) > len(q):
		return 1
	}
	return 0
}

func (p Path) String() string {
	buf := make([]byte, 0, 2+2*len(p))
	buf = append(buf, '[')
	for i, s := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, byte('0'+s))
	}
	return string(append(buf, ']'))
}
