// Package slab provides a generational slot map: stable handles into a
// growable arena with free-slot reuse. A handle carries the generation
// of the slot it was minted for, so handles to removed values miss
// instead of silently aliasing whatever was inserted into the reused
// slot afterwards.
package slab

// Handle identifies a slot in a Slab. The zero Handle is never valid.
type Handle struct {
	index      uint32
	generation uint32
}

type slot[T any] struct {
	value      T
	generation uint32
	occupied   bool
	// nextFree links vacant slots; only meaningful when !occupied.
	nextFree int32
}

// Slab is a generational slot map. The zero value is ready to use.
type Slab[T any] struct {
	slots []slot[T]
	// freeHead indexes the first vacant slot, -1 when none.
	freeHead int32
	length   int
}

// New returns an empty slab.
func New[T any]() *Slab[T] {
	return &Slab[T]{freeHead: -1}
}

// Insert stores v and returns its handle. Vacant slots are reused with
// a bumped generation.
func (s *Slab[T]) Insert(v T) Handle {
	if s.freeHead >= 0 {
		i := s.freeHead
		sl := &s.slots[i]
		s.freeHead = sl.nextFree
		sl.value = v
		sl.occupied = true
		s.length++
		return Handle{index: uint32(i), generation: sl.generation}
	}
	// Generations start at 1 so the zero Handle never resolves.
	s.slots = append(s.slots, slot[T]{value: v, generation: 1, occupied: true})
	s.length++
	return Handle{index: uint32(len(s.slots) - 1), generation: 1}
}

// Get returns the value for h. ok is false when h is stale or was
// never issued by this slab.
func (s *Slab[T]) Get(h Handle) (T, bool) {
	if int(h.index) >= len(s.slots) {
		var zero T
		return zero, false
	}
	sl := &s.slots[h.index]
	if !sl.occupied || sl.generation != h.generation {
		var zero T
		return zero, false
	}
	return sl.value, true
}

// Ptr returns a pointer to the value for h, or nil when h is stale.
// The pointer is invalidated by the next Insert.
func (s *Slab[T]) Ptr(h Handle) *T {
	if int(h.index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[h.index]
	if !sl.occupied || sl.generation != h.generation {
		return nil
	}
	return &sl.value
}

// Remove frees the slot for h and reports whether it was occupied.
// Subsequent Gets with h miss; the slot is reused by later Inserts.
func (s *Slab[T]) Remove(h Handle) bool {
	if int(h.index) >= len(s.slots) {
		return false
	}
	sl := &s.slots[h.index]
	if !sl.occupied || sl.generation != h.generation {
		return false
	}
	var zero T
	sl.value = zero
	sl.occupied = false
	sl.generation++
	sl.nextFree = s.freeHead
	s.freeHead = int32(h.index)
	s.length--
	return true
}

// Len returns the number of occupied slots.
func (s *Slab[T]) Len() int { return s.length }
