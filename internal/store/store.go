// Package store implements the value arena: an append-only, immutable,
// structurally shared store of strings, images, sets, lists, and maps.
// Strings and images are content-addressed, so inserting equal content
// twice yields the same key. Sets, lists, and maps are identity-
// addressed and mutated in place through the arena, which keeps every
// value's inclusion set (the exact inverse of its forward references)
// in sync with each mutation.
package store

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/MichaelMMacLeod/kakoi/internal/slab"
)

// RootRegister is the register every store starts with, bound to an
// empty set.
const RootRegister = "."

// Store is the value arena. It is not safe for concurrent use; callers
// serialize access.
type Store struct {
	values *slab.Slab[value]

	// Content-addressing tables. A hash collision silently aliases the
	// colliding content to the earlier key; with a 64-bit hash over
	// arena-scale content this is an accepted tradeoff.
	strings map[uint64]StringKey
	images  map[uint64]ImageKey

	// registers binds names to keys; it lives in the arena itself so
	// register bindings participate in inclusion tracking.
	registers MapKey
}

// New returns an empty store with RootRegister bound to an empty set.
func New() *Store {
	s := &Store{
		values:  slab.New[value](),
		strings: make(map[uint64]StringKey),
		images:  make(map[uint64]ImageKey),
	}
	s.registers = s.NewMap()
	s.BindRegisterToEmptySet(RootRegister)
	return s
}

func (s *Store) insert(kind Kind, st structure) Key {
	h := s.values.Insert(value{
		structure:  st,
		inclusions: make(map[Inclusion]struct{}),
	})
	return Key{kind: kind, handle: h}
}

// val resolves a key to its slot. A key that does not resolve was
// either forged or outlived its store; both are caller bugs.
func (s *Store) val(k Key) *value {
	v := s.values.Ptr(k.handle)
	if v == nil {
		panic("store: dangling key")
	}
	return v
}

// InsertString interns v and returns its key. Equal strings share one
// key.
func (s *Store) InsertString(v string) StringKey {
	h := xxhash.Sum64String(v)
	if k, ok := s.strings[h]; ok {
		return k
	}
	k := StringKey{s.insert(KindString, structure{str: v})}
	s.strings[h] = k
	return k
}

// InsertImage interns img and returns its key. Images with equal
// dimensions and pixels share one key. The pixel buffer is copied.
func (s *Store) InsertImage(img Image) ImageKey {
	d := xxhash.New()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[0:], uint64(img.Width))
	binary.LittleEndian.PutUint64(dims[8:], uint64(img.Height))
	_, _ = d.Write(dims[:])
	_, _ = d.Write(img.Pix)
	h := d.Sum64()
	if k, ok := s.images[h]; ok {
		return k
	}
	pix := make([]byte, len(img.Pix))
	copy(pix, img.Pix)
	img.Pix = pix
	k := ImageKey{s.insert(KindImage, structure{img: img})}
	s.images[h] = k
	return k
}

// NewSet creates an empty set. Every call returns a distinct key.
func (s *Store) NewSet() SetKey {
	return SetKey{s.insert(KindSet, structure{set: make(map[Key]struct{})})}
}

// NewList creates an empty list. Every call returns a distinct key.
func (s *Store) NewList() ListKey {
	return ListKey{s.insert(KindList, structure{})}
}

// NewMap creates an empty map. Every call returns a distinct key.
func (s *Store) NewMap() MapKey {
	return MapKey{s.insert(KindMap, structure{table: make(map[Key]Key)})}
}

// String returns the interned string for k.
func (s *Store) String(k StringKey) string {
	return s.val(k.k).structure.str
}

// Image returns the image for k. The returned pixel buffer is shared;
// callers must not modify it.
func (s *Store) Image(k ImageKey) Image {
	return s.val(k.k).structure.img
}

// SetLen returns the number of elements in the set.
func (s *Store) SetLen(k SetKey) int {
	return len(s.val(k.k).structure.set)
}

// SetContains reports membership of elem in the set.
func (s *Store) SetContains(k SetKey, elem Key) bool {
	_, ok := s.val(k.k).structure.set[elem]
	return ok
}

// SetElems returns the set's elements in unspecified order. The slice
// is a copy.
func (s *Store) SetElems(k SetKey) []Key {
	set := s.val(k.k).structure.set
	out := make([]Key, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	return out
}

// ListLen returns the number of elements in the list.
func (s *Store) ListLen(k ListKey) int {
	return len(s.val(k.k).structure.list)
}

// ListElems returns a copy of the list's elements in order.
func (s *Store) ListElems(k ListKey) []Key {
	list := s.val(k.k).structure.list
	out := make([]Key, len(list))
	copy(out, list)
	return out
}

// ListGet returns the element at index i. ok is false when i is out of
// range.
func (s *Store) ListGet(k ListKey, i int) (Key, bool) {
	list := s.val(k.k).structure.list
	if i < 0 || i >= len(list) {
		return Key{}, false
	}
	return list[i], true
}

// MapLen returns the number of entries in the map.
func (s *Store) MapLen(k MapKey) int {
	return len(s.val(k.k).structure.table)
}

// MapGet returns the value bound to key in the map. ok is false when
// key is unbound.
func (s *Store) MapGet(k MapKey, key Key) (Key, bool) {
	v, ok := s.val(k.k).structure.table[key]
	return v, ok
}

// MapEntries returns a copy of the map's entries in unspecified order.
func (s *Store) MapEntries(k MapKey) map[Key]Key {
	table := s.val(k.k).structure.table
	out := make(map[Key]Key, len(table))
	for key, v := range table {
		out[key] = v
	}
	return out
}

// Inclusions returns a copy of every (owner, route) pair referencing
// k.
func (s *Store) Inclusions(k Key) []Inclusion {
	incs := s.val(k).inclusions
	out := make([]Inclusion, 0, len(incs))
	for inc := range incs {
		out = append(out, inc)
	}
	return out
}

// IncludedIn reports whether k is referenced by owner through route.
func (s *Store) IncludedIn(k Key, owner Key, route Route) bool {
	_, ok := s.val(k).inclusions[Inclusion{Owner: owner, Route: route}]
	return ok
}

func (s *Store) addInclusion(k Key, owner Key, route Route) {
	s.val(k).inclusions[Inclusion{Owner: owner, Route: route}] = struct{}{}
}

func (s *Store) removeInclusion(k Key, owner Key, route Route) {
	delete(s.val(k).inclusions, Inclusion{Owner: owner, Route: route})
}

// Len returns the number of values in the arena.
func (s *Store) Len() int { return s.values.Len() }
