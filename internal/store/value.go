package store

import (
	"github.com/MichaelMMacLeod/kakoi/internal/slab"
)

// Kind discriminates the structure stored behind a Key.
type Kind uint8

const (
	KindString Kind = iota
	KindImage
	KindSet
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindImage:
		return "image"
	case KindSet:
		return "set"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// Key is an untyped reference to a value in a Store. Keys are cheap to
// copy and safe to use as map keys. The zero Key never resolves.
type Key struct {
	kind   Kind
	handle slab.Handle
}

// Kind returns the structure kind the key refers to.
func (k Key) Kind() Kind { return k.kind }

// Typed keys. Each wraps an untyped Key whose kind is statically known,
// so accessors need no runtime tag checks on the happy path.

// StringKey references a string value.
type StringKey struct{ k Key }

// ImageKey references an image value.
type ImageKey struct{ k Key }

// SetKey references a set value.
type SetKey struct{ k Key }

// ListKey references a list value.
type ListKey struct{ k Key }

// MapKey references a map value.
type MapKey struct{ k Key }

// Key returns the untyped form.
func (k StringKey) Key() Key { return k.k }
func (k ImageKey) Key() Key  { return k.k }
func (k SetKey) Key() Key    { return k.k }
func (k ListKey) Key() Key   { return k.k }
func (k MapKey) Key() Key    { return k.k }

// AsString converts an untyped key back to its typed form. Calling it
// on a key of any other kind is a caller bug and panics.
func (k Key) AsString() StringKey {
	k.mustBe(KindString)
	return StringKey{k}
}

// AsImage converts an untyped key back to its typed form.
func (k Key) AsImage() ImageKey {
	k.mustBe(KindImage)
	return ImageKey{k}
}

// AsSet converts an untyped key back to its typed form.
func (k Key) AsSet() SetKey {
	k.mustBe(KindSet)
	return SetKey{k}
}

// AsList converts an untyped key back to its typed form.
func (k Key) AsList() ListKey {
	k.mustBe(KindList)
	return ListKey{k}
}

// AsMap converts an untyped key back to its typed form.
func (k Key) AsMap() MapKey {
	k.mustBe(KindMap)
	return MapKey{k}
}

func (k Key) mustBe(kind Kind) {
	if k.kind != kind {
		panic("store: key kind mismatch: have " + k.kind.String() + ", want " + kind.String())
	}
}

// Image is an RGBA pixel buffer. Pix holds 4 bytes per pixel in
// row-major order; len(Pix) must be 4*Width*Height.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// RouteKind discriminates how a value is referenced by its owner.
type RouteKind uint8

const (
	// RouteSet marks membership in a set.
	RouteSet RouteKind = iota
	// RouteList marks presence at a list index.
	RouteList
	// RouteMapKey marks use as a map key.
	RouteMapKey
	// RouteMapValue marks use as the value bound to a map key.
	RouteMapValue
)

// Route records the position a value occupies inside an owning
// structure. Routes are comparable and used as set members.
type Route struct {
	kind RouteKind
	// index is the list position; only meaningful for RouteList.
	index int
	// key is the map key the value is bound under; only meaningful
	// for RouteMapValue.
	key Key
}

// SetRoute is the route of a set member.
func SetRoute() Route { return Route{kind: RouteSet} }

// ListRoute is the route of the list element at index i.
func ListRoute(i int) Route { return Route{kind: RouteList, index: i} }

// MapKeyRoute is the route of a value used as a map key.
func MapKeyRoute() Route { return Route{kind: RouteMapKey} }

// MapValueRoute is the route of a value bound under the map key k.
func MapValueRoute(k Key) Route { return Route{kind: RouteMapValue, key: k} }

// Kind returns the route kind.
func (r Route) Kind() RouteKind { return r.kind }

// Index returns the list position for a RouteList route.
func (r Route) Index() int { return r.index }

// MapKey returns the owning map key for a RouteMapValue route.
func (r Route) MapKey() Key { return r.key }

// Inclusion is one back-reference: the owner value that references
// this value, and the route it is referenced through. The set of
// inclusions on a value is the exact inverse of the forward references
// held in structures.
type Inclusion struct {
	Owner Key
	Route Route
}

// value is one arena slot: a structure plus its back-references.
type value struct {
	structure  structure
	inclusions map[Inclusion]struct{}
}

// structure is the payload union. Exactly one field is live, matching
// the key's Kind.
type structure struct {
	str   string
	img   Image
	set   map[Key]struct{}
	list  []Key
	table map[Key]Key
}
