package store

// Mutators. Each one updates the owning structure and the affected
// values' inclusion sets in a single logical step, preserving the
// invariant that inclusions are the exact inverse of forward
// references.

// SetInsert adds elem to the set. Inserting a present element is a
// no-op.
func (s *Store) SetInsert(k SetKey, elem Key) {
	set := s.val(k.k).structure.set
	if _, ok := set[elem]; ok {
		return
	}
	set[elem] = struct{}{}
	s.addInclusion(elem, k.k, SetRoute())
}

// SetRemove removes elem from the set and reports whether it was
// present.
func (s *Store) SetRemove(k SetKey, elem Key) bool {
	set := s.val(k.k).structure.set
	if _, ok := set[elem]; !ok {
		return false
	}
	delete(set, elem)
	s.removeInclusion(elem, k.k, SetRoute())
	return true
}

// SetUnion adds every element of src to dst. src is unchanged.
func (s *Store) SetUnion(dst, src SetKey) {
	for _, elem := range s.SetElems(src) {
		s.SetInsert(dst, elem)
	}
}

// SetDifference removes every element of src from dst. src is
// unchanged. It is the exact inverse of SetUnion applied with the same
// arguments.
func (s *Store) SetDifference(dst, src SetKey) {
	for _, elem := range s.SetElems(src) {
		s.SetRemove(dst, elem)
	}
}

// ListPush appends elem to the list.
func (s *Store) ListPush(k ListKey, elem Key) {
	v := s.val(k.k)
	i := len(v.structure.list)
	v.structure.list = append(v.structure.list, elem)
	s.addInclusion(elem, k.k, ListRoute(i))
}

// ListPop removes and returns the last element. ok is false when the
// list is empty.
func (s *Store) ListPop(k ListKey) (Key, bool) {
	v := s.val(k.k)
	n := len(v.structure.list)
	if n == 0 {
		return Key{}, false
	}
	elem := v.structure.list[n-1]
	v.structure.list = v.structure.list[:n-1]
	s.removeInclusion(elem, k.k, ListRoute(n-1))
	return elem, true
}

// MapInsert binds val to key in the map, replacing any previous
// binding (last writer wins). The replaced value, if any, loses its
// inclusion in the map.
func (s *Store) MapInsert(k MapKey, key, val Key) {
	table := s.val(k.k).structure.table
	if old, ok := table[key]; ok {
		if old == val {
			return
		}
		s.removeInclusion(old, k.k, MapValueRoute(key))
	} else {
		s.addInclusion(key, k.k, MapKeyRoute())
	}
	table[key] = val
	s.addInclusion(val, k.k, MapValueRoute(key))
}

// MapRemove unbinds key from the map, returning the value it was bound
// to. ok is false when key was unbound.
func (s *Store) MapRemove(k MapKey, key Key) (Key, bool) {
	table := s.val(k.k).structure.table
	val, ok := table[key]
	if !ok {
		return Key{}, false
	}
	delete(table, key)
	s.removeInclusion(key, k.k, MapKeyRoute())
	s.removeInclusion(val, k.k, MapValueRoute(key))
	return val, true
}
