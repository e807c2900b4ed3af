package store

// Registers are named bindings to arena values. The binding table is
// itself an arena map keyed by interned name strings, so binding a key
// to a register records an inclusion like any other map entry.

// Register returns the key bound to name. ok is false when name is
// unbound.
func (s *Store) Register(name string) (Key, bool) {
	nameKey := s.InsertString(name)
	return s.MapGet(s.registers, nameKey.Key())
}

// BindRegister binds name to k, replacing any previous binding.
func (s *Store) BindRegister(name string, k Key) {
	nameKey := s.InsertString(name)
	s.MapInsert(s.registers, nameKey.Key(), k)
}

// BindRegisterToEmptySet creates a fresh empty set, binds name to it,
// and returns its key.
func (s *Store) BindRegisterToEmptySet(name string) SetKey {
	set := s.NewSet()
	s.BindRegister(name, set.Key())
	return set
}

// RegisterNames returns every bound register name in unspecified
// order.
func (s *Store) RegisterNames() []string {
	entries := s.MapEntries(s.registers)
	out := make([]string, 0, len(entries))
	for key := range entries {
		out = append(out, s.String(key.AsString()))
	}
	return out
}
