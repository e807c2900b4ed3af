package slab

import "testing"

func TestInsertGet(t *testing.T) {
	s := New[string]()
	a := s.Insert("a")
	b := s.Insert("b")
	if got, ok := s.Get(a); !ok || got != "a" {
		t.Fatalf("Get(a) = %q, %v", got, ok)
	}
	if got, ok := s.Get(b); !ok || got != "b" {
		t.Fatalf("Get(b) = %q, %v", got, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestZeroHandleNeverResolves(t *testing.T) {
	s := New[int]()
	s.Insert(7)
	if _, ok := s.Get(Handle{}); ok {
		t.Fatal("zero handle resolved")
	}
}

func TestRemoveInvalidatesHandle(t *testing.T) {
	s := New[int]()
	h := s.Insert(1)
	if !s.Remove(h) {
		t.Fatal("Remove returned false for live handle")
	}
	if _, ok := s.Get(h); ok {
		t.Fatal("stale handle still resolves")
	}
	if s.Remove(h) {
		t.Fatal("double Remove succeeded")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	s := New[int]()
	old := s.Insert(1)
	s.Remove(old)
	fresh := s.Insert(2)
	if fresh.index != old.index {
		t.Fatalf("expected slot reuse, got index %d vs %d", fresh.index, old.index)
	}
	if _, ok := s.Get(old); ok {
		t.Fatal("stale handle aliases reused slot")
	}
	if got, ok := s.Get(fresh); !ok || got != 2 {
		t.Fatalf("Get(fresh) = %d, %v", got, ok)
	}
}

func TestFreeListIsLIFO(t *testing.T) {
	s := New[int]()
	var hs []Handle
	for i := 0; i < 4; i++ {
		hs = append(hs, s.Insert(i))
	}
	s.Remove(hs[1])
	s.Remove(hs[3])
	// Most recently freed slot is reused first.
	if h := s.Insert(10); h.index != hs[3].index {
		t.Errorf("reused index %d, want %d", h.index, hs[3].index)
	}
	if h := s.Insert(11); h.index != hs[1].index {
		t.Errorf("reused index %d, want %d", h.index, hs[1].index)
	}
}

func TestPtrMutatesInPlace(t *testing.T) {
	s := New[[]int]()
	h := s.Insert([]int{1})
	p := s.Ptr(h)
	if p == nil {
		t.Fatal("Ptr returned nil for live handle")
	}
	*p = append(*p, 2)
	if got, _ := s.Get(h); len(got) != 2 {
		t.Fatalf("mutation through Ptr lost: %v", got)
	}
	s.Remove(h)
	if s.Ptr(h) != nil {
		t.Fatal("Ptr resolved stale handle")
	}
}
