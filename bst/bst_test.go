package bst

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/treelab/forest"
)

var _ forest.Set[int] = (*Set[int])(nil)

func TestNewRejectsNilComparator(t *testing.T) {
	if _, err := New[int](nil); err != ErrNilComparator {
		t.Fatalf("expected ErrNilComparator, got %v", err)
	}
}

func TestInsertContainsErase(t *testing.T) {
	s := NewOrdered[int]()
	for _, k := range []int{5, 2, 8, 1, 3, 9} {
		if !s.Insert(k) {
			t.Fatalf("Insert(%d) must report true on fresh key", k)
		}
	}
	if s.Insert(5) {
		t.Fatalf("duplicate insert must report false")
	}
	if !s.Contains(3) || s.Contains(4) {
		t.Fatalf("Contains misreports membership")
	}
	if !s.Erase(5) || s.Erase(5) {
		t.Fatalf("Erase must report (true, false) on repeated erase")
	}
	if s.Len() != 5 {
		t.Fatalf("unexpected size %d", s.Len())
	}
	if err := s.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestEraseTwoChildNode(t *testing.T) {
	s := NewOrdered[int]()
	for _, k := range []int{10, 5, 15, 3, 7, 12, 20, 6, 8} {
		s.Insert(k)
	}
	// 5 has two children; its successor 6 must take its place
	if !s.Erase(5) {
		t.Fatalf("expected 5 to be present")
	}
	if err := s.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	want := []int{3, 6, 7, 8, 10, 12, 15, 20}
	var got []int
	s.Each(func(key int) bool { got = append(got, key); return true })
	if len(got) != len(want) {
		t.Fatalf("traversal mismatch: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("traversal mismatch: got=%v want=%v", got, want)
		}
	}
}

func TestRandomizedAgainstModel(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	s := NewOrdered[int]()
	model := make(map[int]bool)
	for i := 0; i < 3000; i++ {
		k := r.Intn(400)
		if r.Intn(3) == 0 {
			if s.Erase(k) != model[k] {
				t.Fatalf("Erase(%d) disagrees with model", k)
			}
			delete(model, k)
		} else {
			if s.Insert(k) == model[k] {
				t.Fatalf("Insert(%d) disagrees with model", k)
			}
			model[k] = true
		}
	}
	if s.Len() != len(model) {
		t.Fatalf("size mismatch: %d != %d", s.Len(), len(model))
	}
	if err := s.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	var got []int
	s.Each(func(key int) bool { got = append(got, key); return true })
	if !sort.IntsAreSorted(got) {
		t.Fatalf("traversal not sorted")
	}
}
