package avl

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/treelab/forest"
)

var _ forest.Set[int] = (*Set[int])(nil)

func TestAscendingInsertStaysBalanced(t *testing.T) {
	s := NewOrdered[int]()
	for k := 1; k <= 1024; k++ {
		if !s.Insert(k) {
			t.Fatalf("Insert(%d) must report true", k)
		}
		if err := s.Check(); err != nil {
			t.Fatalf("invariants violated after inserting %d: %v", k, err)
		}
	}
	// a 1024-key AVL tree has height at most ~1.44*log2(n)
	if h := s.root.height; h > 15 {
		t.Fatalf("tree degenerated: height %d for 1024 keys", h)
	}
}

func TestEraseRebalances(t *testing.T) {
	s := NewOrdered[int]()
	for k := 0; k < 200; k++ {
		s.Insert(k)
	}
	for k := 0; k < 200; k += 2 {
		if !s.Erase(k) {
			t.Fatalf("expected %d to be present", k)
		}
		if err := s.Check(); err != nil {
			t.Fatalf("invariants violated after erasing %d: %v", k, err)
		}
	}
	if s.Len() != 100 {
		t.Fatalf("unexpected size %d", s.Len())
	}
}

func TestRandomizedAgainstModel(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	s := NewOrdered[int]()
	model := make(map[int]bool)
	for i := 0; i < 4000; i++ {
		k := r.Intn(500)
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
		if i%64 == 0 {
			if err := s.Check(); err != nil {
				t.Fatalf("invariants violated at step %d: %v", i, err)
			}
		}
	}
	var got []int
	s.Each(func(key int) bool { got = append(got, key); return true })
	if !sort.IntsAreSorted(got) || len(got) != len(model) {
		t.Fatalf("traversal disagrees with model")
	}
}

func TestEachStopsEarly(t *testing.T) {
	s := NewOrdered[int]()
	for k := 0; k < 64; k++ {
		s.Insert(k)
	}
	visited := 0
	s.Each(func(int) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Fatalf("expected exactly one visit, got %d", visited)
	}
}
