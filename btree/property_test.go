package btree

import (
	"math/rand"
	"sort"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./btree -run TestRandomizedOpsProperty -count=1
//   - Fuzz test for this file:
//     go test ./btree -run '^$' -fuzz FuzzRandomizedOps -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test ./btree -run 'FuzzRandomizedOps/<id>'

// assertMatchesModel compares tree content against a sorted model slice and
// audits the structural invariants.
func assertMatchesModel(t *testing.T, s *Set[int], model []int) {
	t.Helper()
	if err := s.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	got := collectKeys(s)
	if len(got) != len(model) {
		t.Fatalf("model length mismatch: got=%d want=%d", len(got), len(model))
	}
	for i := range model {
		if got[i] != model[i] {
			t.Fatalf("model mismatch at %d: got=%d want=%d", i, got[i], model[i])
		}
	}
	if s.Len() != len(model) {
		t.Fatalf("Len()=%d does not match model size %d", s.Len(), len(model))
	}
}

func modelInsert(model []int, key int) ([]int, bool) {
	i := sort.SearchInts(model, key)
	if i < len(model) && model[i] == key {
		return model, false
	}
	model = append(model, 0)
	copy(model[i+1:], model[i:])
	model[i] = key
	return model, true
}

func modelErase(model []int, key int) ([]int, bool) {
	i := sort.SearchInts(model, key)
	if i == len(model) || model[i] != key {
		return model, false
	}
	return append(model[:i], model[i+1:]...), true
}

func runRandomOpSequence(t *testing.T, order int, seed int64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	s, err := NewOrdered[int](order)
	if err != nil {
		t.Fatalf("NewOrdered failed: %v", err)
	}
	model := make([]int, 0, 128)

	for i := 0; i < steps; i++ {
		key := r.Intn(steps / 2)
		switch r.Intn(4) {
		case 0, 1:
			wantModel, want := modelInsert(model, key)
			if got := s.Insert(key); got != want {
				t.Fatalf("step %d: Insert(%d)=%t, model says %t", i, key, got, want)
			}
			model = wantModel
		case 2:
			wantModel, want := modelErase(model, key)
			if got := s.Erase(key); got != want {
				t.Fatalf("step %d: Erase(%d)=%t, model says %t", i, key, got, want)
			}
			model = wantModel
		case 3:
			j := sort.SearchInts(model, key)
			want := j < len(model) && model[j] == key
			if got := s.Contains(key); got != want {
				t.Fatalf("step %d: Contains(%d)=%t, model says %t", i, key, got, want)
			}
		}
		if i%16 == 0 {
			assertMatchesModel(t, s, model)
		}
	}
	assertMatchesModel(t, s, model)
}

func TestRandomizedOpsProperty(t *testing.T) {
	for _, order := range []int{3, 4, 5, 8, 32} {
		for seed := int64(0); seed < 4; seed++ {
			runRandomOpSequence(t, order, seed, 800)
		}
	}
}

func FuzzRandomizedOps(f *testing.F) {
	f.Add(int64(1), 200, 4)
	f.Add(int64(42), 500, 7)
	f.Fuzz(func(t *testing.T, seed int64, steps int, order int) {
		if steps < 2 || steps > 2000 {
			t.Skip()
		}
		if order < MinOrder || order > 64 {
			t.Skip()
		}
		runRandomOpSequence(t, order, seed, steps)
	})
}

// Build a tree of 1000 keys inserted in random order, then erase all of them
// in a different random order; the invariants must hold after every single
// erase and the drained tree must end with a nil root.
func TestRandomBuildAndDrain(t *testing.T) {
	const n = 1000
	r := rand.New(rand.NewSource(99))
	s := newIntSet(t, 4)

	insertOrder := r.Perm(n)
	for _, k := range insertOrder {
		if !s.Insert(k) {
			t.Fatalf("Insert(%d) reported duplicate on fresh key", k)
		}
	}
	if s.Len() != n {
		t.Fatalf("expected %d keys, got %d", n, s.Len())
	}
	if err := s.Check(); err != nil {
		t.Fatalf("invariants violated after build: %v", err)
	}

	eraseOrder := r.Perm(n)
	for i, k := range eraseOrder {
		if !s.Erase(k) {
			t.Fatalf("Erase(%d) reported absent key", k)
		}
		if err := s.Check(); err != nil {
			t.Fatalf("invariants violated after erase %d of %d: %v", i+1, n, err)
		}
	}
	if s.root != nil {
		t.Fatalf("drained tree must have a nil root")
	}
	if s.Len() != 0 {
		t.Fatalf("drained tree must be empty, got %d", s.Len())
	}
}

// The order law must hold for every reachable state, not just after full
// builds: sample it while a tree churns under mixed inserts and erases.
func TestTraversalAlwaysSorted(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	s := newIntSet(t, 5)
	for i := 0; i < 2000; i++ {
		k := r.Intn(500)
		if r.Intn(3) == 0 {
			s.Erase(k)
		} else {
			s.Insert(k)
		}
		if i%50 != 0 {
			continue
		}
		prev, first := 0, true
		s.Each(func(key int) bool {
			if !first && key <= prev {
				t.Fatalf("traversal not strictly increasing: %d after %d", key, prev)
			}
			prev, first = key, false
			return true
		})
	}
}
