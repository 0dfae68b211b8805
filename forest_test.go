package forest

import "testing"

func TestOrderedLess(t *testing.T) {
	less := OrderedLess[int]()
	if !less(1, 2) {
		t.Fatalf("expected 1 < 2")
	}
	if less(2, 1) {
		t.Fatalf("expected !(2 < 1)")
	}
	if less(7, 7) {
		t.Fatalf("strict order must not report 7 < 7")
	}
}

func TestEqFromStrictOrder(t *testing.T) {
	less := OrderedLess[string]()
	if !Eq(less, "abc", "abc") {
		t.Fatalf("equal keys must satisfy Eq")
	}
	if Eq(less, "abc", "abd") {
		t.Fatalf("distinct keys must not satisfy Eq")
	}
}

func TestEqWithCustomComparator(t *testing.T) {
	// case-folding comparator: keys differing only in case are equivalent
	fold := func(s string) string {
		b := []byte(s)
		for i := range b {
			if b[i] >= 'A' && b[i] <= 'Z' {
				b[i] += 'a' - 'A'
			}
		}
		return string(b)
	}
	less := Less[string](func(a, b string) bool { return fold(a) < fold(b) })
	if !Eq(less, "Tree", "tree") {
		t.Fatalf("case-folded keys must be equivalent under Eq")
	}
	if Eq(less, "tree", "trees") {
		t.Fatalf("unequal keys must not be equivalent")
	}
}
