package btree

import (
	"cmp"

	"github.com/treelab/forest"
)

// Set is a B-tree set storing unique keys in comparator order.
//
// The zero value is not usable; construct sets with New or NewOrdered.
// A Set carries no internal synchronization — see the package documentation
// for the single-mutator precondition.
type Set[K any] struct {
	root    *node[K]
	size    int
	less    forest.Less[K]
	order   int
	maxKeys int
	minKeys int
}

// New creates an empty set with validated configuration.
func New[K any](cfg Config[K]) (*Set[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Set[K]{
		less:    cfg.Less,
		order:   cfg.Order,
		maxKeys: cfg.Order - 1,
		minKeys: cfg.Order/2 - 1,
	}, nil
}

// NewOrdered creates an empty set over a naturally ordered key type.
// A zero order selects DefaultOrder.
func NewOrdered[K cmp.Ordered](order int) (*Set[K], error) {
	return New(Config[K]{Order: order, Less: forest.OrderedLess[K]()})
}

// Order returns the configured maximum fan-out.
func (s *Set[K]) Order() int {
	return s.order
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// IsEmpty reports whether the set has no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes all keys. The node hierarchy is owned exclusively by the
// tree, so dropping the root releases the whole structure.
func (s *Set[K]) Clear() {
	s.root = nil
	s.size = 0
}

// Contains reports whether an equal key is present. The descent stops as
// soon as the key is found mid-path; the tree is never mutated.
func (s *Set[K]) Contains(key K) bool {
	for n := s.root; n != nil; {
		i := s.lowerBound(n, key)
		if i < len(n.keys) && !s.less(key, n.keys[i]) {
			return true
		}
		if n.leaf {
			return false
		}
		n = n.children[i]
	}
	return false
}

// Clone returns a deep copy sharing no nodes with the receiver.
func (s *Set[K]) Clone() *Set[K] {
	if s == nil {
		return nil
	}
	out := *s
	out.root = s.cloneSubtree(s.root)
	return &out
}

// Move transfers the entire node hierarchy to a fresh set and leaves the
// receiver empty. No nodes are copied.
func (s *Set[K]) Move() *Set[K] {
	out := *s
	s.root = nil
	s.size = 0
	return &out
}
