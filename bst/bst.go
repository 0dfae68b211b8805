// Package bst implements a plain, unbalanced binary search tree set.
//
// It shares the forest.Set contract with the balanced containers and serves
// as the degenerate baseline in benchmarks: O(log n) expected, O(n) worst
// case on adversarial insertion orders. No internal synchronization; a
// single instance must not be mutated concurrently.
package bst

import (
	"cmp"
	"errors"

	"github.com/treelab/forest"
)

// ErrNilComparator signals a missing comparator at construction.
var ErrNilComparator = errors.New("bst: comparator is required")

type node[K any] struct {
	key   K
	left  *node[K]
	right *node[K]
}

// Set is a binary search tree set storing unique keys in comparator order.
type Set[K any] struct {
	root *node[K]
	size int
	less forest.Less[K]
}

// New creates an empty set ordered by less.
func New[K any](less forest.Less[K]) (*Set[K], error) {
	if less == nil {
		return nil, ErrNilComparator
	}
	return &Set[K]{less: less}, nil
}

// NewOrdered creates an empty set over a naturally ordered key type.
func NewOrdered[K cmp.Ordered]() *Set[K] {
	s, err := New(forest.OrderedLess[K]())
	if err != nil {
		panic(err)
	}
	return s
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

// Clear removes all keys.
func (s *Set[K]) Clear() {
	s.root = nil
	s.size = 0
}

// Contains reports whether an equal key is present.
func (s *Set[K]) Contains(key K) bool {
	n := s.root
	for n != nil {
		switch {
		case s.less(key, n.key):
			n = n.left
		case s.less(n.key, key):
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Insert adds key to the set and reports whether it was newly inserted.
func (s *Set[K]) Insert(key K) bool {
	parent, link := (*node[K])(nil), &s.root
	for *link != nil {
		parent = *link
		switch {
		case s.less(key, parent.key):
			link = &parent.left
		case s.less(parent.key, key):
			link = &parent.right
		default:
			return false
		}
	}
	*link = &node[K]{key: key}
	s.size++
	return true
}

// Erase removes key from the set and reports whether it was present.
//
// A node with two children is replaced by its in-order successor (the
// minimum of the right subtree), which is then unlinked from its leaf-ward
// position.
func (s *Set[K]) Erase(key K) bool {
	link := &s.root
	for *link != nil {
		n := *link
		switch {
		case s.less(key, n.key):
			link = &n.left
		case s.less(n.key, key):
			link = &n.right
		default:
			s.unlink(link)
			s.size--
			return true
		}
	}
	return false
}

func (s *Set[K]) unlink(link **node[K]) {
	n := *link
	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		// two children: splice in the in-order successor
		succLink := &n.right
		for (*succLink).left != nil {
			succLink = &(*succLink).left
		}
		succ := *succLink
		*succLink = succ.right
		succ.left, succ.right = n.left, n.right
		*link = succ
	}
}

// Each walks all keys in ascending comparator order; iteration stops early
// if visit returns false.
func (s *Set[K]) Each(visit func(key K) bool) {
	if s == nil || visit == nil {
		return
	}
	eachNode(s.root, visit)
}

func eachNode[K any](n *node[K], visit func(key K) bool) bool {
	if n == nil {
		return true
	}
	return eachNode(n.left, visit) && visit(n.key) && eachNode(n.right, visit)
}

// Check validates the search-tree order and the size counter. Meant for
// tests.
func (s *Set[K]) Check() error {
	count, err := s.checkNode(s.root, nil, nil)
	if err != nil {
		return err
	}
	if count != s.size {
		return errors.New("bst: size mismatch with traversal count")
	}
	return nil
}

func (s *Set[K]) checkNode(n *node[K], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && !s.less(*lo, n.key) {
		return 0, errors.New("bst: key violates lower bound")
	}
	if hi != nil && !s.less(n.key, *hi) {
		return 0, errors.New("bst: key violates upper bound")
	}
	left, err := s.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	right, err := s.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	return left + right + 1, nil
}
