// Package avl implements a height-balanced (AVL) binary search tree set.
//
// Every node carries its subtree height; insert and erase restore the
// balance factor to {-1, 0, +1} with single or double rotations on the way
// back up the recursion. The container shares the forest.Set contract and
// serves as a rotation-based baseline next to the multiway B-tree. No
// internal synchronization; a single instance must not be mutated
// concurrently.
package avl

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/treelab/forest"
)

// ErrNilComparator signals a missing comparator at construction.
var ErrNilComparator = errors.New("avl: comparator is required")

type node[K any] struct {
	key    K
	height int
	left   *node[K]
	right  *node[K]
}

// Set is an AVL tree set storing unique keys in comparator order.
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
	root, inserted := s.insertNode(s.root, key)
	s.root = root
	if inserted {
		s.size++
	}
	return inserted
}

// Erase removes key from the set and reports whether it was present.
func (s *Set[K]) Erase(key K) bool {
	root, erased := s.eraseNode(s.root, key)
	s.root = root
	if erased {
		s.size--
	}
	return erased
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

func height[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func update[K any](n *node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor[K any](n *node[K]) int {
	return height(n.left) - height(n.right)
}

func rotateRight[K any](y *node[K]) *node[K] {
	x := y.left
	y.left = x.right
	x.right = y
	update(y)
	update(x)
	return x
}

func rotateLeft[K any](x *node[K]) *node[K] {
	y := x.right
	x.right = y.left
	y.left = x
	update(x)
	update(y)
	return y
}

// rebalance restores the AVL invariant at n after one insert or erase below
// it. The four cases are the classic LL/LR/RR/RL rotations.
func rebalance[K any](n *node[K]) *node[K] {
	update(n)
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

func (s *Set[K]) insertNode(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return &node[K]{key: key, height: 1}, true
	}
	var inserted bool
	switch {
	case s.less(key, n.key):
		n.left, inserted = s.insertNode(n.left, key)
	case s.less(n.key, key):
		n.right, inserted = s.insertNode(n.right, key)
	default:
		return n, false
	}
	if !inserted {
		return n, false
	}
	return rebalance(n), true
}

func (s *Set[K]) eraseNode(n *node[K], key K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}
	var erased bool
	switch {
	case s.less(key, n.key):
		n.left, erased = s.eraseNode(n.left, key)
	case s.less(n.key, key):
		n.right, erased = s.eraseNode(n.right, key)
	default:
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// two children: promote the in-order successor, then erase it
			// from the right subtree
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.key = succ.key
			n.right, _ = s.eraseNode(n.right, succ.key)
			return rebalance(n), true
		}
	}
	if !erased {
		return n, false
	}
	return rebalance(n), true
}

// Check validates the search-tree order, stored heights, balance factors
// and the size counter. Meant for tests.
func (s *Set[K]) Check() error {
	count, _, err := s.checkNode(s.root, nil, nil)
	if err != nil {
		return err
	}
	if count != s.size {
		return fmt.Errorf("avl: size mismatch (%d != %d)", s.size, count)
	}
	return nil
}

func (s *Set[K]) checkNode(n *node[K], lo, hi *K) (count, h int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && !s.less(*lo, n.key) {
		return 0, 0, errors.New("avl: key violates lower bound")
	}
	if hi != nil && !s.less(n.key, *hi) {
		return 0, 0, errors.New("avl: key violates upper bound")
	}
	lc, lh, err := s.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := s.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if want := max(lh, rh) + 1; n.height != want {
		return 0, 0, fmt.Errorf("avl: stored height %d != computed %d", n.height, want)
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("avl: balance factor %d out of range", bf)
	}
	return lc + rc + 1, max(lh, rh) + 1, nil
}
