// Package redblack implements a red-black binary search tree set.
//
// The implementation follows the classic formulation with a per-tree nil
// sentinel node: every leaf-ward pointer and the root's parent point at the
// sentinel, which is always black. Insert and erase repaint and rotate along
// the access path to keep every root-to-leaf path at the same black height.
// The container shares the forest.Set contract and serves as the second
// rotation-based baseline next to the multiway B-tree. No internal
// synchronization; a single instance must not be mutated concurrently.
package redblack

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/treelab/forest"
)

// ErrNilComparator signals a missing comparator at construction.
var ErrNilComparator = errors.New("redblack: comparator is required")

type color bool

const (
	red   color = false
	black color = true
)

type node[K any] struct {
	key    K
	color  color
	parent *node[K]
	left   *node[K]
	right  *node[K]
}

// Set is a red-black tree set storing unique keys in comparator order.
type Set[K any] struct {
	root *node[K]
	nilN *node[K] // shared sentinel, always black
	size int
	less forest.Less[K]
}

// New creates an empty set ordered by less.
func New[K any](less forest.Less[K]) (*Set[K], error) {
	if less == nil {
		return nil, ErrNilComparator
	}
	sentinel := &node[K]{color: black}
	return &Set[K]{root: sentinel, nilN: sentinel, less: less}, nil
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
	s.root = s.nilN
	s.size = 0
}

func (s *Set[K]) lookup(key K) *node[K] {
	n := s.root
	for n != s.nilN {
		switch {
		case s.less(key, n.key):
			n = n.left
		case s.less(n.key, key):
			n = n.right
		default:
			return n
		}
	}
	return s.nilN
}

// Contains reports whether an equal key is present.
func (s *Set[K]) Contains(key K) bool {
	return s.lookup(key) != s.nilN
}

// Insert adds key to the set and reports whether it was newly inserted.
func (s *Set[K]) Insert(key K) bool {
	parent, n := s.nilN, s.root
	for n != s.nilN {
		parent = n
		switch {
		case s.less(key, n.key):
			n = n.left
		case s.less(n.key, key):
			n = n.right
		default:
			return false
		}
	}
	fresh := &node[K]{key: key, color: red, parent: parent, left: s.nilN, right: s.nilN}
	switch {
	case parent == s.nilN:
		s.root = fresh
	case s.less(key, parent.key):
		parent.left = fresh
	default:
		parent.right = fresh
	}
	s.insertFixup(fresh)
	s.size++
	return true
}

// insertFixup repairs the red-red violation a fresh red node may introduce,
// walking up while the parent is red.
func (s *Set[K]) insertFixup(n *node[K]) {
	for n.parent.color == red {
		grand := n.parent.parent
		if n.parent == grand.left {
			uncle := grand.right
			if uncle.color == red {
				n.parent.color = black
				uncle.color = black
				grand.color = red
				n = grand
				continue
			}
			if n == n.parent.right {
				n = n.parent
				s.rotateLeft(n)
			}
			n.parent.color = black
			grand.color = red
			s.rotateRight(grand)
		} else {
			uncle := grand.left
			if uncle.color == red {
				n.parent.color = black
				uncle.color = black
				grand.color = red
				n = grand
				continue
			}
			if n == n.parent.left {
				n = n.parent
				s.rotateRight(n)
			}
			n.parent.color = black
			grand.color = red
			s.rotateLeft(grand)
		}
	}
	s.root.color = black
}

// Erase removes key from the set and reports whether it was present.
func (s *Set[K]) Erase(key K) bool {
	n := s.lookup(key)
	if n == s.nilN {
		return false
	}
	removed := n
	removedColor := removed.color
	var fix *node[K]
	switch {
	case n.left == s.nilN:
		fix = n.right
		s.transplant(n, n.right)
	case n.right == s.nilN:
		fix = n.left
		s.transplant(n, n.left)
	default:
		// two children: the in-order successor takes n's place and
		// inherits its color
		succ := n.right
		for succ.left != s.nilN {
			succ = succ.left
		}
		removedColor = succ.color
		fix = succ.right
		if succ.parent == n {
			fix.parent = succ
		} else {
			s.transplant(succ, succ.right)
			succ.right = n.right
			succ.right.parent = succ
		}
		s.transplant(n, succ)
		succ.left = n.left
		succ.left.parent = succ
		succ.color = n.color
	}
	if removedColor == black {
		s.eraseFixup(fix)
	}
	s.size--
	return true
}

// transplant replaces the subtree rooted at old with the one rooted at sub.
func (s *Set[K]) transplant(old, sub *node[K]) {
	switch {
	case old.parent == s.nilN:
		s.root = sub
	case old == old.parent.left:
		old.parent.left = sub
	default:
		old.parent.right = sub
	}
	sub.parent = old.parent
}

// eraseFixup restores equal black heights after a black node was removed.
// n carries an extra unit of blackness that is pushed up or absorbed.
func (s *Set[K]) eraseFixup(n *node[K]) {
	for n != s.root && n.color == black {
		if n == n.parent.left {
			sib := n.parent.right
			if sib.color == red {
				sib.color = black
				n.parent.color = red
				s.rotateLeft(n.parent)
				sib = n.parent.right
			}
			if sib.left.color == black && sib.right.color == black {
				sib.color = red
				n = n.parent
				continue
			}
			if sib.right.color == black {
				sib.left.color = black
				sib.color = red
				s.rotateRight(sib)
				sib = n.parent.right
			}
			sib.color = n.parent.color
			n.parent.color = black
			sib.right.color = black
			s.rotateLeft(n.parent)
			n = s.root
		} else {
			sib := n.parent.left
			if sib.color == red {
				sib.color = black
				n.parent.color = red
				s.rotateRight(n.parent)
				sib = n.parent.left
			}
			if sib.right.color == black && sib.left.color == black {
				sib.color = red
				n = n.parent
				continue
			}
			if sib.left.color == black {
				sib.right.color = black
				sib.color = red
				s.rotateLeft(sib)
				sib = n.parent.left
			}
			sib.color = n.parent.color
			n.parent.color = black
			sib.left.color = black
			s.rotateRight(n.parent)
			n = s.root
		}
	}
	n.color = black
}

func (s *Set[K]) rotateLeft(x *node[K]) {
	y := x.right
	x.right = y.left
	if y.left != s.nilN {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == s.nilN:
		s.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (s *Set[K]) rotateRight(y *node[K]) {
	x := y.left
	y.left = x.right
	if x.right != s.nilN {
		x.right.parent = y
	}
	x.parent = y.parent
	switch {
	case y.parent == s.nilN:
		s.root = x
	case y == y.parent.left:
		y.parent.left = x
	default:
		y.parent.right = x
	}
	x.right = y
	y.parent = x
}

// Each walks all keys in ascending comparator order; iteration stops early
// if visit returns false.
func (s *Set[K]) Each(visit func(key K) bool) {
	if s == nil || visit == nil {
		return
	}
	s.eachNode(s.root, visit)
}

func (s *Set[K]) eachNode(n *node[K], visit func(key K) bool) bool {
	if n == s.nilN {
		return true
	}
	return s.eachNode(n.left, visit) && visit(n.key) && s.eachNode(n.right, visit)
}

// Check validates the red-black properties, the search-tree order and the
// size counter. Meant for tests.
func (s *Set[K]) Check() error {
	if s.nilN.color != black {
		return errors.New("redblack: sentinel is not black")
	}
	if s.root.color != black {
		return errors.New("redblack: root is not black")
	}
	count, _, err := s.checkNode(s.root, nil, nil)
	if err != nil {
		return err
	}
	if count != s.size {
		return fmt.Errorf("redblack: size mismatch (%d != %d)", s.size, count)
	}
	return nil
}

func (s *Set[K]) checkNode(n *node[K], lo, hi *K) (count, blackHeight int, err error) {
	if n == s.nilN {
		return 0, 1, nil
	}
	if lo != nil && !s.less(*lo, n.key) {
		return 0, 0, errors.New("redblack: key violates lower bound")
	}
	if hi != nil && !s.less(n.key, *hi) {
		return 0, 0, errors.New("redblack: key violates upper bound")
	}
	if n.color == red && (n.left.color == red || n.right.color == red) {
		return 0, 0, errors.New("redblack: red node with red child")
	}
	lc, lbh, err := s.checkNode(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rbh, err := s.checkNode(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("redblack: unequal black heights (%d != %d)", lbh, rbh)
	}
	bh := lbh
	if n.color == black {
		bh++
	}
	return lc + rc + 1, bh, nil
}
