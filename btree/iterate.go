package btree

import "iter"

// Each walks all keys in ascending comparator order.
//
// Iteration stops early if visit returns false. Each never mutates the tree
// and is restartable: repeated calls on an unchanged tree yield the same
// sequence.
func (s *Set[K]) Each(visit func(key K) bool) {
	if s == nil || s.root == nil || visit == nil {
		return
	}
	s.eachNode(s.root, visit)
}

func (s *Set[K]) eachNode(n *node[K], visit func(key K) bool) bool {
	assert(n != nil, "eachNode called with nil node")
	for i, key := range n.keys {
		if !n.leaf && !s.eachNode(n.children[i], visit) {
			return false
		}
		if !visit(key) {
			return false
		}
	}
	if !n.leaf {
		return s.eachNode(n.children[len(n.keys)], visit)
	}
	return true
}

// All returns an in-order iterator over all keys, for use with range.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.Each(yield)
	}
}
