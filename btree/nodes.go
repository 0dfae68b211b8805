package btree

// node is the fixed-capacity storage unit of the tree.
//
// keys holds up to maxKeys strictly increasing keys. children holds
// len(keys)+1 child links when the node is internal and is nil for leaves.
// Both slices are allocated with their exact final capacity, so the occupancy
// bounds double as capacity invariants (audited by Check); the preemptive
// split discipline guarantees no transient overflow storage is ever needed.
type node[K any] struct {
	leaf     bool
	keys     []K
	children []*node[K]
}

func (s *Set[K]) newNode(leaf bool) *node[K] {
	n := &node[K]{
		leaf: leaf,
		keys: make([]K, 0, s.maxKeys),
	}
	if !leaf {
		n.children = make([]*node[K], 0, s.order)
	}
	return n
}

// cloneSubtree returns a deep copy of the subtree rooted at n, sharing no
// nodes with the original.
func (s *Set[K]) cloneSubtree(n *node[K]) *node[K] {
	if n == nil {
		return nil
	}
	out := s.newNode(n.leaf)
	out.keys = append(out.keys, n.keys...)
	if !n.leaf {
		for _, child := range n.children {
			out.children = append(out.children, s.cloneSubtree(child))
		}
	}
	return out
}
