package btree

// Insert adds key to the set and reports whether it was newly inserted.
// Inserting a key that is already present returns false and leaves the tree
// unchanged.
//
// The engine works strictly top-down: a full root is split first (the only
// point where tree height grows), and on the way down every full child is
// split before it is entered, so the target leaf is guaranteed to have room.
func (s *Set[K]) Insert(key K) bool {
	if s.root == nil {
		root := s.newNode(true)
		root.keys = append(root.keys, key)
		s.root = root
		s.size++
		return true
	}

	if s.Contains(key) {
		return false
	}

	if len(s.root.keys) == s.maxKeys {
		newRoot := s.newNode(false)
		newRoot.children = append(newRoot.children, s.root)
		s.splitChild(newRoot, 0)
		s.root = newRoot
	}

	s.insertNonFull(s.root, key)
	s.size++
	return true
}

// insertNonFull descends from a node with spare capacity down to a leaf and
// places the key at its sorted position. Any full child on the path is split
// before being entered.
func (s *Set[K]) insertNonFull(n *node[K], key K) {
	assert(len(n.keys) < s.maxKeys, "insertNonFull requires spare capacity")

	if n.leaf {
		n.keys = insertAt(n.keys, s.lowerBound(n, key), key)
		return
	}

	idx := s.lowerBound(n, key)
	if len(n.children[idx].keys) == s.maxKeys {
		s.splitChild(n, idx)
		// the promoted median landed at idx; step right if key sorts after it
		if s.less(n.keys[idx], key) {
			idx++
		}
	}
	s.insertNonFull(n.children[idx], key)
}

// splitChild splits the full child at parent.children[idx] at its median
// index mid = count/2: the child keeps keys [0,mid), the median is promoted
// into the parent, and a new right sibling takes keys (mid,count) plus the
// trailing children if internal.
//
// The sibling is fully built before the parent is touched, so there is no
// ordering of mutations under which a half-linked parent can be observed.
func (s *Set[K]) splitChild(parent *node[K], idx int) {
	child := parent.children[idx]
	assert(len(child.keys) == s.maxKeys, "splitChild requires a full child")
	assert(len(parent.keys) < s.maxKeys, "splitChild requires a non-full parent")

	mid := len(child.keys) / 2
	median := child.keys[mid]

	right := s.newNode(child.leaf)
	right.keys = append(right.keys, child.keys[mid+1:]...)
	if !child.leaf {
		right.children = append(right.children, child.children[mid+1:]...)
	}

	child.keys = truncate(child.keys, mid)
	if !child.leaf {
		child.children = truncate(child.children, mid+1)
	}

	parent.children = insertAt(parent.children, idx+1, right)
	parent.keys = insertAt(parent.keys, idx, median)
}
