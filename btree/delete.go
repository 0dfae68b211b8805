package btree

// Erase removes key from the set and reports whether it was present.
// Erasing an absent key returns false and leaves the tree unchanged.
//
// The engine mirrors insertion's top-down discipline: before descending into
// a child it ensures the child holds more than minKeys keys, borrowing from
// a sibling or merging with one where necessary, so the removal itself never
// needs to propagate back up. The only height-shrink point is the root
// collapse below.
func (s *Set[K]) Erase(key K) bool {
	if s.root == nil {
		return false
	}
	if !s.eraseFrom(s.root, key) {
		return false
	}
	if len(s.root.keys) == 0 {
		if s.root.leaf {
			s.root = nil
		} else {
			// root emptied around its single surviving child
			s.root = s.root.children[0]
		}
	}
	s.size--
	return true
}

func (s *Set[K]) eraseFrom(n *node[K], key K) bool {
	idx := s.lowerBound(n, key)

	if idx < len(n.keys) && !s.less(key, n.keys[idx]) {
		// key sits at n.keys[idx]
		if n.leaf {
			n.keys = removeAt(n.keys, idx)
			return true
		}
		if len(n.children[idx].keys) > s.minKeys {
			pred := s.maxKeyOf(n.children[idx])
			n.keys[idx] = pred
			return s.eraseFrom(n.children[idx], pred)
		}
		if len(n.children[idx+1].keys) > s.minKeys {
			succ := s.minKeyOf(n.children[idx+1])
			n.keys[idx] = succ
			return s.eraseFrom(n.children[idx+1], succ)
		}
		// neither neighbor can donate: fold both around the key and recurse
		s.mergeChildren(n, idx)
		return s.eraseFrom(n.children[idx], key)
	}

	if n.leaf {
		return false
	}

	child := n.children[idx]
	if len(child.keys) == s.minKeys {
		switch {
		case idx > 0 && len(n.children[idx-1].keys) > s.minKeys:
			s.borrowFromLeft(n, idx)
		case idx < len(n.keys) && len(n.children[idx+1].keys) > s.minKeys:
			s.borrowFromRight(n, idx)
		case idx < len(n.keys):
			s.mergeChildren(n, idx)
		default:
			s.mergeChildren(n, idx-1)
			child = n.children[idx-1]
		}
	}
	return s.eraseFrom(child, key)
}

// maxKeyOf returns the maximum key of a subtree (the predecessor donor).
func (s *Set[K]) maxKeyOf(n *node[K]) K {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1]
}

// minKeyOf returns the minimum key of a subtree (the successor donor).
func (s *Set[K]) minKeyOf(n *node[K]) K {
	for !n.leaf {
		n = n.children[0]
	}
	return n.keys[0]
}

// borrowFromLeft moves one key (and one child, if internal) from the left
// sibling through the parent into children[idx], re-anchoring the separator.
func (s *Set[K]) borrowFromLeft(parent *node[K], idx int) {
	child := parent.children[idx]
	sib := parent.children[idx-1]
	assert(len(sib.keys) > s.minKeys, "borrowFromLeft requires a donor with spare keys")

	child.keys = insertAt(child.keys, 0, parent.keys[idx-1])
	if !child.leaf {
		child.children = insertAt(child.children, 0, sib.children[len(sib.children)-1])
		sib.children = truncate(sib.children, len(sib.children)-1)
	}
	parent.keys[idx-1] = sib.keys[len(sib.keys)-1]
	sib.keys = truncate(sib.keys, len(sib.keys)-1)
}

// borrowFromRight is the mirror image of borrowFromLeft.
func (s *Set[K]) borrowFromRight(parent *node[K], idx int) {
	child := parent.children[idx]
	sib := parent.children[idx+1]
	assert(len(sib.keys) > s.minKeys, "borrowFromRight requires a donor with spare keys")

	child.keys = append(child.keys, parent.keys[idx])
	if !child.leaf {
		child.children = append(child.children, sib.children[0])
		sib.children = removeAt(sib.children, 0)
	}
	parent.keys[idx] = sib.keys[0]
	sib.keys = removeAt(sib.keys, 0)
}

// mergeChildren folds the separator key at parent.keys[idx] and the right
// sibling's keys and children into children[idx], then unlinks the separator
// and the sibling from the parent.
func (s *Set[K]) mergeChildren(parent *node[K], idx int) {
	child := parent.children[idx]
	sib := parent.children[idx+1]
	assert(len(child.keys)+len(sib.keys)+1 <= s.maxKeys, "mergeChildren exceeds node capacity")

	child.keys = append(child.keys, parent.keys[idx])
	child.keys = append(child.keys, sib.keys...)
	if !child.leaf {
		child.children = append(child.children, sib.children...)
	}

	parent.keys = removeAt(parent.keys, idx)
	parent.children = removeAt(parent.children, idx+1)
}
