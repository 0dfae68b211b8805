package btree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: it audits
// per-node occupancy and capacity bounds (the root is exempt from the
// minimum), strictly increasing keys, separator key ranges, uniform leaf
// depth, and agreement between Len and a full traversal.
func (s *Set[K]) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil set", ErrInvariant)
	}
	if s.root == nil {
		if s.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, got %d", ErrInvariant, s.size)
		}
		return nil
	}
	count, _, err := s.checkNode(s.root, true, nil, nil)
	if err != nil {
		return err
	}
	if count != s.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariant, s.size, count)
	}
	return nil
}

// checkNode validates the subtree rooted at n. lo and hi are the exclusive
// key bounds inherited from the separators above; nil means unbounded.
func (s *Set[K]) checkNode(n *node[K], isRoot bool, lo, hi *K) (count int, depth int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	if isRoot && len(n.keys) == 0 {
		// an empty root must have been collapsed to nil
		return 0, 0, fmt.Errorf("%w: non-nil root without keys", ErrInvariant)
	}
	if len(n.keys) > s.maxKeys {
		return 0, 0, fmt.Errorf("%w: key count %d exceeds max %d", ErrInvariant, len(n.keys), s.maxKeys)
	}
	if !isRoot && len(n.keys) < s.minKeys {
		return 0, 0, fmt.Errorf("%w: key count %d below min %d", ErrInvariant, len(n.keys), s.minKeys)
	}
	if cap(n.keys) != s.maxKeys {
		return 0, 0, fmt.Errorf("%w: key storage capacity %d != %d", ErrInvariant, cap(n.keys), s.maxKeys)
	}
	for i := range n.keys {
		if i > 0 && !s.less(n.keys[i-1], n.keys[i]) {
			return 0, 0, fmt.Errorf("%w: keys not strictly increasing at index %d", ErrInvariant, i)
		}
		if lo != nil && !s.less(*lo, n.keys[i]) {
			return 0, 0, fmt.Errorf("%w: key at index %d violates lower separator bound", ErrInvariant, i)
		}
		if hi != nil && !s.less(n.keys[i], *hi) {
			return 0, 0, fmt.Errorf("%w: key at index %d violates upper separator bound", ErrInvariant, i)
		}
	}

	if n.leaf {
		if n.children != nil {
			return 0, 0, fmt.Errorf("%w: leaf must not carry children", ErrInvariant)
		}
		return len(n.keys), 1, nil
	}

	if len(n.children) != len(n.keys)+1 {
		return 0, 0, fmt.Errorf("%w: child count %d != key count %d + 1",
			ErrInvariant, len(n.children), len(n.keys))
	}
	if cap(n.children) != s.order {
		return 0, 0, fmt.Errorf("%w: child storage capacity %d != %d", ErrInvariant, cap(n.children), s.order)
	}

	total := len(n.keys)
	childDepth := 0
	for i, child := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = &n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = &n.keys[i]
		}
		cCount, cDepth, cErr := s.checkNode(child, false, clo, chi)
		if cErr != nil {
			return 0, 0, cErr
		}
		if i == 0 {
			childDepth = cDepth
		} else if cDepth != childDepth {
			return 0, 0, fmt.Errorf("%w: leaves at unequal depths", ErrInvariant)
		}
		total += cCount
	}
	return total, childDepth + 1, nil
}
