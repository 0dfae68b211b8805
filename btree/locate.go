package btree

// lowerBound returns the smallest index i such that !less(n.keys[i], key),
// i.e. the index of the first key not less than key, or len(n.keys) if all
// keys are less. Binary search over the node's ordered keys.
//
// Callers detect equality with the follow-up comparison !less(key, keys[i]);
// together with the lower-bound guarantee this is the double-comparison
// equality test of a strict weak order.
func (s *Set[K]) lowerBound(n *node[K], key K) int {
	lo, hi := 0, len(n.keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if s.less(n.keys[mid], key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
