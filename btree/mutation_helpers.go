package btree

// insertAt shifts src[idx:] right by one and places v at idx, within the
// slice's fixed capacity.
func insertAt[T any](src []T, idx int, v T) []T {
	assert(len(src) < cap(src), "insertAt exceeds fixed node capacity")
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	src = src[:len(src)+1]
	copy(src[idx+1:], src[idx:])
	src[idx] = v
	return src
}

// removeAt shifts src[idx+1:] left by one, dropping the element at idx.
func removeAt[T any](src []T, idx int) []T {
	assert(idx >= 0 && idx < len(src), "removeAt index out of range")
	copy(src[idx:], src[idx+1:])
	return truncate(src, len(src)-1)
}

// truncate shortens src to length n, zeroing the vacated tail so stale keys
// and child links do not pin memory.
func truncate[T any](src []T, n int) []T {
	assert(n >= 0 && n <= len(src), "truncate length out of range")
	var zero T
	for i := n; i < len(src); i++ {
		src[i] = zero
	}
	return src[:n]
}
