package forest

import "cmp"

// Less is a strict weak order over keys: Less(a, b) reports whether a sorts
// strictly before b. It is the only comparison primitive the containers use.
type Less[K any] func(a, b K) bool

// OrderedLess returns the natural order comparator for ordered key types.
func OrderedLess[K cmp.Ordered]() Less[K] {
	return func(a, b K) bool { return cmp.Less(a, b) }
}

// Eq derives key equality from a strict weak order.
//
// Containers must not assume an independent equality operation on K; two keys
// are equal exactly when neither sorts before the other.
func Eq[K any](less Less[K], a, b K) bool {
	return !less(a, b) && !less(b, a)
}

// Set is the contract shared by all containers in this module.
//
// Insert reports whether the key was newly inserted; inserting a present key
// is a no-op returning false. Erase reports whether the key was present;
// erasing an absent key is a no-op returning false. Each walks all keys in
// ascending comparator order and stops early when the callback returns false.
type Set[K any] interface {
	Insert(key K) bool
	Erase(key K) bool
	Contains(key K) bool
	Len() int
	IsEmpty() bool
	Clear()
	Each(visit func(key K) bool)
}
