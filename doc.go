/*
Package forest provides a family of in-memory ordered-set containers built
around one shared contract, together with tooling to benchmark them against
each other.

The containers live in subpackages:

	btree     multiway B-tree set (the primary container)
	bst       plain binary search tree (comparison baseline)
	avl       height-balanced tree (comparison baseline)
	redblack  red/black tree (comparison baseline)

All of them store a unique, totally ordered key set and expose the same
operation set — insert, erase, contains, in-order traversal — captured by the
Set interface in this package. Ordering is always defined by a strict weak
order comparator of type Less; containers never require an equality operation
on the key type and instead derive equality from the double comparison

	!less(a, b) && !less(b, a)

The bench subpackage drives any Set implementation with generated key
sequences and wall-clock timing, and the csvlog subpackage records the
resulting (label, count, seconds) triples.

None of the containers synchronize internally: a single instance must not be
mutated concurrently, nor read while another goroutine mutates it. Distinct
instances are fully independent and may be used from different goroutines,
which is what the benchmark driver's parallel dispatch relies on.

# BSD License

Copyright (c) the forest authors

Please refer to the LICENSE file for details.
*/
package forest
