/*
Package btree implements an in-memory B-tree set: a unique, totally ordered
key set with O(log n) search, insert and delete and bounded fan-out per node.

The tree is the disk-index-style multiway structure, used here purely in
memory. Every node stores up to Order-1 keys; insertion splits any full node
it is about to descend into (so the target leaf always has room), and deletion
guarantees before descending that the child holds more than the minimum key
count, borrowing from or merging with a sibling where necessary. Both engines
work strictly top-down, so no operation ever needs a second pass or
backtracking, and all leaves stay at the same depth.

Current status:
  - configurable fan-out with capacity-bounded node storage,
  - top-down preemptive-split insertion,
  - rebalance-before-descend deletion with predecessor/successor promotion,
  - in-order traversal via callback (Each) and range-over-func (All),
  - deep Clone and ownership-transferring Move,
  - strict structural invariant checker (Check) for tests.

A Set carries no internal synchronization: a single instance must not be
mutated concurrently, nor read while mutated. Distinct instances are
independent.
*/
package btree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
