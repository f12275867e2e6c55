// Package frontier provides the frontier primitives the grid searches expand from.
//
// What
//
//   - Queue: strict FIFO used by breadth-first search.
//   - Priority: the "unvisited set with minimum-key extraction" used by Dijkstra and A*.
//     Two implementations share one contract:
//   - MinSet: linear scan over members in insertion order (reference behavior).
//   - MinHeap: indexed binary heap with decrease-key.
//
// Determinism
//
//	Both Priority implementations break ties on equal keys by insertion order:
//	the earliest-inserted member with the smallest key is extracted first. MinSet
//	gets this from its scan (strict '<'), MinHeap orders by (key, sequence).
//	Given the same inserts and updates they extract the same sequence.
//
// Complexity (n = members)
//
//   - Queue:   Enqueue/Dequeue O(1) amortized.
//   - MinSet:  ExtractMin O(n), Update O(1), Remove O(1) amortized, Contains O(1).
//   - MinHeap: ExtractMin O(log n), Update O(log n), Remove O(log n), Contains O(1).
//
// Keys are ints; Infinity marks members that have not been reached yet.
package frontier
