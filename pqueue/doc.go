// SPDX-License-Identifier: MIT
// Package: sssp/pqueue
//
// Package pqueue implements an indexable binary min-heap over (vertex, distance)
// pairs with O(log n) decrease-key.
//
// Besides the entries array arranged as a binary heap, the structure keeps a
// vertex→slot index. Membership is decided purely by comparing a vertex's
// recorded slot against the live size:
//
//	Contains(v)  ⇔  position[v] < size
//
// ExtractMin swaps the root with the last live entry and shrinks size, so the
// extracted vertex's recorded slot becomes exactly the old last index, which is
// ≥ the new size. There is no separate "removed" flag; a vertex that has left
// the heap can never appear to be present again.
//
// Invariants (restricted to the first size slots):
//
//	heap:  entries[parent(i)].Distance ≤ entries[i].Distance
//	index: entries[position[v]].Vertex == v   for every v with position[v] < size
//
// Lifecycle:
//
//	h, _ := pqueue.New(n)
//	h.InsertInitial(v, d)   // seeding only; closed by the first ExtractMin
//	h.DecreaseKey(v, d')    // d' ≤ current key
//	e, _ := h.ExtractMin()  // O(log n)
//
// Complexity:
//
//	New            O(n)
//	InsertInitial  O(log n)
//	DecreaseKey    O(log n)
//	ExtractMin     O(log n)
//	Contains, Key  O(1)
//
// The heap is not safe for concurrent use; one instance belongs to one
// computation.
package pqueue
