// SPDX-License-Identifier: MIT
// Package: sssp/pqueue
//
// types.go — Entry, IndexedMinHeap, sentinel errors and the New constructor.

package pqueue

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by IndexedMinHeap operations.
var (
	// ErrBadCapacity indicates New was called with a non-positive capacity.
	ErrBadCapacity = errors.New("pqueue: capacity must be positive")

	// ErrVertexOutOfRange indicates a vertex id outside [0, capacity).
	ErrVertexOutOfRange = errors.New("pqueue: vertex id out of range")

	// ErrHeapFull indicates InsertInitial was called with size == capacity.
	ErrHeapFull = errors.New("pqueue: heap is full")

	// ErrAlreadySeeded indicates InsertInitial was called twice for the same vertex.
	ErrAlreadySeeded = errors.New("pqueue: vertex already in heap")

	// ErrSeedingClosed indicates InsertInitial was called after the first ExtractMin.
	ErrSeedingClosed = errors.New("pqueue: seeding closed after first extraction")

	// ErrEmptyHeap indicates ExtractMin or Peek on an empty heap.
	ErrEmptyHeap = errors.New("pqueue: heap is empty")

	// ErrNotInHeap indicates DecreaseKey on a vertex that is not live in the heap.
	ErrNotInHeap = errors.New("pqueue: vertex not in heap")

	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key.
	ErrKeyIncrease = errors.New("pqueue: new key is larger than current key")
)

// Entry is one (vertex, distance) pair stored in the heap.
type Entry struct {
	Vertex   int
	Distance int64
}

// IndexedMinHeap is a binary min-heap keyed by Entry.Distance with a
// vertex→slot index. See the package documentation for its invariants.
type IndexedMinHeap struct {
	entries  []Entry // len == capacity; only entries[:size] are live
	position []int   // position[v] = slot of v; ≥ size once v is not live
	size     int     // number of live entries
	sealed   bool    // true after the first ExtractMin
}

// New returns an empty heap able to hold the vertices [0, capacity).
//
// Every position starts at capacity, which is ≥ any size the heap can reach,
// so Contains reports false for vertices that were never seeded.
//
// Errors:
//   - ErrBadCapacity if capacity ≤ 0.
//
// Complexity: O(capacity) time and space.
func New(capacity int) (*IndexedMinHeap, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrBadCapacity)
	}

	pos := make([]int, capacity)
	for v := range pos {
		pos[v] = capacity
	}

	return &IndexedMinHeap{
		entries:  make([]Entry, capacity),
		position: pos,
	}, nil
}
