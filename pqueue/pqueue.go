// SPDX-License-Identifier: MIT
// Package: sssp/pqueue
//
// pqueue.go — heap operations and the sift primitives.

package pqueue

import "fmt"

// Len returns the number of live entries.
func (h *IndexedMinHeap) Len() int { return h.size }

// Cap returns the number of vertices the heap was sized for.
func (h *IndexedMinHeap) Cap() int { return len(h.entries) }

// IsEmpty reports whether no live entries remain.
func (h *IndexedMinHeap) IsEmpty() bool { return h.size == 0 }

// Contains reports whether v is live in the heap, i.e. position[v] < size.
// Out-of-range ids report false.
// Complexity: O(1).
func (h *IndexedMinHeap) Contains(v int) bool {
	if v < 0 || v >= len(h.position) {
		return false
	}

	return h.position[v] < h.size
}

// Key returns v's current distance and true if v is live; otherwise 0, false.
// Complexity: O(1).
func (h *IndexedMinHeap) Key(v int) (int64, bool) {
	if !h.Contains(v) {
		return 0, false
	}

	return h.entries[h.position[v]].Distance, true
}

// InsertInitial appends (v, d) during seeding and records its slot.
//
// Implementation:
//   - Stage 1: Validate id, seeding state, capacity and duplicates.
//   - Stage 2: Write the entry at slot size, record position, grow size.
//   - Stage 3: Sift up so the heap property holds for any seeding order.
//
// When every seed carries the same key no entry moves, so seeding order
// is exactly the initial array layout.
//
// Errors:
//   - ErrVertexOutOfRange, ErrSeedingClosed, ErrHeapFull, ErrAlreadySeeded.
//
// Complexity: O(log n).
func (h *IndexedMinHeap) InsertInitial(v int, d int64) error {
	// Stage 1: validation, no state is touched on failure.
	if v < 0 || v >= len(h.position) {
		return fmt.Errorf("InsertInitial(%d): %w", v, ErrVertexOutOfRange)
	}
	if h.sealed {
		return fmt.Errorf("InsertInitial(%d): %w", v, ErrSeedingClosed)
	}
	if h.size == len(h.entries) {
		return fmt.Errorf("InsertInitial(%d): %w", v, ErrHeapFull)
	}
	if h.Contains(v) {
		return fmt.Errorf("InsertInitial(%d): %w", v, ErrAlreadySeeded)
	}

	// Stage 2: append.
	i := h.size
	h.entries[i] = Entry{Vertex: v, Distance: d}
	h.position[v] = i
	h.size++

	// Stage 3: restore heap order.
	h.siftUp(i)

	return nil
}

// Peek returns the minimum entry without removing it.
//
// Errors:
//   - ErrEmptyHeap if the heap has no live entries.
func (h *IndexedMinHeap) Peek() (Entry, error) {
	if h.size == 0 {
		return Entry{}, ErrEmptyHeap
	}

	return h.entries[0], nil
}

// ExtractMin removes and returns the entry with the smallest distance.
// Ties are broken by heap layout and carry no meaning.
//
// Implementation:
//   - Stage 1: Swap the root with the last live entry and update both positions.
//   - Stage 2: Shrink size; the extracted vertex's position is now the old
//     last slot, which is ≥ the new size, so Contains reports false.
//   - Stage 3: Sift the new root down.
//
// Errors:
//   - ErrEmptyHeap if called on an empty heap.
//
// Complexity: O(log n).
func (h *IndexedMinHeap) ExtractMin() (Entry, error) {
	if h.size == 0 {
		return Entry{}, ErrEmptyHeap
	}
	h.sealed = true

	// Stage 1: root ↔ last live slot.
	last := h.size - 1
	root := h.entries[0]
	h.swap(0, last)

	// Stage 2: shrink; position[root.Vertex] == last == new size.
	h.size--

	// Stage 3: restore heap order below the new root.
	h.siftDown(0)

	return root, nil
}

// DecreaseKey lowers v's distance to d and sifts it toward the root.
//
// An equal key is accepted and leaves the layout unchanged.
//
// Errors:
//   - ErrNotInHeap if v is not live (never seeded, extracted, or out of range).
//   - ErrKeyIncrease if d is larger than v's current distance.
//
// Complexity: O(log n).
func (h *IndexedMinHeap) DecreaseKey(v int, d int64) error {
	if !h.Contains(v) {
		return fmt.Errorf("DecreaseKey(%d): %w", v, ErrNotInHeap)
	}

	i := h.position[v]
	if d > h.entries[i].Distance {
		return fmt.Errorf("DecreaseKey(%d): %d > %d: %w", v, d, h.entries[i].Distance, ErrKeyIncrease)
	}

	h.entries[i].Distance = d
	h.siftUp(i)

	return nil
}

// siftUp moves the entry at slot i toward the root while its parent is larger.
func (h *IndexedMinHeap) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if h.entries[i].Distance >= h.entries[p].Distance {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// siftDown moves the entry at slot i away from the root by repeatedly
// swapping with the smaller child until neither child is smaller.
func (h *IndexedMinHeap) siftDown(i int) {
	for {
		smallest := i
		l, r := 2*i+1, 2*i+2

		if l < h.size && h.entries[l].Distance < h.entries[smallest].Distance {
			smallest = l
		}
		if r < h.size && h.entries[r].Distance < h.entries[smallest].Distance {
			smallest = r
		}
		if smallest == i {
			return
		}

		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges slots i and j and keeps position in sync for both vertices.
func (h *IndexedMinHeap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.position[h.entries[i].Vertex] = i
	h.position[h.entries[j].Vertex] = j
}
