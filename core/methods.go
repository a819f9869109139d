// SPDX-License-Identifier: MIT
// Package: sssp/core
//
// methods.go — edge insertion and read-only queries.
//
// Locking:
//   - AddEdge acquires mu for writing.
//   - All queries acquire mu for reading and hand back copies, so callers
//     can never alias the internal adjacency slices.

package core

import "fmt"

// VertexCount returns the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	// n is immutable after NewGraph; no lock required.
	return g.n
}

// HasVertex reports whether v lies in [0, VertexCount).
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.n
}

// EdgeCount returns the number of edges inserted so far, parallel edges included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AddEdge inserts the directed edge src→dest with the given weight.
//
// Implementation:
//   - Stage 1: Validate both endpoints before touching any state.
//   - Stage 2: Append to src's adjacency under the write lock.
//
// No de-duplication happens: parallel edges are all kept and all are
// considered during relaxation.
//
// Errors:
//   - ErrVertexOutOfRange if src or dest is outside [0, VertexCount).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dest int, weight int64) error {
	// Stage 1: reject bad ids eagerly, the graph stays untouched.
	if !g.HasVertex(src) {
		return fmt.Errorf("AddEdge(%d→%d): src=%d not in [0,%d): %w", src, dest, src, g.n, ErrVertexOutOfRange)
	}
	if !g.HasVertex(dest) {
		return fmt.Errorf("AddEdge(%d→%d): dest=%d not in [0,%d): %w", src, dest, dest, g.n, ErrVertexOutOfRange)
	}

	// Stage 2: append in insertion order.
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency[src] = append(g.adjacency[src], Edge{From: src, To: dest, Weight: weight})
	g.edgeCount++

	return nil
}

// Neighbors returns a copy of v's outgoing edges in insertion order.
//
// Errors:
//   - ErrVertexOutOfRange if v is outside [0, VertexCount).
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexOutOfRange)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// Edges returns every edge of the graph ordered by ascending source id and,
// within one source, by insertion order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, adj := range g.adjacency {
		out = append(out, adj...)
	}

	return out
}

// ForEachNeighbor calls fn for every outgoing edge of v in insertion order
// while holding the read lock. fn must not mutate g.
//
// Errors:
//   - ErrVertexOutOfRange if v is outside [0, VertexCount).
//
// Complexity: O(deg(v)), no allocation.
func (g *Graph) ForEachNeighbor(v int, fn func(e Edge)) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("ForEachNeighbor(%d): %w", v, ErrVertexOutOfRange)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adjacency[v] {
		fn(e)
	}

	return nil
}
