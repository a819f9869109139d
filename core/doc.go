// SPDX-License-Identifier: MIT
// Package: sssp/core
//
// Package core provides the in-memory directed weighted Graph consumed by the
// shortest-path driver.
//
// Vertices are the dense integer range [0, VertexCount). The vertex count is
// fixed at construction; edges are inserted one at a time and never removed.
// Every vertex owns an ordered slice of outgoing edges kept in insertion
// order. Parallel edges and self-loops are permitted.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)                // O(n)
//	AddEdge(src, dest int, weight int64) error     // O(1) amortized
//	Neighbors(v int) ([]Edge, error)               // O(deg(v)), returns a copy
//	Edges() []Edge                                 // O(V+E)
//	VertexCount(), EdgeCount(), HasVertex(v)       // O(1)
//
// Errors:
//
//	ErrInvalidVertexCount - NewGraph called with n ≤ 0.
//	ErrVertexOutOfRange   - a vertex id outside [0, VertexCount).
//
// Weights are signed so that callers can represent whatever their input
// carries; shortest-path algorithms reject negative weights themselves.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency slices. Mutations take the
//	write lock, queries take the read lock, so several computations may
//	read one Graph concurrently once construction is finished.
package core
