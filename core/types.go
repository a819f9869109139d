// SPDX-License-Identifier: MIT
// Package: sssp/core
//
// types.go — Graph and Edge types, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates NewGraph was asked for a non-positive vertex count.
	ErrInvalidVertexCount = errors.New("core: vertex count must be positive")

	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")
)

// Edge is a single directed, weighted arc From→To.
type Edge struct {
	// From is the source vertex id.
	From int

	// To is the destination vertex id.
	To int

	// Weight is the traversal cost of the edge.
	Weight int64
}

// Graph is a directed weighted graph over the vertex ids [0, n).
//
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	n         int      // vertex count, immutable after construction
	adjacency [][]Edge // adjacency[v] holds v's outgoing edges in insertion order
	edgeCount int      // total number of inserted edges
}

// NewGraph allocates a Graph with n vertices and no edges.
//
// Errors:
//   - ErrInvalidVertexCount if n ≤ 0.
//
// Complexity: O(n) time and space.
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrInvalidVertexCount)
	}

	return &Graph{
		n:         n,
		adjacency: make([][]Edge, n),
	}, nil
}
