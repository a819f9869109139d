// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// api.go — the Constructor type and the BuildGraph entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// Constructor adds edges to g according to cfg. Implementations derive the
// vertex range from g.VertexCount() and must not panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph allocates a graph with n vertices and applies each constructor
// in order.
//
// Errors:
//   - core.ErrInvalidVertexCount if n ≤ 0.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildGraph: ".
//
// Complexity: O(n) plus the sum of the constructors' costs.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge draws a weight from cfg and inserts u→v, tagging failures with method.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
