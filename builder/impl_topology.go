// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_topology.go — deterministic topologies: Path, Cycle, Star, Complete.
//
// Contract:
//   - Edges are emitted in a stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a Constructor emitting i-1→i for i = 1..n-1.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor emitting the path 0→…→n-1 and the closing edge n-1→0.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor emitting center→v for every v ≠ center, v asc.
func Star(center int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if !g.HasVertex(center) {
			return fmt.Errorf("%s: center=%d not in [0,%d): %w", methodStar, center, n, ErrConstructFailed)
		}
		for v := 0; v < n; v++ {
			if v == center {
				continue
			}
			if err := addEdge(g, cfg, methodStar, center, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor emitting u→v for every ordered pair u ≠ v.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
