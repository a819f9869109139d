// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_random_sparse.go - implementation of the RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over ordered pairs (u,v), self-loops included:
//     each pair is included independently with probability p.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: u asc, then v asc; fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor sampling each ordered pair with probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		// 2) Bernoulli trial per ordered pair.
		n := g.VertexCount()
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
