// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// Package builder produces deterministic directed weighted core.Graph fixtures.
//
// A Constructor adds edges to an already-sized graph; BuildGraph allocates the
// graph and applies constructors left to right, so topologies can be layered
// (for example Path followed by RandomSparse yields a random graph in which
// every vertex is reachable from 0).
//
//	g, err := builder.BuildGraph(50,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(0, 20))},
//	    builder.Path(), builder.RandomSparse(0.1),
//	)
//
// Constructors:
//
//	Path()           0→1→…→n-1
//	Cycle()          Path plus n-1→0
//	Star(center)     center→v for every v ≠ center
//	Complete()       u→v for every ordered pair u ≠ v
//	RandomSparse(p)  each ordered pair (u,v) with probability p; self-loops included
//
// Determinism:
//   - Edge emission order is fixed (u asc, then v asc).
//   - Randomness comes solely from the configured *rand.Rand, so a fixed
//     WithSeed reproduces the same graph.
//
// Errors:
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
package builder
