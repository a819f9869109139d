// SPDX-License-Identifier: MIT
// Package: sssp/internal/tableio
//
// Package tableio reads the plain-text graph description consumed by the
// shortest-path driver and renders its per-vertex result table.
//
// Input format (whitespace separated integers, any line layout):
//
//	V E S
//	src dest weight   // repeated E times
//
// V is the vertex count (≥ 1), E the edge count (≥ 0) and S the source
// vertex (0 ≤ S < V). Every src and dest must lie in [0, V).
//
// Output format, one line per vertex in ascending id order:
//
//	i<TAB>dist<TAB>pred
//
// Unreachable vertices print the configured infinity sentinel for dist and
// -1 for pred.
package tableio
