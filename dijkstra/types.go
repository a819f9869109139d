// SPDX-License-Identifier: MIT
// Package: sssp/dijkstra
//
// Package dijkstra defines core types and configuration options
// for Dijkstra's single-source shortest-path algorithm on a core.Graph.
//
// Dijkstra computes the minimum total weight from one source vertex to every
// reachable vertex of a directed graph with non-negative edge weights, and a
// predecessor link per vertex for path reconstruction by the caller.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • V seeds and V extractions from the indexed heap.
//	   • At most E decrease-key calls, each O(log V).
//	– Space: O(V)
//	   • dist, pred and the heap are all sized V; the heap never grows.
//
// Options:
//
//	– Source:           starting vertex id (mandatory, must lie in [0, V)).
//	– MaxDistance:      optional cap; vertices farther than this stay unreached.
//	– InfEdgeThreshold: edges with weight ≥ this threshold are impassable.
//	– OnSettle:         hook invoked for each settled vertex in extraction order.
//
// Errors (sentinel):
//
//	– ErrNoSource          if Source was never supplied.
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrSourceOutOfRange  if Source is outside [0, V).
//	– ErrNegativeWeight    if any edge carries a negative weight.
//	– ErrBadMaxDistance    if MaxDistance < 0 (option constructor panics).
//	– ErrBadInfThreshold   if InfEdgeThreshold ≤ 0 (option constructor panics).
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist[2], res.Pred[2])
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that Source lies outside [0, VertexCount).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// errHeapState marks a heap failure that the driver's loop guard rules out.
	errHeapState = errors.New("dijkstra: internal heap state corrupted")
)

const (
	// Infinity is the distance reported for vertices not reached from Source.
	Infinity int64 = math.MaxInt64

	// NoPredecessor is the predecessor reported for Source and for unreached vertices.
	NoPredecessor = -1
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex id; must be supplied via Source(v).
// MaxDistance      – vertices whose shortest distance exceeds this stay unreached.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
//
// OnSettle         – called once per settled vertex, in extraction order.
type Options struct {
	Source           int                 // The id of the source vertex
	MaxDistance      int64               // Maximum distance to explore
	InfEdgeThreshold int64               // Weight threshold above which edges are non-traversable
	OnSettle         func(v int, d int64) // Settlement hook; never nil after DefaultOptions

	sourceSet bool // distinguishes Source(0) from "not supplied"
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex id. Must be supplied.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
		o.sourceSet = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and are reported as unreached.
// Panics on negative values, as an invalid configuration.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Edges with weight ≥ threshold are skipped.
// Panics on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle registers fn to be called for every settled vertex with its
// final distance, in extraction order. A nil fn is ignored.
func WithOnSettle(fn func(v int, d int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:           unset (Dijkstra returns ErrNoSource).
//   - MaxDistance:      math.MaxInt64 (explore everything reachable).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
//   - OnSettle:         no-op.
func DefaultOptions() Options {
	return Options{
		Source:           NoPredecessor,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		OnSettle:         func(int, int64) {},
	}
}

// Result holds the outcome of one Dijkstra computation.
//
// Dist[v] is the shortest distance from Source to v, or Infinity.
// Pred[v] is the vertex preceding v on one shortest path, or NoPredecessor.
// Among equally short paths the recorded predecessor is unspecified.
type Result struct {
	Source int
	Dist   []int64
	Pred   []int
}

// Row is one line of the per-vertex result table.
type Row struct {
	Vertex int
	Dist   int64
	Pred   int
}

// Reachable reports whether v was reached from Source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Infinity
}

// Distance returns the shortest distance to v and whether v was reached.
func (r *Result) Distance(v int) (int64, bool) {
	if !r.Reachable(v) {
		return Infinity, false
	}

	return r.Dist[v], true
}

// Predecessor returns v's predecessor and whether one exists.
// Source and unreached vertices have none.
func (r *Result) Predecessor(v int) (int, bool) {
	if v < 0 || v >= len(r.Pred) || r.Pred[v] == NoPredecessor {
		return NoPredecessor, false
	}

	return r.Pred[v], true
}

// Rows returns (vertex, dist, pred) for every vertex in ascending id order.
func (r *Result) Rows() []Row {
	rows := make([]Row, len(r.Dist))
	for v := range r.Dist {
		rows[v] = Row{Vertex: v, Dist: r.Dist[v], Pred: r.Pred[v]}
	}

	return rows
}
