// SPDX-License-Identifier: MIT
// Package: sssp/dijkstra
//
// dijkstra.go — the driver: validation, seeding, and the relaxation loop.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Every vertex is seeded into one pqueue.IndexedMinHeap at Infinity; the
//     source is then lowered to 0 with DecreaseKey.
//   - Relaxation only targets vertices still live in the heap. A settled
//     vertex is never re-inserted: its distance is final once extracted.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - Once the heap minimum is Infinity nothing left can be relaxed, and the
//     loop stops draining.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/pqueue"
)

// Dijkstra computes shortest distances and predecessors from Options.Source
// to every vertex of g.
//
// Returns:
//
//   - *Result: Dist[v] (Infinity if unreachable) and Pred[v] (NoPredecessor
//     for Source and for unreachable v), both sized g.VertexCount().
//   - err: non-nil if inputs are invalid; no partial result is returned.
//
// Preconditions and validation (in order):
//  1. Source must be supplied (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must lie in [0, V) (ErrSourceOutOfRange).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// g is only read; independent computations may share it.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if !cfg.sourceSet {
		return nil, ErrNoSource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate Source lies within the graph.
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source=%d, vertices=%d", ErrSourceOutOfRange, cfg.Source, g.VertexCount())
	}

	// 5) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 6) Allocate per-computation state.
	n := g.VertexCount()
	pq, err := pqueue.New(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errHeapState, err)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		pred:    make([]int, n),
		pq:      pq,
	}

	// 7) Seed and run.
	if err = r.init(); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: r.dist, Pred: r.pred}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph            // The input graph; read-only within Dijkstra.
	options Options                // Configuration options (Source, thresholds, hook).
	dist    []int64                // dist[v] = current best distance from Source.
	pred    []int                  // pred[v] = predecessor on the current best path.
	pq      *pqueue.IndexedMinHeap // Frontier; Contains(v) ⇔ v not yet settled.
}

// init sets dist/pred to their sentinels, seeds every vertex at Infinity and
// lowers the source's key to zero.
func (r *runner) init() error {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.pred[v] = NoPredecessor
		if err := r.pq.InsertInitial(v, Infinity); err != nil {
			return fmt.Errorf("%w: %v", errHeapState, err)
		}
	}

	src := r.options.Source
	r.dist[src] = 0
	if err := r.pq.DecreaseKey(src, 0); err != nil {
		return fmt.Errorf("%w: %v", errHeapState, err)
	}

	return nil
}

// process repeatedly settles the nearest frontier vertex and relaxes its
// outgoing edges until the heap is empty.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		// 1) Extract the nearest unsettled vertex; the loop guard makes
		//    ErrEmptyHeap unreachable here.
		item, err := r.pq.ExtractMin()
		if err != nil {
			return fmt.Errorf("%w: %v", errHeapState, err)
		}

		// 2) Everything left is unreachable.
		if item.Distance == Infinity {
			return nil
		}

		// 3) u is settled.
		r.options.OnSettle(item.Vertex, item.Distance)

		// 4) Relax u's outgoing edges.
		if err = r.relax(item.Vertex); err != nil {
			return err
		}
	}

	return nil
}

// relax improves dist/pred for every frontier neighbor of the settled vertex u.
// Assumes r.dist[u] is final and finite.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	var relaxErr error

	err := r.g.ForEachNeighbor(u, func(e core.Edge) {
		if relaxErr != nil {
			return
		}
		v, w := e.To, e.Weight

		// Impassable edge.
		if w >= r.options.InfEdgeThreshold {
			return
		}
		// Settled vertices are final.
		if !r.pq.Contains(v) {
			return
		}
		// du + w would overflow; cannot improve anything.
		if w > Infinity-du {
			return
		}

		nd := du + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			return
		}

		r.dist[v] = nd
		r.pred[v] = u
		if err := r.pq.DecreaseKey(v, nd); err != nil {
			relaxErr = fmt.Errorf("%w: %v", errHeapState, err)
		}
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	return relaxErr
}
