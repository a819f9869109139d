// Package sssp computes single-source shortest paths on weighted directed
// graphs with Dijkstra's algorithm driven by an indexable min-heap.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      — directed weighted Graph over integer vertex ids
//	pqueue/    — indexed binary min-heap with O(log n) decrease-key
//	dijkstra/  — the shortest-path driver, options and Result table
//	bfs/       — hop-count breadth-first reachability
//	builder/   — deterministic and seeded random graph fixtures
//	cmd/sssp/  — command-line front end reading "V E S" + edge triples
//
// Quick example:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(0, 2, 1)
//	_ = g.AddEdge(2, 1, 1)
//	res, _ := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	// res.Dist == [0 2 1], res.Pred == [-1 2 0]
//
//	go install github.com/katalvlaran/sssp/cmd/sssp@latest
package sssp
