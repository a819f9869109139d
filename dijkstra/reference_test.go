// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// bellmanFord relaxes every edge until nothing changes. It is the independent
// oracle for distances; predecessors are not compared because ties are unspecified.
func bellmanFord(g *core.Graph, src int) []int64 {
	dist := make([]int64, g.VertexCount())
	for v := range dist {
		dist[v] = dijkstra.Infinity
	}
	dist[src] = 0

	edges := g.Edges()
	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			if dist[e.From] == dijkstra.Infinity {
				continue
			}
			if nd := dist[e.From] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				changed = true
			}
		}
	}

	return dist
}
