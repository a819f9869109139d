// SPDX-License-Identifier: MIT
// Package: sssp/internal/tableio
//
// writer.go — result table rendering.

package tableio

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/sssp/dijkstra"
)

// Int32Infinity is the unreachable marker printed by tools that store
// distances in 32-bit ints.
const Int32Infinity int64 = math.MaxInt32

// WriteOption customizes WriteTable.
type WriteOption func(*writeConfig)

type writeConfig struct {
	infinity int64
}

// WithInfinity sets the value printed as dist for unreachable vertices.
// The default is dijkstra.Infinity.
func WithInfinity(v int64) WriteOption {
	return func(c *writeConfig) {
		c.infinity = v
	}
}

// WriteTable writes one "i\tdist\tpred" line per vertex of res to w.
func WriteTable(w io.Writer, res *dijkstra.Result, opts ...WriteOption) error {
	cfg := writeConfig{infinity: dijkstra.Infinity}
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	for _, row := range res.Rows() {
		d := row.Dist
		if d == dijkstra.Infinity {
			d = cfg.infinity
		}
		if _, err := fmt.Fprintf(bw, "%d\t%d\t%d\n", row.Vertex, d, row.Pred); err != nil {
			return fmt.Errorf("tableio: write row %d: %w", row.Vertex, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("tableio: flush: %w", err)
	}

	return nil
}
