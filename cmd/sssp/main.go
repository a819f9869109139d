// SPDX-License-Identifier: MIT
//
// Command sssp reads a graph description, runs Dijkstra from the declared
// source and prints one "vertex<TAB>dist<TAB>pred" row per vertex.
//
// Usage:
//
//	sssp [-in FILE] [-out FILE] [-progress] [-log-level LEVEL] [-int32-sentinel]
//	sssp -random N [-p P] [-seed S] [-max-weight W] [-source V]
//
// Input format: "V E S" followed by E triples "src dest weight".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
	"github.com/katalvlaran/sssp/internal/tableio"
)

var (
	inFile        = flag.String("in", "", "input file (default stdin)")
	outFile       = flag.String("out", "", "output file (default stdout)")
	showProgress  = flag.Bool("progress", false, "show a progress bar while reading edges")
	logLevel      = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	int32Sentinel = flag.Bool("int32-sentinel", false, "print 2147483647 instead of the int64 maximum for unreachable vertices")

	randomN   = flag.Int("random", 0, "generate a random graph with N vertices instead of reading input")
	randomP   = flag.Float64("p", 0.1, "edge probability for -random")
	seed      = flag.Uint64("seed", 1, "RNG seed for -random")
	maxWeight = flag.Int64("max-weight", 100, "largest edge weight for -random")
	source    = flag.Int("source", 0, "source vertex for -random")
)

func main() {
	flag.Parse()

	lvl, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("bad -log-level: %v", err)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)

	if err = run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	g, src, err := loadGraph()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"source":   src,
	}).Info("graph loaded")

	settled := 0
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithOnSettle(func(v int, d int64) {
		settled++
		log.WithFields(log.Fields{"vertex": v, "dist": d}).Debug("settled")
	}))
	if err != nil {
		return fmt.Errorf("shortest paths: %w", err)
	}
	log.WithField("reachable", settled).Info("shortest paths computed")

	out := io.Writer(os.Stdout)
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	var wopts []tableio.WriteOption
	if *int32Sentinel {
		wopts = append(wopts, tableio.WithInfinity(tableio.Int32Infinity))
	}

	return tableio.WriteTable(out, res, wopts...)
}

// loadGraph returns either a generated fixture or the parsed input, plus the source vertex.
func loadGraph() (*core.Graph, int, error) {
	if *randomN > 0 {
		log.WithFields(log.Fields{"n": *randomN, "p": *randomP, "seed": *seed}).Info("generating random graph")
		g, err := builder.BuildGraph(*randomN,
			[]builder.BuilderOption{
				builder.WithSeed(*seed),
				builder.WithWeightFn(builder.UniformWeightFn(0, *maxWeight)),
			},
			builder.RandomSparse(*randomP),
		)
		if err != nil {
			return nil, 0, fmt.Errorf("generate: %w", err)
		}

		return g, *source, nil
	}

	in := io.Reader(os.Stdin)
	if *inFile != "" {
		f, err := os.Open(*inFile)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		in = f
	}

	var ropts []tableio.ReadOption
	if *showProgress {
		var bar *progressbar.ProgressBar
		ropts = append(ropts, tableio.WithOnEdge(func(done, total int) {
			if bar == nil {
				bar = newBar(total)
			}
			_ = bar.Add(1)
			if done == total {
				_ = bar.Finish()
			}
		}))
	}

	parsed, err := tableio.ReadInput(in, ropts...)
	if err != nil {
		return nil, 0, fmt.Errorf("read input: %w", err)
	}

	return parsed.Graph, parsed.Header.Source, nil
}

func newBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]reading edges...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
