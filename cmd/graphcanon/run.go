package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphcanon/canon"
	"github.com/katalvlaran/graphcanon/perm"
)

// runCanonicalize is the body of the root command's RunE: open the input,
// parse it, canonicalize it, and print the result to cmd's output writer.
// Log lines go to os.Stderr.
func runCanonicalize(cmd *cobra.Command, args []string, verbose bool) error {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	g, err := parseEdgeList(in)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	logger.Debug("parsed graph", "vertices", g.NumVertices(), "edges", g.NumEdges())

	lab, gens, err := canon.Canonicalize(g)
	if err != nil {
		return fmt.Errorf("canonicalizing: %w", err)
	}
	logger.Info("canonicalization complete", "generators", len(gens))
	if len(gens) == 0 {
		logger.Debug("automorphism group is trivial", "identity", perm.Identity(g.NumVertices()).Image())
	}
	for i, gen := range gens {
		logger.Debug("automorphism generator", "index", i, "image", gen.Image())
	}

	out := cmd.OutOrStdout()
	for pos, v := range lab {
		fmt.Fprintf(out, "%d\t%s\n", pos, g.VertexID(v))
	}
	return nil
}
