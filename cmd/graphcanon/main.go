// Command graphcanon reads an edge-list graph and prints its canonical
// vertex order, one "position\tvertexID" line per vertex, to stdout.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "graphcanon [file]",
		Short:        "Compute a canonical labeling and automorphism generators for a graph",
		Long:         "graphcanon reads a whitespace-separated edge list (one edge per line, blank lines and # comments ignored) from a file argument or stdin, canonicalizes it, and prints the canonical vertex order and the number of automorphism generators discovered.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanonicalize(cmd, args, verbose)
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return root
}
