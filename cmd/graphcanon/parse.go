package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphcanon/graph"
)

// parseEdgeList reads a whitespace-separated edge list, one edge per line
// ("vertexA vertexB"), adding vertices in first-seen order. Blank lines
// and lines starting with '#' are ignored.
func parseEdgeList(r io.Reader) (*graph.Graph, error) {
	g := graph.New()
	seen := map[string]bool{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected exactly two vertex ids, got %d", lineNo, len(fields))
		}
		a, b := fields[0], fields[1]
		for _, id := range [2]string{a, b} {
			if !seen[id] {
				if err := g.AddVertex(id); err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				seen[id] = true
			}
		}
		if err := g.AddEdge(a, b, 0); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
