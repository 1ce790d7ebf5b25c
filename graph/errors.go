// SPDX-License-Identifier: MIT
// Package: graphcanon/graph
//
// errors.go — sentinel errors for the graph package.
package graph

import "errors"

var (
	// ErrDuplicateVertex is returned by AddVertex for an id already present.
	ErrDuplicateVertex = errors.New("graph: vertex already exists")

	// ErrUnknownVertex is returned by AddEdge for an id not yet added.
	ErrUnknownVertex = errors.New("graph: unknown vertex")
)
