// SPDX-License-Identifier: MIT
// Package: graphcanon
//
// errors.go — sentinel errors and the precondition-violation panic type.
package graphcanon

import "errors"

// Sentinel errors for resource exhaustion and ordinary early-return
// conditions. Precondition violations are programmer errors and are
// reported as panics carrying a *ViolationError instead (see
// ViolationError below); they are never one of these sentinels.
var (
	// ErrEmptyGraph indicates canonicalization was requested for a graph
	// with zero vertices; that is a trivial, not an error, case, but
	// canon.Canonicalize surfaces it explicitly so callers don't have to
	// special-case a nil/zero-length labeling.
	ErrEmptyGraph = errors.New("graphcanon: graph has no vertices")

	// ErrAllocation indicates a buffer growth (search-path buffers,
	// union-find parent array, child-pruned bit-vector) failed. On stock
	// Go runtimes this only happens under genuine memory exhaustion.
	ErrAllocation = errors.New("graphcanon: allocation failed")
)

// ViolationError reports a precondition violation by a collaborator: an
// automorphism that does not witness the claimed orbit, a group adapter
// returning a generator outside the stabilizer it was asked about, or an
// inverse-partition lookup landing outside the expected cell. These are
// fatal assertion failures with no recovery, so code that detects one
// calls panic(&ViolationError{...}) rather than returning an error;
// canon.Canonicalize recovers at the API boundary and converts it back
// into a normal error for library callers.
type ViolationError struct {
	// Component names the collaborator contract that was violated, e.g.
	// "pruner.AutomorphismLeaf" or "group.Adapter.Update".
	Component string
	// Reason describes what was expected and what was observed.
	Reason string
}

func (e *ViolationError) Error() string {
	return "graphcanon: precondition violation in " + e.Component + ": " + e.Reason
}

// Violate panics with a *ViolationError built from component and reason.
// Centralizing the panic call keeps every precondition-violation site
// textually uniform and greppable.
func Violate(component, reason string) {
	panic(&ViolationError{Component: component, Reason: reason})
}
