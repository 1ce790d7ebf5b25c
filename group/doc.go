// Package group defines the permutation-group adapter contract the pruner
// calls into (AddAutomorphism, NeedUpdate, Update), plus a concrete
// accumulator, Chain, that a complete canonicalization run needs in order
// to exercise the pruner end to end.
//
// A real stabilizer-chain (Schreier-Sims) tower is treated as an external
// collaborator, out of scope for the core pruning engine. Chain is a
// deliberately simpler stand-in: a flat list of discovered generators,
// filtered per node down to the subset that fixes that node's
// individualization prefix, rather than a Schreier-Sims tower. See
// DESIGN.md for why this substitution is sound for the properties and
// scenarios exercised by this repository's tests, and where it would fall
// short of a production Schreier-Sims implementation (amortized per-node
// cost).
package group
