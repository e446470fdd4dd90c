// Package boolmesh is the entry point spec.md §6 describes: given a host
// mesh, a per-face side predicate, and a boolean operation, it computes the
// intersection curve between the two operand surfaces (or a mesh against
// itself), retessellates the affected faces, and removes or flips the
// resulting face groups per the requested operation.
//
// Grounded on world.go's World.Step as the orchestration skeleton (a fixed
// sequence of phases run once per call, each phase a sequential pass), and
// trigger.go's Events accumulate/flush shape for the optional Tracer that
// replaces the source's process-wide PERFDEBUG/BOOLDEBUG globals (spec.md
// §9).
package boolmesh

import "github.com/akmonengine/meshbool/meshmodel"

// NotFound mirrors meshmodel.NotFound for this package's own lookups.
const NotFound = meshmodel.NotFound

// defaultEps is used when no WithEps option is given. It matches the
// fallback retess and Earclip use for a non-positive eps, so a caller that
// only sets an Op still gets a consistent epsilon throughout the call.
const defaultEps = 1e-9
