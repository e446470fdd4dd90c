// Package changeset is the staged, additive edit the boolean engine commits
// to the host mesh exactly once per call: new verts/edges/faces with
// provenance ("example") links, deletion bitmaps, a transitive vertex-merge
// map, a set of edges tagged "intersection," and a set of faces to flip.
//
// Grounded on epa/manifold.go's ManifoldBuilder: a single struct owning every
// growing working buffer for one call, with counters instead of per-element
// allocation, and sync.Pool-style reuse replaced here by a single bump arena
// per call (see arena.Arena). The merge map reuses indexset.IntIntMap and
// indexset.ResolveMerge directly rather than re-deriving the chase-to-fixed-
// point logic.
package changeset

import (
	"errors"

	"github.com/akmonengine/meshbool/meshmodel"
)

// Sentinel errors for add-buffer and merge-map invariant violations.
var (
	// ErrDegenerateEdge is returned by AddEdge when v1 == v2.
	ErrDegenerateEdge = errors.New("changeset: edge endpoints must be distinct")
	// ErrFaceArityMismatch is returned by AddFace when the vert and edge
	// slices it is given have different lengths.
	ErrFaceArityMismatch = errors.New("changeset: face vert/edge count mismatch")
	// ErrShortFace is returned by AddFace when fewer than 3 verts are given.
	ErrShortFace = errors.New("changeset: face needs at least 3 verts")
	// ErrMergeNotForward is returned by AddMerge when target is not
	// strictly less than src, violating spec.md §4.3's required total
	// order on merge-map edges.
	ErrMergeNotForward = errors.New("changeset: merge target must be less than source")
)

// NotFound mirrors meshmodel.NotFound for changeset's own lookups.
const NotFound = meshmodel.NotFound
