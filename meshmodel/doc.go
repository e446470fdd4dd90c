// Package meshmodel defines the read-only view the boolean engine consumes
// of an opaque host mesh (spec.md §4.2, §6) and the small value types
// (plane, side, extended index) every other package in this module shares.
//
// IMesh is modeled the way the teacher models a collision shape:
// actor.ShapeInterface is a small capability vtable that gjk and epa
// consume without ever knowing whether the concrete shape is a Box, a
// Sphere, or a Plane. IMesh plays the same role here (spec.md §9: "abstract
// interface over two host mesh kinds" — model it as a capability trait").
// The second host-mesh kind the source carries (BMesh vs. Mesh) is out of
// scope per spec.md §1; one concrete implementation, simplemesh, is
// provided for tests and examples.
package meshmodel

import "errors"

// Sentinel errors for mesh-abstraction lookups.
var (
	// ErrNotFound indicates a bounds-checked lookup (FindEdge, an
	// out-of-range face/vertex/edge) found nothing (spec.md §4.1 error
	// semantics, reused here for IMesh lookups of the same shape).
	ErrNotFound = errors.New("meshmodel: not found")
)

// NotFound is the sentinel integer returned by lookups that find no match,
// matching indexset.NotFound so extended indices compare consistently
// across packages.
const NotFound = -1
