// Package xsect intersects one part from side A against one part from side
// B (spec.md §4.5): conservative whole-part merge when the two parts are
// coplanar, or line-of-intersection clipping against the plane-plane line
// when they are not. Both modes return a PartPartIntersect describing the
// shared verts/edges/faces the planar retessellator will later consume.
//
// Grounded on gjk/gjk.go's iterative feature reduction (classify points and
// edges against a reference direction, keep only the relevant subset — the
// same shape of computation as classifying face vertices/edges against the
// cutting line here) and actor/shape.go's Plane/Support epsilon tests,
// generalized from a single support-direction query to the segment-plane
// and line-line routines spec.md §6 requires of the geometry layer.
package xsect

import "errors"

// ErrParallelPlanes names the case where two non-coplanar parts' planes turn
// out to be numerically parallel within eps — geometrically impossible for
// genuinely non-coplanar planes, but guarded against malformed callers.
// No function in this package returns it: PlanePlaneLine reports that case
// through its ok result instead.
var ErrParallelPlanes = errors.New("xsect: planes are parallel but not coplanar")
