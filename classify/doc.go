// Package classify implements spec.md §4.8: group faces into edge-connected
// components that share a consistent side pattern, compute each group's
// generalized winding number against the opposite operand, and decide
// whether to remove or flip the group per the requested boolean operation.
//
// Grounded on epa/polytope.go's calculateCentroid (summing a contribution
// per face of a polytope) generalized from a linear sum of centroids to a
// solid-angle sum, and on gjk's epsilon-guarded Dot/Cross idiom for the
// Van Oosterom-Strackee solid angle formula.
package classify

import "github.com/akmonengine/meshbool/meshmodel"

// Host is the read surface classify needs: the mesh's topology/geometry
// plus the per-face side flag the change applier stashed during commit.
// Any meshmodel.HostMesh satisfies this.
type Host interface {
	meshmodel.IMesh
	SideFlag(f int) meshmodel.SideMask
}

// NotFound mirrors meshmodel.NotFound for this package's own lookups.
const NotFound = meshmodel.NotFound
