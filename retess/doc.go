// Package retess is the planar retessellator, spec.md §4.6: for one part
// plus its accumulated cross-part intersection records, project to 2-D,
// invoke a constrained Delaunay triangulation behind the CDT interface, and
// map the result back into a changeset.MeshChange, returning a Result that
// lists the replacement faces.
//
// Grounded on epa/manifold.go's getTangentBasis for the plane-to-2D
// projection frame (generalized from contact-manifold clipping to a part's
// full vertex set) and epa/manifold.go's ManifoldBuilder for the
// gather-then-map shape (accumulate into indexed sets, then walk the result
// once to stage final geometry).
package retess

import "github.com/akmonengine/meshbool/meshmodel"

// NotFound mirrors meshmodel.NotFound for this package's own lookups.
const NotFound = meshmodel.NotFound
