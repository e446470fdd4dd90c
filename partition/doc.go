// Package partition groups a mesh's faces into coplanar parts (spec.md
// §4.4): each part is a maximal set of mutually coplanar faces plus any
// isolated verts/edges a caller adds to it, with a padded
// AABB. Building a part set is the first step of each side's pipeline,
// before any intersection work begins.
//
// Grounded on collision.go's BroadPhase (the O(n²) AABB-pairing skeleton,
// generalized here to per-part AABBs) and spatialgrid.go's cell-bucket
// idiom, realized as spatial.PlaneTree rather than a literal grid since the
// lookup key is a 4-vector plane, not a 3-D cell.
package partition

import "github.com/akmonengine/meshbool/meshmodel"

// CanonicalPlane picks one of a plane's two equivalent representations by
// negating every component if the first non-zero value in the sequence
// (d, c, b, a) is positive (spec.md §4.4 step 1).
func CanonicalPlane(p meshmodel.Plane) meshmodel.Plane {
	seq := [4]float64{p.Offset, p.Normal.Z(), p.Normal.Y(), p.Normal.X()}
	negate := false
	for _, v := range seq {
		if v != 0 {
			negate = v > 0
			break
		}
	}
	if !negate {
		return p
	}
	return meshmodel.Plane{
		Normal: p.Normal.Mul(-1),
		Offset: -p.Offset,
	}
}

// PlanesCoplanar tests two unit-normal planes for coplanarity within eps
// (spec.md §4.4 step 2): |n1·n2| >= 1-eps and |d1 - sign(n1·n2)*d2| <= eps.
func PlanesCoplanar(p1, p2 meshmodel.Plane, eps float64) bool {
	dot := p1.Normal.Dot(p2.Normal)
	if absf(dot) < 1-eps {
		return false
	}
	sign := 1.0
	if dot < 0 {
		sign = -1.0
	}
	return absf(p1.Offset-sign*p2.Offset) <= eps
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
