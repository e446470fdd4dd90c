package spatial

import "github.com/go-gl/mathgl/mgl64"

// AABB is an axis-aligned bounding box, ε-padded per spec.md §4.4 step 3.
// Ported from the teacher's actor.AABB (ContainsPoint/Overlaps) and
// generalized with Union and an inflate step, since parts need both.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint reports whether point lies within the box, inclusive.
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps reports whether a and other intersect on all three axes.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// EmptyAABB returns a box with no extent, suitable as the zero value to fold
// points/boxes into via ExpandPoint/Union.
func EmptyAABB() AABB {
	const inf = 1e300
	return AABB{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// ExpandPoint grows a (in place semantics via the returned value) to include
// point, used while building a part's AABB by iterating its vertices
// (spec.md §4.4 step 3).
func (a AABB) ExpandPoint(point mgl64.Vec3) AABB {
	return AABB{
		Min: mgl64.Vec3{min3(a.Min.X(), point.X()), min3(a.Min.Y(), point.Y()), min3(a.Min.Z(), point.Z())},
		Max: mgl64.Vec3{max3(a.Max.X(), point.X()), max3(a.Max.Y(), point.Y()), max3(a.Max.Z(), point.Z())},
	}
}

// Union returns the smallest AABB containing both a and other, used to
// compute a part set's union AABB from its parts (spec.md §4.4 step 3).
func (a AABB) Union(other AABB) AABB {
	return AABB{
		Min: mgl64.Vec3{min3(a.Min.X(), other.Min.X()), min3(a.Min.Y(), other.Min.Y()), min3(a.Min.Z(), other.Min.Z())},
		Max: mgl64.Vec3{max3(a.Max.X(), other.Max.X()), max3(a.Max.Y(), other.Max.Y()), max3(a.Max.Z(), other.Max.Z())},
	}
}

// Inflate pads the box by eps on every side, the ε-padding spec.md §4.4
// step 3 requires of every part AABB.
func (a AABB) Inflate(eps float64) AABB {
	pad := mgl64.Vec3{eps, eps, eps}
	return AABB{Min: a.Min.Sub(pad), Max: a.Max.Add(pad)}
}

func min3(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max3(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
