package xsect

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/meshmodel"
)

// Line is a 3-D line: a point plus a unit direction.
type Line struct {
	Point mgl64.Vec3
	Dir   mgl64.Vec3
}

// Param returns the signed parameter of p's projection onto the line.
func (l Line) Param(p mgl64.Vec3) float64 {
	return p.Sub(l.Point).Dot(l.Dir)
}

// At returns the line point at parameter t.
func (l Line) At(t float64) mgl64.Vec3 {
	return l.Point.Add(l.Dir.Mul(t))
}

// DistTo returns the perpendicular distance from p to the line.
func (l Line) DistTo(p mgl64.Vec3) float64 {
	t := l.Param(p)
	return p.Sub(l.At(t)).Len()
}

// PlanePlaneLine computes the line of intersection of two non-coplanar
// planes (spec.md §4.5: "compute the plane-plane line via cross-product of
// the two normals plus any point satisfying both plane equations"). ok is
// false if the planes are numerically parallel (should not happen for
// genuinely non-coplanar inputs; guarded defensively).
func PlanePlaneLine(a, b meshmodel.Plane, eps float64) (Line, bool) {
	dir := a.Normal.Cross(b.Normal)
	dirLen := dir.Len()
	if dirLen < eps {
		return Line{}, false
	}
	dir = dir.Mul(1 / dirLen)

	// Minimum-norm point satisfying both n·x = c1, n·x = c2 (c = -offset),
	// solved as p0 = λ1*n1 + λ2*n2 via the 2x2 normal-equations system.
	c1 := -a.Offset
	c2 := -b.Offset
	k := a.Normal.Dot(b.Normal)
	denom := 1 - k*k
	lambda1 := (c1 - k*c2) / denom
	lambda2 := (c2 - k*c1) / denom
	point := a.Normal.Mul(lambda1).Add(b.Normal.Mul(lambda2))

	return Line{Point: point, Dir: dir}, true
}

// ClosestSegmentToLine returns the closest point on segment p1-p2 to line l,
// the corresponding closest point on l, and the segment parameter s in
// [0,1] at which it occurs (spec.md §4.5's loose-edge "closest points
// between edge segment and line").
func ClosestSegmentToLine(p1, p2 mgl64.Vec3, l Line) (segPt, linePt mgl64.Vec3, s float64) {
	u := p2.Sub(p1)
	a := u.Dot(u)
	if a < 1e-18 {
		// Degenerate (zero-length) segment: both endpoints coincide.
		s = 0
		segPt = p1
		t := l.Param(segPt)
		linePt = l.At(t)
		return
	}
	b := u.Dot(l.Dir)
	w := p1.Sub(l.Point)
	d := w.Dot(u)
	e := w.Dot(l.Dir)

	denom := a - b*b
	if denom < 1e-18 {
		// Segment parallel to the line: every point is equidistant: pick
		// the start point.
		s = 0
	} else {
		s = (e*b - d) / denom
		if s < 0 {
			s = 0
		} else if s > 1 {
			s = 1
		}
	}

	segPt = p1.Add(u.Mul(s))
	t := l.Param(segPt)
	linePt = l.At(t)
	return
}

// SegmentPlaneHit returns the point where segment p1-p2 crosses plane
// within eps, and its parameter t in (0,1) strictly interior to the
// segment, or ok=false if the segment does not cross the plane's interior
// (spec.md §4.5 step 2's "canonical segment-plane routine").
func SegmentPlaneHit(p1, p2 mgl64.Vec3, plane meshmodel.Plane, eps float64) (pt mgl64.Vec3, t float64, ok bool) {
	d1 := plane.SignedDistance(p1)
	d2 := plane.SignedDistance(p2)
	if absf(d1) <= eps && absf(d2) <= eps {
		return mgl64.Vec3{}, 0, false
	}
	if (d1 > eps && d2 > eps) || (d1 < -eps && d2 < -eps) {
		return mgl64.Vec3{}, 0, false
	}
	denom := d1 - d2
	if absf(denom) < 1e-15 {
		return mgl64.Vec3{}, 0, false
	}
	t = d1 / denom
	const interiorEps = 1e-9
	if t <= interiorEps || t >= 1-interiorEps {
		return mgl64.Vec3{}, 0, false
	}
	pt = p1.Add(p2.Sub(p1).Mul(t))
	return pt, t, true
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
