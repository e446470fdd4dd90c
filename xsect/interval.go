package xsect

import (
	"sort"

	"github.com/akmonengine/meshbool/meshmodel"
)

// Interval is one parameter-range hit of a face against the cutting line
// (spec.md §4.5 step 3), collapsing to a point when Hi-Lo <= eps.
type Interval struct {
	Lo, Hi float64
}

// faceLineHits computes the ordered list of "hit" parameters where face f's
// boundary crosses the plane-plane line (spec.md §4.5 steps 1-2): vertices
// within eps of the line contribute directly; edges whose endpoints are not
// both on the line are tested against the other part's plane, and interior
// (non-endpoint) crossings contribute a hit.
func faceLineHits(host meshmodel.IMesh, f int, line Line, otherPlane meshmodel.Plane, eps float64) []float64 {
	n := host.FaceLen(f)
	onLine := make([]bool, n)
	hits := make([]float64, 0, 2)

	for i := 0; i < n; i++ {
		co := host.VertCo(host.FaceVert(f, i))
		if line.DistTo(co) <= eps {
			onLine[i] = true
			hits = append(hits, line.Param(co))
		}
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if onLine[i] && onLine[j] {
			continue
		}
		p1 := host.VertCo(host.FaceVert(f, i))
		p2 := host.VertCo(host.FaceVert(f, j))
		if pt, _, ok := SegmentPlaneHit(p1, p2, otherPlane, eps); ok {
			hits = append(hits, line.Param(pt))
		}
	}

	sort.Float64s(hits)
	return hits
}

// faceInterval reduces a face's hit parameters to spec.md §4.5 step 3's
// single interval. More than two hits means the face is non-convex (an open
// question per spec.md §9, kept out of scope here): the caller is told via
// ok=false and should skip the face pair, matching §7's documented
// open-case behavior.
func faceInterval(hits []float64, eps float64) (iv Interval, ok bool) {
	switch {
	case len(hits) == 0:
		return Interval{}, false
	case len(hits) == 1:
		return Interval{Lo: hits[0], Hi: hits[0]}, true
	case len(hits) == 2:
		return Interval{Lo: hits[0], Hi: hits[1]}, true
	default:
		return Interval{}, false
	}
}

// intersectIntervals returns the overlap of two intervals, or ok=false if
// they are disjoint by more than eps.
func intersectIntervals(a, b Interval, eps float64) (Interval, bool) {
	lo := a.Lo
	if b.Lo > lo {
		lo = b.Lo
	}
	hi := a.Hi
	if b.Hi < hi {
		hi = b.Hi
	}
	if lo-hi > eps {
		return Interval{}, false
	}
	if hi < lo {
		hi = lo
	}
	return Interval{Lo: lo, Hi: hi}, true
}

// IsPoint reports whether the interval collapses to a single point within
// eps (spec.md §4.5: "degenerates to a point within eps").
func (iv Interval) IsPoint(eps float64) bool { return iv.Hi-iv.Lo <= eps }
