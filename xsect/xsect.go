package xsect

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/meshmodel"
	"github.com/akmonengine/meshbool/partition"
)

// PartPartIntersect is the result of intersecting part a against part b
// (spec.md §3): the shared verts, edges, and faces in extended index space,
// plus back-references to the parts that produced it.
type PartPartIntersect struct {
	AIndex, BIndex int
	Verts          []int
	Edges          []int
	Faces          []int
}

// Options configures IntersectParts; the zero value is usable.
type Options struct {
	// Log receives a human-readable note whenever an open case (spec.md
	// §9: non-convex face, multi-hit face) is encountered and skipped. Nil
	// is a valid no-op logger.
	Log func(string)
}

func (o Options) log(msg string) {
	if o.Log != nil {
		o.Log(msg)
	}
}

// IntersectParts intersects part a (index aIdx) against part b (index bIdx)
// under eps, staging any new geometry into change and returning the
// resulting record (spec.md §4.5).
func IntersectParts(host meshmodel.IMesh, change *changeset.MeshChange, a *partition.MeshPart, aIdx int, b *partition.MeshPart, bIdx int, eps float64, opts Options) *PartPartIntersect {
	if partition.PlanesCoplanar(a.Plane, b.Plane, eps) {
		return coplanarMerge(a, aIdx, b, bIdx)
	}
	return nonCoplanarIntersect(host, change, a, aIdx, b, bIdx, eps, opts)
}

// coplanarMerge conservatively collects every element of both parts; the
// planar retessellator resolves the actual overlap and dedups coincident
// geometry (spec.md §4.5 "Coplanar" mode).
func coplanarMerge(a *partition.MeshPart, aIdx int, b *partition.MeshPart, bIdx int) *PartPartIntersect {
	rec := &PartPartIntersect{AIndex: aIdx, BIndex: bIdx}
	rec.Verts = append(rec.Verts, a.Verts.Values()...)
	rec.Verts = append(rec.Verts, b.Verts.Values()...)
	rec.Edges = append(rec.Edges, a.Edges.Values()...)
	rec.Edges = append(rec.Edges, b.Edges.Values()...)
	rec.Faces = append(rec.Faces, a.Faces.Values()...)
	rec.Faces = append(rec.Faces, b.Faces.Values()...)
	return rec
}

func nonCoplanarIntersect(host meshmodel.IMesh, change *changeset.MeshChange, a *partition.MeshPart, aIdx int, b *partition.MeshPart, bIdx int, eps float64, opts Options) *PartPartIntersect {
	rec := &PartPartIntersect{AIndex: aIdx, BIndex: bIdx}

	line, ok := PlanePlaneLine(a.Plane, b.Plane, eps)
	if !ok {
		opts.log("xsect: planes expected non-coplanar but produced a near-zero cross product; skipping part pair")
		return rec
	}

	seen := make(map[int]struct{})
	addVert := func(v int) {
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		rec.Verts = append(rec.Verts, v)
	}

	looseVerts(host, change.Add, a, line, eps, addVert)
	looseVerts(host, change.Add, b, line, eps, addVert)

	edgeSeen := make(map[int]struct{})
	addEdge := func(e int) {
		if _, dup := edgeSeen[e]; dup {
			return
		}
		edgeSeen[e] = struct{}{}
		rec.Edges = append(rec.Edges, e)
	}

	looseEdges(host, change, a, line, eps, addVert, addEdge)
	looseEdges(host, change, b, line, eps, addVert, addEdge)

	faceSeen := make(map[int]struct{})
	addFace := func(f int) {
		if _, dup := faceSeen[f]; dup {
			return
		}
		faceSeen[f] = struct{}{}
		rec.Faces = append(rec.Faces, f)
	}

	aIntervals := make(map[int]Interval)
	for _, f := range a.Faces.Values() {
		hits := faceLineHits(host, f, line, b.Plane, eps)
		if iv, ok := faceInterval(hits, eps); ok {
			aIntervals[f] = iv
		} else if len(hits) > 2 {
			opts.log("xsect: face produced more than two line hits (non-convex?); skipping")
		}
	}
	bIntervals := make(map[int]Interval)
	for _, f := range b.Faces.Values() {
		hits := faceLineHits(host, f, line, a.Plane, eps)
		if iv, ok := faceInterval(hits, eps); ok {
			bIntervals[f] = iv
		} else if len(hits) > 2 {
			opts.log("xsect: face produced more than two line hits (non-convex?); skipping")
		}
	}

	for _, af := range a.Faces.Values() {
		aiv, ok := aIntervals[af]
		if !ok {
			continue
		}
		for _, bf := range b.Faces.Values() {
			biv, ok := bIntervals[bf]
			if !ok {
				continue
			}
			overlap, ok := intersectIntervals(aiv, biv, eps)
			if !ok {
				continue
			}
			if overlap.IsPoint(eps) {
				v := snapOrStageVert(host, change, line.At(overlap.Lo), eps)
				addVert(v)
				continue
			}
			v1 := snapOrStageVert(host, change, line.At(overlap.Lo), eps)
			v2 := snapOrStageVert(host, change, line.At(overlap.Hi), eps)
			if v1 == v2 {
				addVert(v1)
				continue
			}
			e, err := findOrCreateEdge(host, change, v1, v2)
			if err != nil {
				opts.log("xsect: degenerate edge while staging an intersection segment; skipping")
				continue
			}
			addVert(v1)
			addVert(v2)
			addEdge(e)
			change.TagIntersection(e)
			addFace(af)
			addFace(bf)
		}
	}

	return rec
}

// looseVerts includes part p's isolated verts within eps of line (spec.md
// §4.5: "For each loose vert of either part, include v if its distance to
// the line is <= eps").
func looseVerts(host meshmodel.IMesh, add *changeset.MeshAdd, p *partition.MeshPart, line Line, eps float64, addVert func(int)) {
	for _, v := range p.Verts.Values() {
		co := vertCo(host, add, v)
		if line.DistTo(co) <= eps {
			addVert(v)
		}
	}
}

// looseEdges classifies each isolated edge of part p against line and
// includes it (or a snapped/staged endpoint) per spec.md §4.5's loose-edge
// rules.
func looseEdges(host meshmodel.IMesh, change *changeset.MeshChange, p *partition.MeshPart, line Line, eps float64, addVert func(int), addEdge func(int)) {
	for _, e := range p.Edges.Values() {
		v1, v2 := edgeVerts(host, change.Add, e)
		p1, p2 := vertCo(host, change.Add, v1), vertCo(host, change.Add, v2)
		on1 := line.DistTo(p1) <= eps
		on2 := line.DistTo(p2) <= eps

		switch {
		case on1 && on2:
			addEdge(e)
		case on1:
			addVert(v1)
		case on2:
			addVert(v2)
		default:
			segPt, linePt, s := ClosestSegmentToLine(p1, p2, line)
			if segPt.Sub(linePt).Len() > eps {
				continue
			}
			if s < -1e-9 || s > 1+1e-9 {
				continue
			}
			v := snapOrStageVert(host, change, segPt, eps)
			addVert(v)
		}
	}
}
