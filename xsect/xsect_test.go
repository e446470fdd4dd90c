package xsect_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/partition"
	"github.com/akmonengine/meshbool/simplemesh"
	"github.com/akmonengine/meshbool/xsect"
)

// crossingQuads builds two perpendicular unit quads that cross along the
// segment from (0,0,0) to (0,1,0): a horizontal quad on z=0 spanning
// x in [-1,1], y in [0,1], and a vertical quad on x=0 spanning y in [0,1],
// z in [-1,1] (spec.md §4.5's non-coplanar clipping case).
func crossingQuads(t *testing.T) (m *simplemesh.Mesh, faceA, faceB int) {
	t.Helper()
	m = simplemesh.NewMesh()

	a0 := m.AddVert(mgl64.Vec3{-1, 0, 0})
	a1 := m.AddVert(mgl64.Vec3{1, 0, 0})
	a2 := m.AddVert(mgl64.Vec3{1, 1, 0})
	a3 := m.AddVert(mgl64.Vec3{-1, 1, 0})
	faceA = m.AddFace(a0, a1, a2, a3)

	b0 := m.AddVert(mgl64.Vec3{0, 0, -1})
	b1 := m.AddVert(mgl64.Vec3{0, 1, -1})
	b2 := m.AddVert(mgl64.Vec3{0, 1, 1})
	b3 := m.AddVert(mgl64.Vec3{0, 0, 1})
	faceB = m.AddFace(b0, b1, b2, b3)

	return m, faceA, faceB
}

func TestIntersectParts_NonCoplanarCrossingQuadsStagesSharedEdge(t *testing.T) {
	m, faceA, faceB := crossingQuads(t)
	const eps = 1e-6

	psA := partition.BuildPartSet(m, eps, []int{faceA})
	psB := partition.BuildPartSet(m, eps, []int{faceB})
	if len(psA.Parts) != 1 || len(psB.Parts) != 1 {
		t.Fatalf("expected one part per quad, got %d and %d", len(psA.Parts), len(psB.Parts))
	}

	change := changeset.NewMeshChange(m, true)
	rec := xsect.IntersectParts(m, change, psA.Parts[0], 0, psB.Parts[0], 1, eps, xsect.Options{})

	if len(rec.Edges) != 1 {
		t.Fatalf("PartPartIntersect.Edges = %v, want exactly one shared edge", rec.Edges)
	}
	edgeIdx := rec.Edges[0]
	if !change.IsIntersectionEdge(edgeIdx) {
		t.Fatalf("edge %d was staged but not tagged as an intersection edge", edgeIdx)
	}

	v1, v2 := edgeVerts(m, change, edgeIdx)
	co1, co2 := vertCo(m, change, v1), vertCo(m, change, v2)
	wantEnds := []mgl64.Vec3{{0, 0, 0}, {0, 1, 0}}
	if !closeToEither(co1, wantEnds, eps) || !closeToEither(co2, wantEnds, eps) {
		t.Fatalf("intersection edge endpoints = (%v, %v), want endpoints at %v", co1, co2, wantEnds)
	}
	if co1 == co2 {
		t.Fatalf("intersection edge has coincident endpoints %v", co1)
	}

	if len(rec.Faces) != 2 {
		t.Fatalf("PartPartIntersect.Faces = %v, want both source faces recorded", rec.Faces)
	}
}

func TestIntersectParts_CoplanarModeUnionsBothPartsConservatively(t *testing.T) {
	m := simplemesh.NewMesh()
	a0 := m.AddVert(mgl64.Vec3{0, 0, 0})
	a1 := m.AddVert(mgl64.Vec3{1, 0, 0})
	a2 := m.AddVert(mgl64.Vec3{1, 1, 0})
	a3 := m.AddVert(mgl64.Vec3{0, 1, 0})
	faceA := m.AddFace(a0, a1, a2, a3)

	b0 := m.AddVert(mgl64.Vec3{2, 0, 0})
	b1 := m.AddVert(mgl64.Vec3{3, 0, 0})
	b2 := m.AddVert(mgl64.Vec3{3, 1, 0})
	b3 := m.AddVert(mgl64.Vec3{2, 1, 0})
	faceB := m.AddFace(b0, b1, b2, b3)

	const eps = 1e-6
	psA := partition.BuildPartSet(m, eps, []int{faceA})
	psB := partition.BuildPartSet(m, eps, []int{faceB})

	change := changeset.NewMeshChange(m, true)
	rec := xsect.IntersectParts(m, change, psA.Parts[0], 0, psB.Parts[0], 1, eps, xsect.Options{})

	if len(rec.Faces) != 2 {
		t.Fatalf("coplanar merge should conservatively collect both faces, got %v", rec.Faces)
	}
	if len(rec.Verts) != 0 {
		t.Fatalf("coplanar merge collects each part's isolated verts, and these parts have none; got %d", len(rec.Verts))
	}
}

func TestIntersectParts_NonOverlappingPerpendicularFacesProduceNoGeometry(t *testing.T) {
	m := simplemesh.NewMesh()
	a0 := m.AddVert(mgl64.Vec3{-1, -1, 0})
	a1 := m.AddVert(mgl64.Vec3{1, -1, 0})
	a2 := m.AddVert(mgl64.Vec3{1, 1, 0})
	a3 := m.AddVert(mgl64.Vec3{-1, 1, 0})
	faceA := m.AddFace(a0, a1, a2, a3)

	// A vertical quad whose x-range never reaches x=0, so it never crosses
	// quad A's interior even though the planes are non-coplanar.
	b0 := m.AddVert(mgl64.Vec3{5, -1, -1})
	b1 := m.AddVert(mgl64.Vec3{5, 1, -1})
	b2 := m.AddVert(mgl64.Vec3{5, 1, 1})
	b3 := m.AddVert(mgl64.Vec3{5, 0, 1})
	faceB := m.AddFace(b0, b1, b2, b3)

	const eps = 1e-6
	psA := partition.BuildPartSet(m, eps, []int{faceA})
	psB := partition.BuildPartSet(m, eps, []int{faceB})

	change := changeset.NewMeshChange(m, true)
	rec := xsect.IntersectParts(m, change, psA.Parts[0], 0, psB.Parts[0], 1, eps, xsect.Options{})

	if len(rec.Edges) != 0 || len(rec.Faces) != 0 {
		t.Fatalf("disjoint quads should not produce any intersection geometry, got edges=%v faces=%v", rec.Edges, rec.Faces)
	}
}

func edgeVerts(host *simplemesh.Mesh, change *changeset.MeshChange, e int) (int, int) {
	if change.Add.IsStagedEdge(e) {
		return change.Add.EdgeVerts(e)
	}
	return host.EdgeVerts(e)
}

func vertCo(host *simplemesh.Mesh, change *changeset.MeshChange, v int) mgl64.Vec3 {
	if change.Add.IsStagedVert(v) {
		return change.Add.VertCo(v)
	}
	return host.VertCo(v)
}

func closeToEither(co mgl64.Vec3, candidates []mgl64.Vec3, eps float64) bool {
	for _, c := range candidates {
		if co.Sub(c).Len() <= eps*4 {
			return true
		}
	}
	return false
}
