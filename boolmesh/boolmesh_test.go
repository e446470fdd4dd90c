package boolmesh_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/boolmesh"
	"github.com/akmonengine/meshbool/meshmodel"
	"github.com/akmonengine/meshbool/simplemesh"
)

// coincidentQuads builds two coplanar unit quads on z=0 sharing no
// vertices: face 0 on side A, face 1 on side B. sameWinding controls
// whether face 1's vertex loop runs the same direction as face 0's
// (spec.md §8's "two coincident unit quads, same winding" scenario) or
// reversed (the opposite-winding variant of the same scenario).
func coincidentQuads(sameWinding bool) (*simplemesh.Mesh, func(int) meshmodel.Side) {
	m := simplemesh.NewMesh()

	a0 := m.AddVert(mgl64.Vec3{0, 0, 0})
	a1 := m.AddVert(mgl64.Vec3{1, 0, 0})
	a2 := m.AddVert(mgl64.Vec3{1, 1, 0})
	a3 := m.AddVert(mgl64.Vec3{0, 1, 0})
	faceA := m.AddFace(a0, a1, a2, a3)

	b0 := m.AddVert(mgl64.Vec3{0, 0, 0})
	b1 := m.AddVert(mgl64.Vec3{1, 0, 0})
	b2 := m.AddVert(mgl64.Vec3{1, 1, 0})
	b3 := m.AddVert(mgl64.Vec3{0, 1, 0})

	var faceB int
	if sameWinding {
		faceB = m.AddFace(b0, b1, b2, b3)
	} else {
		faceB = m.AddFace(b0, b3, b2, b1)
	}

	side := func(f int) meshmodel.Side {
		switch f {
		case faceA:
			return meshmodel.SideA
		case faceB:
			return meshmodel.SideB
		default:
			return meshmodel.SideIgnore
		}
	}
	return m, side
}

func TestBoolean_CoincidentQuadsSameWindingUnionMerges(t *testing.T) {
	m, side := coincidentQuads(true)

	changed, err := boolmesh.Boolean(m, side, boolmesh.WithOp(meshmodel.OpUnion))
	if err != nil {
		t.Fatalf("Boolean: %v", err)
	}
	if !changed {
		t.Fatalf("expected Boolean to report a change")
	}
	if got := m.TotFace(); got != 1 {
		t.Fatalf("TotFace() = %d, want 1", got)
	}
	mask := m.SideFlag(0)
	if !mask.BothSides() {
		t.Errorf("merged face side mask %v does not have both sides set", mask)
	}
	if mask.OppNormals() {
		t.Errorf("merged face side mask %v should not have opposite-normals set for same-winding quads", mask)
	}
}

func TestBoolean_CoincidentQuadsOppositeWindingUnionRemoves(t *testing.T) {
	m, side := coincidentQuads(false)

	changed, err := boolmesh.Boolean(m, side, boolmesh.WithOp(meshmodel.OpUnion))
	if err != nil {
		t.Fatalf("Boolean: %v", err)
	}
	if !changed {
		t.Fatalf("expected Boolean to report a change")
	}
	if got := m.TotFace(); got != 0 {
		t.Fatalf("TotFace() = %d, want 0 (opposite-winding coincident quads should cancel under union)", got)
	}
}

func TestBoolean_CoincidentQuadsOppositeWindingDifferenceFlipsSideA(t *testing.T) {
	m, side := coincidentQuads(false)

	changed, err := boolmesh.Boolean(m, side, boolmesh.WithOp(meshmodel.OpDifference))
	if err != nil {
		t.Fatalf("Boolean: %v", err)
	}
	if !changed {
		t.Fatalf("expected Boolean to report a change")
	}
	if got := m.TotFace(); got != 0 {
		t.Fatalf("TotFace() = %d, want 0 (coincident opposite-facing quads cancel under difference too)", got)
	}
}

// sharedEdgeTetrahedra builds two tetrahedra that touch only along a
// single shared edge, never overlapping in volume or sharing a face
// (spec.md §8's "two tetrahedra sharing exactly one edge" scenario): their
// y=0 faces are coplanar but do not overlap, and no face of one crosses a
// face of the other, so every operator should be a no-op on the combined mesh.
func sharedEdgeTetrahedra() (*simplemesh.Mesh, func(int) meshmodel.Side) {
	m := simplemesh.NewMesh()

	// Tetrahedron A occupies x in [-1,0]; tetrahedron B occupies x in
	// [0,1]. They share only the edge between the two apex-adjacent verts
	// placed at x=0.
	e0 := m.AddVert(mgl64.Vec3{0, 0, 0})
	e1 := m.AddVert(mgl64.Vec3{0, 0, 1})

	aApex := m.AddVert(mgl64.Vec3{-1, 0, 0.3})
	aSide := m.AddVert(mgl64.Vec3{-1, 1, 0.3})
	facesA := []int{
		m.AddFace(e0, e1, aApex),
		m.AddFace(e1, e0, aSide),
		m.AddFace(e0, aSide, aApex),
		m.AddFace(aApex, aSide, e1),
	}

	bApex := m.AddVert(mgl64.Vec3{1, 0, 0.3})
	bSide := m.AddVert(mgl64.Vec3{1, 1, 0.3})
	facesB := []int{
		m.AddFace(e0, e1, bApex),
		m.AddFace(e1, e0, bSide),
		m.AddFace(e0, bSide, bApex),
		m.AddFace(bApex, bSide, e1),
	}

	inA := make(map[int]bool, len(facesA))
	for _, f := range facesA {
		inA[f] = true
	}
	inB := make(map[int]bool, len(facesB))
	for _, f := range facesB {
		inB[f] = true
	}
	side := func(f int) meshmodel.Side {
		switch {
		case inA[f]:
			return meshmodel.SideA
		case inB[f]:
			return meshmodel.SideB
		default:
			return meshmodel.SideIgnore
		}
	}
	return m, side
}

func TestBoolean_SharedEdgeOnlyIsIdentityForEveryOp(t *testing.T) {
	for _, op := range []meshmodel.Op{meshmodel.OpIntersection, meshmodel.OpUnion, meshmodel.OpDifference} {
		t.Run(op.String(), func(t *testing.T) {
			m, side := sharedEdgeTetrahedra()
			wantFaces, wantEdges, wantVerts := m.TotFace(), m.TotEdge(), m.TotVert()

			if _, err := boolmesh.Boolean(m, side, boolmesh.WithOp(op)); err != nil {
				t.Fatalf("Boolean: %v", err)
			}
			if got := m.TotFace(); got != wantFaces {
				t.Errorf("TotFace() = %d, want %d (no volumetric overlap, op should be identity)", got, wantFaces)
			}
			if got := m.TotEdge(); got != wantEdges {
				t.Errorf("TotEdge() = %d, want %d", got, wantEdges)
			}
			if got := m.TotVert(); got != wantVerts {
				t.Errorf("TotVert() = %d, want %d", got, wantVerts)
			}
		})
	}
}

func TestBoolean_TracerRecordsPhases(t *testing.T) {
	m, side := coincidentQuads(true)
	var tr boolmesh.SliceTracer

	if _, err := boolmesh.Boolean(m, side, boolmesh.WithOp(meshmodel.OpUnion), boolmesh.WithTracer(&tr)); err != nil {
		t.Fatalf("Boolean: %v", err)
	}
	if len(tr.Messages) == 0 {
		t.Fatalf("expected the tracer to collect at least one message")
	}
}
