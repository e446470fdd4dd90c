package retess_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/meshmodel"
	"github.com/akmonengine/meshbool/retess"
	"github.com/akmonengine/meshbool/simplemesh"
)

func TestRetessellate_SingleQuadNoConstraintsReproducesArea(t *testing.T) {
	m := simplemesh.NewMesh()
	v0 := m.AddVert(mgl64.Vec3{0, 0, 0})
	v1 := m.AddVert(mgl64.Vec3{1, 0, 0})
	v2 := m.AddVert(mgl64.Vec3{1, 1, 0})
	v3 := m.AddVert(mgl64.Vec3{0, 1, 0})
	face := m.AddFace(v0, v1, v2, v3)

	const eps = 1e-6
	u := retess.Unit{
		Plane: m.FacePlane(face),
		Faces: []int{face},
	}

	change := changeset.NewMeshChange(m, true)
	result, err := retess.Retessellate(m, change, u, eps, retess.Earclip{}, retess.Options{})
	if err != nil {
		t.Fatalf("Retessellate: %v", err)
	}
	if len(result.NewFaces) == 0 {
		t.Fatalf("expected at least one replacement face")
	}
	if !change.Delete.IsFaceDeleted(face) {
		t.Fatalf("original face %d should be marked for deletion", face)
	}

	area := 0.0
	for _, f := range result.NewFaces {
		verts := change.Add.FaceVerts(f)
		area += triangleFanArea(m, change, verts)
	}
	if diff := area - 1.0; diff < -eps*10 || diff > eps*10 {
		t.Fatalf("replacement faces cover area %v, want 1.0 (the original unit quad)", area)
	}
}

func TestRetessellate_ConstraintEdgeSplitsQuadIntoTwoFaces(t *testing.T) {
	m := simplemesh.NewMesh()
	v0 := m.AddVert(mgl64.Vec3{0, 0, 0})
	v1 := m.AddVert(mgl64.Vec3{1, 0, 0})
	v2 := m.AddVert(mgl64.Vec3{1, 1, 0})
	v3 := m.AddVert(mgl64.Vec3{0, 1, 0})
	face := m.AddFace(v0, v1, v2, v3)

	const eps = 1e-6
	change := changeset.NewMeshChange(m, true)
	// Stage an intersection edge along the quad's diagonal, as xsect would
	// before handing the part off to the retessellator (spec.md §4.5's
	// output feeding §4.6's input).
	diag, err := change.Add.AddEdge(v0, v2, meshmodel.NotFound)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	change.TagIntersection(diag)

	u := retess.Unit{
		Plane: m.FacePlane(face),
		Faces: []int{face},
		Edges: []int{diag},
	}

	result, err := retess.Retessellate(m, change, u, eps, retess.Earclip{}, retess.Options{})
	if err != nil {
		t.Fatalf("Retessellate: %v", err)
	}
	if len(result.NewFaces) != 2 {
		t.Fatalf("len(result.NewFaces) = %d, want 2 (the diagonal splits the quad into two triangles)", len(result.NewFaces))
	}

	area := 0.0
	for _, f := range result.NewFaces {
		verts := change.Add.FaceVerts(f)
		area += triangleFanArea(m, change, verts)
	}
	if diff := area - 1.0; diff < -eps*10 || diff > eps*10 {
		t.Fatalf("replacement faces cover area %v, want 1.0", area)
	}
}

func triangleFanArea(host *simplemesh.Mesh, change *changeset.MeshChange, verts []int) float64 {
	co := func(v int) mgl64.Vec3 {
		if change.Add.IsStagedVert(v) {
			return change.Add.VertCo(v)
		}
		return host.VertCo(v)
	}
	if len(verts) < 3 {
		return 0
	}
	p0 := co(verts[0])
	sum := 0.0
	for i := 1; i < len(verts)-1; i++ {
		p1 := co(verts[i])
		p2 := co(verts[i+1])
		sum += p1.Sub(p0).Cross(p2.Sub(p0)).Len() / 2
	}
	return sum
}
