package apply

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/meshmodel"
	"github.com/akmonengine/meshbool/simplemesh"
)

// TestCommit_SplitFaceConsolidatesSideFlags splits a cube's -Z quad into two
// triangles across a new diagonal edge, reusing the quad's original edges,
// and checks that the replacement faces inherit the example's side flag and
// that reused edges survive the kill-loose sweep of the deleted original.
func TestCommit_SplitFaceConsolidatesSideFlags(t *testing.T) {
	mesh := simplemesh.NewMesh()
	firstFace := simplemesh.AddCube(mesh, mgl64.Vec3{}, 1)
	_ = firstFace

	mesh.SetSideFlag(0, meshmodel.SideMaskA)

	change := changeset.NewMeshChange(mesh, true)

	v0 := mesh.FaceVert(0, 0)
	v1 := mesh.FaceVert(0, 1)
	v2 := mesh.FaceVert(0, 2)
	v3 := mesh.FaceVert(0, 3)

	e0 := mesh.FindEdge(v0, v3)
	e1 := mesh.FindEdge(v3, v2)
	e2 := mesh.FindEdge(v2, v1)
	e3 := mesh.FindEdge(v1, v0)
	if e0 == meshmodel.NotFound || e1 == meshmodel.NotFound || e2 == meshmodel.NotFound || e3 == meshmodel.NotFound {
		t.Fatalf("expected all four quad edges to be found")
	}

	diag, err := change.Add.AddEdge(v0, v2, meshmodel.NotFound)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	triA, err := change.Add.AddFace([]int{v0, v3, v2}, []int{e0, e1, diag}, 0, nil)
	if err != nil {
		t.Fatalf("AddFace triA: %v", err)
	}
	triB, err := change.Add.AddFace([]int{v0, v2, v1}, []int{diag, e2, e3}, 0, nil)
	if err != nil {
		t.Fatalf("AddFace triB: %v", err)
	}

	change.DeleteFace(0)

	totFaceBefore := mesh.TotFace()

	result, err := Commit(mesh, change, Options{})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if mesh.TotFace() != totFaceBefore+1 {
		t.Fatalf("TotFace() = %d, want %d (delete 1, add 2)", mesh.TotFace(), totFaceBefore+1)
	}
	if result.FaceMap[0] != meshmodel.NotFound {
		t.Fatalf("FaceMap[0] = %d, want NotFound (original face 0 was deleted)", result.FaceMap[0])
	}

	newA := result.FaceMap[len(result.FaceMap)-2]
	newB := result.FaceMap[len(result.FaceMap)-1]
	_ = triA
	_ = triB
	if newA == meshmodel.NotFound || newB == meshmodel.NotFound {
		t.Fatalf("expected both replacement faces to survive reindex")
	}
	if mesh.SideFlag(newA) != meshmodel.SideMaskA || mesh.SideFlag(newB) != meshmodel.SideMaskA {
		t.Fatalf("replacement faces did not inherit SideMaskA from their example")
	}

	for _, host := range []int{v0, v1, v2, v3} {
		if result.VertMap[host] == meshmodel.NotFound {
			t.Fatalf("vertex %d shared by the replacement faces was wrongly killed", host)
		}
	}
}
