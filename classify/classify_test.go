package classify

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/meshmodel"
	"github.com/akmonengine/meshbool/simplemesh"
)

func cubeHost(t *testing.T, center mgl64.Vec3, half float64, side meshmodel.SideMask) *simplemesh.Mesh {
	t.Helper()
	m := simplemesh.NewMesh()
	first := simplemesh.AddCube(m, center, half)
	for f := first; f < first+6; f++ {
		m.SetSideFlag(f, side)
	}
	return m
}

func TestGeneralizedWindingNumber_InsideVsOutside(t *testing.T) {
	m := cubeHost(t, mgl64.Vec3{}, 1, meshmodel.SideMaskB)
	faces := sideFaces(m, meshmodel.SideB)
	if len(faces) != 6 {
		t.Fatalf("sideFaces returned %d faces, want 6", len(faces))
	}

	if !isInside(m, mgl64.Vec3{}, faces) {
		t.Errorf("origin should be inside the unit cube")
	}
	if isInside(m, mgl64.Vec3{10, 10, 10}, faces) {
		t.Errorf("a far point should not be inside the unit cube")
	}
}

func TestClassify_UnionKeepsIsolatedGeometry(t *testing.T) {
	m := cubeHost(t, mgl64.Vec3{}, 1, meshmodel.SideMaskA)
	result := Classify(m, meshmodel.OpUnion)

	if len(result.Groups) != 1 {
		t.Fatalf("got %d groups, want 1 (a closed cube with uniform side flags)", len(result.Groups))
	}
	if len(result.Groups[0].Faces) != 6 {
		t.Fatalf("group has %d faces, want 6", len(result.Groups[0].Faces))
	}
	if result.Decisions[0].Remove {
		t.Errorf("union of a lone operand with nothing on the other side should keep its faces")
	}
	if result.Decisions[0].Flip {
		t.Errorf("union never flips")
	}
}

func TestClassify_DifferenceSideBAlwaysFlips(t *testing.T) {
	m := cubeHost(t, mgl64.Vec3{}, 1, meshmodel.SideMaskB)
	result := Classify(m, meshmodel.OpDifference)

	if len(result.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(result.Groups))
	}
	d := result.Decisions[0]
	if !d.Flip {
		t.Errorf("difference always flips side-B groups, regardless of inside/outside")
	}
	if !d.Remove {
		t.Errorf("a side-B operand with nothing to subtract from is entirely outside A and should be removed")
	}
}

func TestClassify_BothSidesUnionUsesOppositeNormalsBit(t *testing.T) {
	m := cubeHost(t, mgl64.Vec3{}, 1, meshmodel.SideMaskA|meshmodel.SideMaskB|meshmodel.SideMaskOppNorms)
	result := Classify(m, meshmodel.OpUnion)

	if len(result.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(result.Groups))
	}
	if !result.Decisions[0].Remove {
		t.Errorf("a both-sides group with its opposite-normals bit set should be removed under union")
	}
	if result.Decisions[0].Flip {
		t.Errorf("union never flips, even for both-sides groups")
	}
}
