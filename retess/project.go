package retess

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/meshmodel"
)

// frame is the 2-D coordinate frame built from a part plane: an orthonormal
// basis (tangent1, tangent2, normal) sending the plane's normal to +Z
// (spec.md §4.6 step 2). Grounded on epa/manifold.go's getTangentBasis,
// generalized from a single contact normal to a whole part's vertex set.
type frame struct {
	origin             mgl64.Vec3
	tangent1, tangent2 mgl64.Vec3
	normal             mgl64.Vec3
	restoreZ           float64
}

const tangentBasisThreshold = 0.9

func newFrame(plane meshmodel.Plane) frame {
	normal := plane.Normal
	tangent1 := mgl64.Vec3{1, 0, 0}
	if math.Abs(normal.X()) > tangentBasisThreshold {
		tangent1 = mgl64.Vec3{0, 1, 0}
	}
	tangent1 = tangent1.Sub(normal.Mul(tangent1.Dot(normal))).Normalize()
	tangent2 := normal.Cross(tangent1).Normalize()

	// Any point on the plane: normal*(-offset) satisfies normal.Dot(p) + offset = 0.
	origin := normal.Mul(-plane.Offset)

	return frame{origin: origin, tangent1: tangent1, tangent2: tangent2, normal: normal}
}

// project maps a 3-D point onto the frame's 2-D coordinates. All projected
// Z values are expected equal to within eps (spec.md §4.6 step 2); the
// caller caches one as the restoration Z via setRestoreZ.
func (f frame) project(p mgl64.Vec3) Point2 {
	rel := p.Sub(f.origin)
	return Point2{X: rel.Dot(f.tangent1), Y: rel.Dot(f.tangent2)}
}

func (f frame) zOf(p mgl64.Vec3) float64 {
	return p.Sub(f.origin).Dot(f.normal)
}

// unproject maps a 2-D frame coordinate back to 3-D using the cached
// restoration Z.
func (f frame) unproject(p Point2) mgl64.Vec3 {
	return f.origin.
		Add(f.tangent1.Mul(p.X)).
		Add(f.tangent2.Mul(p.Y)).
		Add(f.normal.Mul(f.restoreZ))
}

func vertCo(host meshmodel.IMesh, add *changeset.MeshAdd, v int) mgl64.Vec3 {
	if add.IsStagedVert(v) {
		return add.VertCo(v)
	}
	return host.VertCo(v)
}
