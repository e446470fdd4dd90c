package classify

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/meshmodel"
)

// solidAngle computes the Van Oosterom-Strackee solid angle subtended by
// triangle (a, b, c) as seen from the origin, where a, b, c are already
// translated by -p (spec.md §4.8).
func solidAngle(a, b, c mgl64.Vec3) float64 {
	numerator := a.Dot(b.Cross(c))
	denom := a.Len()*b.Len()*c.Len() +
		a.Dot(b)*c.Len() +
		a.Dot(c)*b.Len() +
		b.Dot(c)*a.Len()
	return 2 * math.Atan2(numerator, denom)
}

// generalizedWindingNumber sums the solid angle of every triangle of every
// face in faces as seen from p, negating any face whose opposite-normals
// bit is set, and normalizes by 4π (spec.md §4.8).
func generalizedWindingNumber(host Host, p mgl64.Vec3, faces []int) float64 {
	sum := 0.0
	for _, f := range faces {
		sign := 1.0
		if host.SideFlag(f).OppNormals() {
			sign = -1.0
		}
		for _, tri := range host.FaceTessellation(f) {
			a := host.VertCo(tri[0]).Sub(p)
			b := host.VertCo(tri[1]).Sub(p)
			c := host.VertCo(tri[2]).Sub(p)
			sum += sign * solidAngle(a, b, c)
		}
	}
	return sum / (4 * math.Pi)
}

// isInside reports spec.md §4.8's inside test: |gwn| >= 0.5.
func isInside(host Host, p mgl64.Vec3, faces []int) bool {
	return math.Abs(generalizedWindingNumber(host, p, faces)) >= 0.5
}

// sideFaces returns every host face carrying the given side, including
// both-sides faces that carry it alongside the other.
func sideFaces(host Host, side meshmodel.Side) []int {
	var out []int
	for f := 0; f < host.TotFace(); f++ {
		sf := host.SideFlag(f)
		switch side {
		case meshmodel.SideA:
			if sf.HasA() {
				out = append(out, f)
			}
		case meshmodel.SideB:
			if sf.HasB() {
				out = append(out, f)
			}
		}
	}
	return out
}
