package simplemesh

import "github.com/go-gl/mathgl/mgl64"

// AddCube appends an axis-aligned box centered at center with
// the given half-extent, as 6 quad faces wound counter-clockwise around
// each face's outward normal, and returns the index of the first face added
// (faces are always added contiguously, 6 per cube). The corner layout
// mirrors actor/shape.go's Box.ComputeAABB 8-corner enumeration.
func AddCube(m *Mesh, center mgl64.Vec3, halfExtent float64) (firstFace int) {
	h := halfExtent
	c := [8]mgl64.Vec3{
		center.Add(mgl64.Vec3{-h, -h, -h}),
		center.Add(mgl64.Vec3{+h, -h, -h}),
		center.Add(mgl64.Vec3{+h, +h, -h}),
		center.Add(mgl64.Vec3{-h, +h, -h}),
		center.Add(mgl64.Vec3{-h, -h, +h}),
		center.Add(mgl64.Vec3{+h, -h, +h}),
		center.Add(mgl64.Vec3{+h, +h, +h}),
		center.Add(mgl64.Vec3{-h, +h, +h}),
	}
	v := make([]int, 8)
	for i, p := range c {
		v[i] = m.AddVert(p)
	}

	firstFace = -1
	faces := [6][4]int{
		{v[0], v[3], v[2], v[1]}, // -Z
		{v[4], v[5], v[6], v[7]}, // +Z
		{v[0], v[4], v[7], v[3]}, // -X
		{v[1], v[2], v[6], v[5]}, // +X
		{v[0], v[1], v[5], v[4]}, // -Y
		{v[3], v[7], v[6], v[2]}, // +Y
	}
	for _, f := range faces {
		idx := m.AddFace(f[0], f[1], f[2], f[3])
		if firstFace == -1 {
			firstFace = idx
		}
	}
	return firstFace
}
