package meshmodel

import "github.com/go-gl/mathgl/mgl64"

// IMesh is the read-only view the boolean engine consumes of an opaque host
// mesh (spec.md §4.2). All indices are "extended indices" (spec.md §3):
// below TotVert/TotEdge/TotFace they address original host elements; the
// staged range above that is owned by changeset, not IMesh.
type IMesh interface {
	TotVert() int
	TotEdge() int
	TotFace() int

	// FaceLen returns the number of (vertex, edge) pairs in face f (>= 3).
	FaceLen(f int) int
	// FaceVert returns the i-th vertex of face f, 0 <= i < FaceLen(f).
	FaceVert(f, i int) int
	// FaceEdge returns the i-th edge of face f: the edge connecting the
	// i-th and ((i+1) mod n)-th vertex (spec.md §3 Face invariant).
	FaceEdge(f, i int) int
	// FaceNormal returns face f's unit normal.
	FaceNormal(f int) mgl64.Vec3
	// FacePlane returns face f's supporting plane: unit normal plus signed
	// offset through any face vertex.
	FacePlane(f int) Plane
	// FaceInteriorPoint returns some point strictly interior to face f.
	FaceInteriorPoint(f int) mgl64.Vec3
	// FaceTessellation returns FaceLen(f)-2 triangles (as vertex index
	// triples) whose winding matches FaceNormal(f).
	FaceTessellation(f int) [][3]int

	// VertCo returns vertex v's position.
	VertCo(v int) mgl64.Vec3

	// EdgeVerts returns edge e's two endpoint vertex indices.
	EdgeVerts(e int) (int, int)
	// EdgeCos returns edge e's two endpoint positions.
	EdgeCos(e int) (mgl64.Vec3, mgl64.Vec3)
	// FindEdge returns the edge connecting v1 and v2 (either order), or
	// NotFound.
	FindEdge(v1, v2 int) int

	// CoordTree exposes the coordinate k-d tree built once per call from
	// host vertex positions, used only for find_co_eps (spec.md §4.2).
	CoordTree() CoordFinder
}

// CoordFinder is the minimum-index-within-epsilon lookup spec.md §4.2 calls
// find_co_eps, kept as its own small interface so spatial.CoordTree is not a
// hard dependency of every IMesh implementation.
type CoordFinder interface {
	FindCoEps(co mgl64.Vec3, eps float64) int
}
