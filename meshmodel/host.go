package meshmodel

import "github.com/go-gl/mathgl/mgl64"

// HostMesh extends IMesh with the mutation surface spec.md §6 requires
// from the host ("Required from the mesh abstraction"): attribute-copying
// create, normal flip, kill with/without loose-sweep, and index
// renumbering. apply.Commit is the only consumer; every other package only
// ever needs the read-only IMesh.
type HostMesh interface {
	IMesh

	// CreateVert materializes a new vertex at co, copying attributes from
	// example (NotFound for none), and returns its host index.
	CreateVert(co mgl64.Vec3, example int) int
	// CreateEdge materializes a new edge between host vertices v1, v2,
	// copying attributes from example, and returns its host index.
	CreateEdge(v1, v2, example int) int
	// CreateFace materializes a new face from host vertex/edge index
	// slices (parallel, verts[i]/edges[i] is the i-th slot), copying
	// attributes from example, and returns its host index.
	CreateFace(verts, edges []int, example int) int

	// FlipFace reverses face f's winding and normal in place.
	FlipFace(f int)

	// KillFace removes face f. killLoose also removes any of its
	// edges/verts left with no other incident face (spec.md §3's
	// "KillLoose", §4.7 phase 4).
	KillFace(f int, killLoose bool)
	// KillEdge removes edge e. The caller guarantees it is no longer
	// referenced by any live face.
	KillEdge(e int)
	// KillVert removes vertex v. The caller guarantees it is no longer
	// referenced by any live edge.
	KillVert(v int)

	// SetSideFlag stashes a per-face tag during CreateFace/commit (spec.md
	// §4.7 phase 3: "consolidated side-flag set... stashed on the host
	// face objects during phase 3"), carried to each face's new index
	// when Reindex renumbers faces.
	SetSideFlag(f int, mask SideMask)
	// SideFlag returns a face's current side-flag tag.
	SideFlag(f int) SideMask

	// Reindex compacts the mesh after Kill* calls, returning old->new
	// index maps (NotFound for a removed element) for verts, edges, and
	// faces respectively (spec.md §4.7 phase 5).
	Reindex() (vertMap, edgeMap, faceMap []int)
}
