package retess

import (
	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/indexset"
	"github.com/akmonengine/meshbool/meshmodel"
)

// Unit is one retessellation unit: a shared supporting plane plus every
// original face assigned to it. A unit is usually a single partition.MeshPart,
// but coplanar-merged part pairs (spec.md §4.5 "Coplanar" mode) are folded
// into one unit by the caller so they retessellate together and produce one
// replacement face set instead of two overlapping ones (spec.md §8's
// coincident-quad scenario: "must produce one face... must not duplicate
// it"). Verts/Edges are the loose (non-face-boundary) elements contributed
// by intersection records; Faces are always original host-mesh indices.
type Unit struct {
	Plane meshmodel.Plane
	Faces []int
	Verts []int
	Edges []int
}

// gathered holds the indexed element sets spec.md §4.6 step 1 asks for,
// ranked 0..n-1 for CDT input, plus face vertex/edge loop data needed to
// build CDTFace polygons.
type gathered struct {
	verts *indexset.IndexedIntSet
	edges *indexset.IndexedIntSet
	faces *indexset.IndexedIntSet

	// faceLoops[rank] is the ordered list of vertex *ranks* (into verts)
	// for that face's boundary, in host winding order.
	faceLoops [][]int
}

// gather implements spec.md §4.6 step 1: collect the unit's own elements
// plus everything its intersection records reference, uniqued into indexed
// sets, including each face's implicit boundary edges looked up by
// endpoint vertices.
func gather(host meshmodel.IMesh, add *changeset.MeshAdd, u Unit) *gathered {
	g := &gathered{
		verts: indexset.NewIndexedIntSet(0),
		edges: indexset.NewIndexedIntSet(0),
		faces: indexset.NewIndexedIntSet(0),
	}

	for _, v := range u.Verts {
		g.verts.Add(v)
	}
	for _, e := range u.Edges {
		g.edges.Add(e)
		v1, v2 := edgeVertsOf(host, add, e)
		g.verts.Add(v1)
		g.verts.Add(v2)
	}

	for _, f := range u.Faces {
		g.faces.Add(f)
	}
	g.faceLoops = make([][]int, g.faces.Len())
	for rank, f := range g.faces.Values() {
		n := host.FaceLen(f)
		loop := make([]int, n)
		for i := 0; i < n; i++ {
			v := host.FaceVert(f, i)
			loop[i] = g.verts.Add(v)

			if e := host.FaceEdge(f, i); e != meshmodel.NotFound {
				g.edges.Add(e)
			}
		}
		g.faceLoops[rank] = loop
	}

	return g
}

func edgeVertsOf(host meshmodel.IMesh, add *changeset.MeshAdd, e int) (int, int) {
	if add.IsStagedEdge(e) {
		return add.EdgeVerts(e)
	}
	return host.EdgeVerts(e)
}
