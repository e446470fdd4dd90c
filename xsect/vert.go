package xsect

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/meshmodel"
)

// vertCo returns a vertex's position regardless of whether its extended
// index addresses a host original or a changeset-staged vertex.
func vertCo(host meshmodel.IMesh, add *changeset.MeshAdd, v int) mgl64.Vec3 {
	if add.IsStagedVert(v) {
		return add.VertCo(v)
	}
	return host.VertCo(v)
}

// edgeVerts returns an edge's two endpoints, staged or original.
func edgeVerts(host meshmodel.IMesh, add *changeset.MeshAdd, e int) (int, int) {
	if add.IsStagedEdge(e) {
		return add.EdgeVerts(e)
	}
	return host.EdgeVerts(e)
}

// snapOrStageVert implements spec.md §4.5's "snap to an existing mesh vertex
// via find_co_eps or stage a new vertex": the host's coordinate k-d tree is
// tried first (find_co_eps returns the minimum-index hit), then the add
// buffer's own linear scan over already-staged vertices, and only then is a
// genuinely new vertex staged.
func snapOrStageVert(host meshmodel.IMesh, change *changeset.MeshChange, co mgl64.Vec3, eps float64) int {
	if hit := host.CoordTree().FindCoEps(co, eps); hit != meshmodel.NotFound {
		return hit
	}
	return change.Add.FindOrAddVert(co, eps, meshmodel.NotFound)
}

// findOrCreateEdge returns the extended index of an edge between v1 and v2,
// reusing a host original (via FindEdge) or an already-staged edge before
// staging a new one (spec.md §4.5: "ensure an edge exists between them,
// creating if necessary").
func findOrCreateEdge(host meshmodel.IMesh, change *changeset.MeshChange, v1, v2 int) (int, error) {
	if !change.Add.IsStagedVert(v1) && !change.Add.IsStagedVert(v2) {
		if e := host.FindEdge(v1, v2); e != meshmodel.NotFound {
			return e, nil
		}
	}
	if e := change.Add.FindEdge(v1, v2); e != meshmodel.NotFound {
		return e, nil
	}
	return change.Add.AddEdge(v1, v2, meshmodel.NotFound)
}
