package simplemesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/meshmodel"
)

// CreateVert implements meshmodel.HostMesh. simplemesh carries no
// attributes beyond position, so example is accepted (to satisfy the
// interface spec.md §6 requires of a "real" host) but has nothing to copy;
// attribute copy is explicitly out of scope (spec.md §1).
func (m *Mesh) CreateVert(co mgl64.Vec3, _ int) int {
	return m.AddVert(co)
}

// CreateEdge implements meshmodel.HostMesh.
func (m *Mesh) CreateEdge(v1, v2 int, _ int) int {
	key := makeEdgeKey(v1, v2)
	if idx, ok := m.edgeKeys[key]; ok && !m.edgeDead[idx] {
		return idx
	}
	idx := len(m.edges)
	m.edgeKeys[key] = idx
	m.edges = append(m.edges, edgeRecord{v1: v1, v2: v2})
	m.edgeDead = append(m.edgeDead, false)
	return idx
}

// CreateFace implements meshmodel.HostMesh. edges is accepted for interface
// symmetry with the extended-index world callers operate in; simplemesh
// derives its own edges from vertex adjacency, as AddFace always has.
func (m *Mesh) CreateFace(verts, _ []int, _ int) int {
	return m.AddFace(verts...)
}

// FlipFace implements meshmodel.HostMesh: reversing the vertex loop
// reverses FaceNormal's Newell-method result without disturbing any
// edgeKey (edges are keyed by unordered endpoint pair).
func (m *Mesh) FlipFace(f int) {
	verts := m.faces[f].Verts
	for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}
}

// SetSideFlag implements meshmodel.HostMesh.
func (m *Mesh) SetSideFlag(f int, mask meshmodel.SideMask) { m.sideFlags[f] = mask }

// SideFlag implements meshmodel.HostMesh.
func (m *Mesh) SideFlag(f int) meshmodel.SideMask { return m.sideFlags[f] }

// KillFace implements meshmodel.HostMesh. killLoose additionally kills any
// of the face's edges/verts left with no other live incident face.
func (m *Mesh) KillFace(f int, killLoose bool) {
	if m.faceDead[f] {
		return
	}
	verts := append([]int(nil), m.faces[f].Verts...)
	var edges []int
	n := len(verts)
	for i := 0; i < n; i++ {
		key := makeEdgeKey(verts[i], verts[(i+1)%n])
		if idx, ok := m.edgeKeys[key]; ok {
			edges = append(edges, idx)
		}
	}

	m.faceDead[f] = true

	if !killLoose {
		return
	}
	for _, e := range edges {
		if !m.edgeStillUsed(e) {
			m.KillEdge(e)
		}
	}
	for _, v := range verts {
		if !m.vertStillUsed(v) {
			m.KillVert(v)
		}
	}
}

func (m *Mesh) edgeStillUsed(e int) bool {
	if m.edgeDead[e] {
		return false
	}
	rec := m.edges[e]
	for f, face := range m.faces {
		if m.faceDead[f] {
			continue
		}
		n := len(face.Verts)
		for i := 0; i < n; i++ {
			a, b := face.Verts[i], face.Verts[(i+1)%n]
			if makeEdgeKey(a, b) == makeEdgeKey(rec.v1, rec.v2) {
				return true
			}
		}
	}
	return false
}

func (m *Mesh) vertStillUsed(v int) bool {
	for f, face := range m.faces {
		if m.faceDead[f] {
			continue
		}
		for _, fv := range face.Verts {
			if fv == v {
				return true
			}
		}
	}
	return false
}

// KillEdge implements meshmodel.HostMesh. The caller guarantees e is no
// longer referenced by any live face.
func (m *Mesh) KillEdge(e int) { m.edgeDead[e] = true }

// KillVert implements meshmodel.HostMesh. The caller guarantees v is no
// longer referenced by any live edge.
func (m *Mesh) KillVert(v int) {
	m.vertDead[v] = true
	m.tree = nil
}

// Reindex implements meshmodel.HostMesh: compacts verts/edges/faces,
// dropping dead slots, and returns old->new maps (meshmodel.NotFound for a
// removed element).
func (m *Mesh) Reindex() (vertMap, edgeMap, faceMap []int) {
	vertMap = make([]int, len(m.verts))
	newVerts := make([]mgl64.Vec3, 0, len(m.verts))
	for i, dead := range m.vertDead {
		if dead {
			vertMap[i] = meshmodel.NotFound
			continue
		}
		vertMap[i] = len(newVerts)
		newVerts = append(newVerts, m.verts[i])
	}

	edgeMap = make([]int, len(m.edges))
	newEdges := make([]edgeRecord, 0, len(m.edges))
	for i, dead := range m.edgeDead {
		if dead || vertMap[m.edges[i].v1] == meshmodel.NotFound || vertMap[m.edges[i].v2] == meshmodel.NotFound {
			edgeMap[i] = meshmodel.NotFound
			continue
		}
		edgeMap[i] = len(newEdges)
		rec := m.edges[i]
		newEdges = append(newEdges, edgeRecord{v1: vertMap[rec.v1], v2: vertMap[rec.v2]})
	}

	faceMap = make([]int, len(m.faces))
	newFaces := make([]Face, 0, len(m.faces))
	newSideFlags := make([]meshmodel.SideMask, 0, len(m.faces))
	for i, dead := range m.faceDead {
		if dead {
			faceMap[i] = meshmodel.NotFound
			continue
		}
		faceMap[i] = len(newFaces)
		oldVerts := m.faces[i].Verts
		remapped := make([]int, len(oldVerts))
		for k, v := range oldVerts {
			remapped[k] = vertMap[v]
		}
		newFaces = append(newFaces, Face{Verts: remapped})
		newSideFlags = append(newSideFlags, m.sideFlags[i])
	}

	newEdgeKeys := make(map[edgeKey]int, len(newEdges))
	for i, rec := range newEdges {
		newEdgeKeys[makeEdgeKey(rec.v1, rec.v2)] = i
	}

	m.verts = newVerts
	m.vertDead = make([]bool, len(newVerts))
	m.edges = newEdges
	m.edgeDead = make([]bool, len(newEdges))
	m.edgeKeys = newEdgeKeys
	m.faces = newFaces
	m.faceDead = make([]bool, len(newFaces))
	m.sideFlags = newSideFlags
	m.tree = nil

	return vertMap, edgeMap, faceMap
}
