// Package simplemesh is a minimal concrete meshmodel.IMesh: a shared vertex
// buffer plus explicit per-face vertex/edge index lists, the kind of host
// mesh spec.md §1 treats as an external collaborator (BMesh is out of
// scope) and spec.md §4.2 only specifies the interface of. It exists so the
// boolean engine's tests and examples (spec.md §8's literal scenarios) can
// run against real geometry rather than a mock.
//
// Grounded on 4ef57cd0_MWindels-distributed-raytracer's shared-state Mesh:
// a deduplicated vertex buffer built up by a coordinate→index map, with
// faces referencing vertices by index rather than storing positions inline.
package simplemesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/meshmodel"
	"github.com/akmonengine/meshbool/spatial"
)

// Face is one polygon: an ordered list of vertex indices of length >= 3.
// Edges are derived (the i-th edge connects Verts[i] and Verts[(i+1)%n]),
// matching spec.md §3's Face invariant.
type Face struct {
	Verts []int
}

// edgeKey is an unordered endpoint pair, used to dedup edges the way
// spec.md §4.3 requires ("uniqueness is enforced on staging by a
// (min,max)-keyed hash").
type edgeKey struct{ lo, hi int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// edgeRecord is one unique edge with its two endpoints in the order they
// were first seen.
type edgeRecord struct {
	v1, v2 int
}

// Mesh is a simple in-memory triangle/polygon mesh implementing
// meshmodel.IMesh and meshmodel.HostMesh. Deletion is tombstone-based:
// Kill* marks a slot dead without shifting indices, so extended-index
// arithmetic elsewhere in the call stays valid until Reindex compacts
// everything at the very end (spec.md §4.7 phase 5).
type Mesh struct {
	verts     []mgl64.Vec3
	vertDead  []bool
	faces     []Face
	faceDead  []bool
	sideFlags []meshmodel.SideMask

	edges    []edgeRecord
	edgeDead []bool
	edgeKeys map[edgeKey]int

	tree *spatial.CoordTree
}

// NewMesh returns an empty mesh ready for AddVert/AddFace calls.
func NewMesh() *Mesh {
	return &Mesh{
		edgeKeys: make(map[edgeKey]int),
	}
}

// AddVert appends a vertex and returns its index. Unlike changeset's
// add-buffer, simplemesh does not dedup on add: callers that want shared
// vertices look up FindOrAddVert.
func (m *Mesh) AddVert(co mgl64.Vec3) int {
	m.verts = append(m.verts, co)
	m.vertDead = append(m.vertDead, false)
	m.tree = nil // invalidate the cached tree
	return len(m.verts) - 1
}

// FindOrAddVert returns the index of an existing vertex within eps of co
// (L∞), or adds a new one.
func (m *Mesh) FindOrAddVert(co mgl64.Vec3, eps float64) int {
	for i, v := range m.verts {
		if linfDist(v, co) <= eps {
			return i
		}
	}
	return m.AddVert(co)
}

func linfDist(a, b mgl64.Vec3) float64 {
	dx := math.Abs(a.X() - b.X())
	dy := math.Abs(a.Y() - b.Y())
	dz := math.Abs(a.Z() - b.Z())
	m := dx
	if dy > m {
		m = dy
	}
	if dz > m {
		m = dz
	}
	return m
}

// AddFace appends a polygon over verts (by index, CCW around the intended
// normal) and stages any edges it introduces, deduped by endpoint pair.
func (m *Mesh) AddFace(verts ...int) int {
	n := len(verts)
	for i := 0; i < n; i++ {
		a, b := verts[i], verts[(i+1)%n]
		key := makeEdgeKey(a, b)
		if _, ok := m.edgeKeys[key]; !ok {
			m.edgeKeys[key] = len(m.edges)
			m.edges = append(m.edges, edgeRecord{v1: a, v2: b})
			m.edgeDead = append(m.edgeDead, false)
		}
	}
	m.faces = append(m.faces, Face{Verts: append([]int(nil), verts...)})
	m.faceDead = append(m.faceDead, false)
	m.sideFlags = append(m.sideFlags, 0)
	return len(m.faces) - 1
}

func (m *Mesh) TotVert() int { return len(m.verts) }
func (m *Mesh) TotEdge() int { return len(m.edges) }
func (m *Mesh) TotFace() int { return len(m.faces) }

func (m *Mesh) FaceLen(f int) int { return len(m.faces[f].Verts) }

func (m *Mesh) FaceVert(f, i int) int {
	verts := m.faces[f].Verts
	return verts[i%len(verts)]
}

func (m *Mesh) FaceEdge(f, i int) int {
	verts := m.faces[f].Verts
	n := len(verts)
	a, b := verts[i%n], verts[(i+1)%n]
	key := makeEdgeKey(a, b)
	idx, ok := m.edgeKeys[key]
	if !ok {
		return meshmodel.NotFound
	}
	return idx
}

func (m *Mesh) FaceNormal(f int) mgl64.Vec3 {
	verts := m.faces[f].Verts
	// Newell's method: robust for near-planar, possibly non-triangular
	// polygons, and insensitive to the exact vertex used as origin.
	var n mgl64.Vec3
	count := len(verts)
	for i := 0; i < count; i++ {
		cur := m.verts[verts[i]]
		next := m.verts[verts[(i+1)%count]]
		n[0] += (cur.Y() - next.Y()) * (cur.Z() + next.Z())
		n[1] += (cur.Z() - next.Z()) * (cur.X() + next.X())
		n[2] += (cur.X() - next.X()) * (cur.Y() + next.Y())
	}
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return mgl64.Vec3{0, 0, 1}
}

func (m *Mesh) FacePlane(f int) meshmodel.Plane {
	normal := m.FaceNormal(f)
	p0 := m.verts[m.faces[f].Verts[0]]
	return meshmodel.Plane{Normal: normal, Offset: -normal.Dot(p0)}
}

func (m *Mesh) FaceInteriorPoint(f int) mgl64.Vec3 {
	verts := m.faces[f].Verts
	var sum mgl64.Vec3
	for _, v := range verts {
		sum = sum.Add(m.verts[v])
	}
	return sum.Mul(1 / float64(len(verts)))
}

// FaceTessellation fans the polygon from its first vertex. This assumes a
// convex polygon, which matches spec.md §4.5's restriction to convex parts
// (spec.md §9 open question) and is sufficient for simplemesh's role as a
// test fixture.
func (m *Mesh) FaceTessellation(f int) [][3]int {
	verts := m.faces[f].Verts
	n := len(verts)
	tris := make([][3]int, 0, n-2)
	for i := 1; i < n-1; i++ {
		tris = append(tris, [3]int{verts[0], verts[i], verts[i+1]})
	}
	return tris
}

func (m *Mesh) VertCo(v int) mgl64.Vec3 { return m.verts[v] }

func (m *Mesh) EdgeVerts(e int) (int, int) {
	rec := m.edges[e]
	return rec.v1, rec.v2
}

func (m *Mesh) EdgeCos(e int) (mgl64.Vec3, mgl64.Vec3) {
	v1, v2 := m.EdgeVerts(e)
	return m.verts[v1], m.verts[v2]
}

func (m *Mesh) FindEdge(v1, v2 int) int {
	idx, ok := m.edgeKeys[makeEdgeKey(v1, v2)]
	if !ok {
		return meshmodel.NotFound
	}
	return idx
}

// CoordTree builds (once, lazily) the coordinate k-d tree spec.md §4.2
// describes, built once per call from host vertex positions.
func (m *Mesh) CoordTree() meshmodel.CoordFinder {
	if m.tree == nil {
		m.tree = spatial.NewCoordTree(m.verts)
	}
	return m.tree
}
