package changeset

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/meshmodel"
)

// stagedVert is one new vertex: its position and the (possibly absent)
// original vertex whose attributes it should inherit on materialization.
type stagedVert struct {
	Co      mgl64.Vec3
	Example int
}

// edgeKey is an unordered endpoint pair over the extended index space,
// keyed the way spec.md §4.3 requires ("a (min,max)-keyed hash").
type edgeKey struct{ lo, hi int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// stagedEdge is one new edge: its two endpoints in the extended index
// space, in the order first given, and its example edge.
type stagedEdge struct {
	V1, V2  int
	Example int
}

// stagedFace is one new face: its (vert, edge) pairs in the extended index
// space, its primary example face, and any other example faces it also
// carries provenance from (spec.md §3's "other examples" for retessellation
// merges of coincident faces from both sides).
type stagedFace struct {
	Verts         []int
	Edges         []int
	Example       int
	OtherExamples []int
}

// MeshAdd is the growing add buffer: three sequences of staged elements,
// addressed by extended index (hostTotal + position). It holds only what
// was explicitly staged this call; it never mutates the host mesh.
type MeshAdd struct {
	hostTotVert int
	hostTotEdge int
	hostTotFace int

	verts []stagedVert
	edges []stagedEdge
	faces []stagedFace

	edgeKeys map[edgeKey]int // edgeKey -> extended edge index
}

// NewMeshAdd returns an empty add buffer snapshotting host's current
// element counts; those counts fix the boundary between original and
// staged extended indices for the lifetime of this buffer.
func NewMeshAdd(host meshmodel.IMesh) *MeshAdd {
	return &MeshAdd{
		hostTotVert: host.TotVert(),
		hostTotEdge: host.TotEdge(),
		hostTotFace: host.TotFace(),
		edgeKeys:    make(map[edgeKey]int),
	}
}

// AddVert appends a new vertex and returns its extended index. example is
// meshmodel.NotFound if the vertex has no attribute source.
func (a *MeshAdd) AddVert(co mgl64.Vec3, example int) int {
	a.verts = append(a.verts, stagedVert{Co: co, Example: example})
	return a.hostTotVert + len(a.verts) - 1
}

// FindOrAddVert linearly scans the staged vertices for one within eps of co
// in L∞ (spec.md §4.3: "linear scan of the add buffer keyed by coordinate-
// equality within ε"), appending a new one if none matches. It never
// consults the host mesh: late coincidences against host vertices are the
// caller's responsibility via IMesh.CoordTree().FindCoEps.
func (a *MeshAdd) FindOrAddVert(co mgl64.Vec3, eps float64, example int) int {
	for i, v := range a.verts {
		if linfDist(v.Co, co) <= eps {
			return a.hostTotVert + i
		}
	}
	return a.AddVert(co, example)
}

func linfDist(x, y mgl64.Vec3) float64 {
	dx := math.Abs(x.X() - y.X())
	dy := math.Abs(x.Y() - y.Y())
	dz := math.Abs(x.Z() - y.Z())
	m := dx
	if dy > m {
		m = dy
	}
	if dz > m {
		m = dz
	}
	return m
}

// AddEdge stages a new edge between the two extended-index vertices v1, v2,
// deduped by unordered endpoint pair, and returns its extended index.
// Returns ErrDegenerateEdge if v1 == v2.
func (a *MeshAdd) AddEdge(v1, v2, example int) (int, error) {
	if v1 == v2 {
		return NotFound, ErrDegenerateEdge
	}
	key := makeEdgeKey(v1, v2)
	if idx, ok := a.edgeKeys[key]; ok {
		return idx, nil
	}
	a.edges = append(a.edges, stagedEdge{V1: v1, V2: v2, Example: example})
	idx := a.hostTotEdge + len(a.edges) - 1
	a.edgeKeys[key] = idx
	return idx, nil
}

// FindEdge returns the extended index of a previously staged edge between
// v1 and v2 (either order), or NotFound.
func (a *MeshAdd) FindEdge(v1, v2 int) int {
	if idx, ok := a.edgeKeys[makeEdgeKey(v1, v2)]; ok {
		return idx
	}
	return NotFound
}

// AddFace stages a new face from parallel vert/edge extended-index slices
// (verts[i], edges[i]) is the pair for the i-th slot, edges[i] connecting
// verts[i] and verts[(i+1)%n], and returns its extended index.
func (a *MeshAdd) AddFace(verts, edges []int, example int, otherExamples []int) (int, error) {
	if len(verts) < 3 {
		return NotFound, ErrShortFace
	}
	if len(verts) != len(edges) {
		return NotFound, ErrFaceArityMismatch
	}
	a.faces = append(a.faces, stagedFace{
		Verts:         append([]int(nil), verts...),
		Edges:         append([]int(nil), edges...),
		Example:       example,
		OtherExamples: append([]int(nil), otherExamples...),
	})
	return a.hostTotFace + len(a.faces) - 1, nil
}

// TotStagedVert, TotStagedEdge, TotStagedFace report how many elements this
// buffer has appended (not counting host originals).
func (a *MeshAdd) TotStagedVert() int { return len(a.verts) }
func (a *MeshAdd) TotStagedEdge() int { return len(a.edges) }
func (a *MeshAdd) TotStagedFace() int { return len(a.faces) }

// VertCo returns a staged vertex's position, indexed by extended index.
func (a *MeshAdd) VertCo(extIdx int) mgl64.Vec3 { return a.verts[extIdx-a.hostTotVert].Co }

// VertExample returns a staged vertex's example, or meshmodel.NotFound.
func (a *MeshAdd) VertExample(extIdx int) int { return a.verts[extIdx-a.hostTotVert].Example }

// EdgeVerts returns a staged edge's two endpoints, in extended-index space.
func (a *MeshAdd) EdgeVerts(extIdx int) (int, int) {
	e := a.edges[extIdx-a.hostTotEdge]
	return e.V1, e.V2
}

// EdgeExample returns a staged edge's example, or meshmodel.NotFound.
func (a *MeshAdd) EdgeExample(extIdx int) int { return a.edges[extIdx-a.hostTotEdge].Example }

// FaceVerts returns a staged face's vertex slot list, in extended-index
// space. The returned slice must not be mutated by the caller.
func (a *MeshAdd) FaceVerts(extIdx int) []int { return a.faces[extIdx-a.hostTotFace].Verts }

// FaceEdges returns a staged face's edge slot list, in extended-index
// space, parallel to FaceVerts. The returned slice must not be mutated.
func (a *MeshAdd) FaceEdges(extIdx int) []int { return a.faces[extIdx-a.hostTotFace].Edges }

// FaceExample returns a staged face's primary example, or meshmodel.NotFound.
func (a *MeshAdd) FaceExample(extIdx int) int { return a.faces[extIdx-a.hostTotFace].Example }

// FaceOtherExamples returns a staged face's secondary examples (spec.md §3's
// "other examples"), possibly empty.
func (a *MeshAdd) FaceOtherExamples(extIdx int) []int {
	return a.faces[extIdx-a.hostTotFace].OtherExamples
}

// IsStagedVert, IsStagedEdge, IsStagedFace report whether an extended index
// addresses an element this buffer staged, as opposed to a host original.
func (a *MeshAdd) IsStagedVert(extIdx int) bool { return extIdx >= a.hostTotVert }
func (a *MeshAdd) IsStagedEdge(extIdx int) bool { return extIdx >= a.hostTotEdge }
func (a *MeshAdd) IsStagedFace(extIdx int) bool { return extIdx >= a.hostTotFace }
