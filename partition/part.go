package partition

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/indexset"
	"github.com/akmonengine/meshbool/meshmodel"
	"github.com/akmonengine/meshbool/spatial"
)

// MeshPart is a maximal coplanar group: a canonical supporting plane, an
// AABB padded by eps, and three index lists into the extended index space
// (spec.md §3). Faces are populated during BuildPartSet; isolated verts and
// edges enter only through AddVert and AddEdge, which nothing else in this
// module calls, so Verts and Edges stay empty unless a caller adds to them.
type MeshPart struct {
	Plane meshmodel.Plane

	Verts *indexset.IntSet
	Edges *indexset.IntSet
	Faces *indexset.IntSet

	raw spatial.AABB
	eps float64
}

func newMeshPart(plane meshmodel.Plane, eps float64) *MeshPart {
	return &MeshPart{
		Plane: plane,
		Verts: indexset.NewIntSet(0),
		Edges: indexset.NewIntSet(0),
		Faces: indexset.NewIntSet(0),
		raw:   spatial.EmptyAABB(),
		eps:   eps,
	}
}

// AABB returns the part's current eps-padded bounding box (spec.md §4.4
// step 3), recomputed from the tight bounds tracked so far. Cheap: the
// tight bounds are maintained incrementally as elements are added.
func (p *MeshPart) AABB() spatial.AABB { return p.raw.Inflate(p.eps) }

func (p *MeshPart) addFace(host meshmodel.IMesh, f int) {
	p.Faces.Add(f)
	n := host.FaceLen(f)
	for i := 0; i < n; i++ {
		v := host.FaceVert(f, i)
		p.raw = p.raw.ExpandPoint(host.VertCo(v))
	}
}

// AddVert associates isolated vertex idx (extended index, at co) with this
// part, discovered by xsect while intersecting part pairs (spec.md §4.5).
func (p *MeshPart) AddVert(idx int, co mgl64.Vec3) {
	p.Verts.Add(idx)
	p.raw = p.raw.ExpandPoint(co)
}

// AddEdge associates isolated edge idx (extended index, with endpoints at
// co1, co2) with this part.
func (p *MeshPart) AddEdge(idx int, co1, co2 mgl64.Vec3) {
	p.Edges.Add(idx)
	p.raw = p.raw.ExpandPoint(co1).ExpandPoint(co2)
}

// MeshPartSet is an ordered collection of parts built from one side's (or,
// in self-intersect mode, all) faces (spec.md §3).
type MeshPartSet struct {
	Parts []*MeshPart
}

// AABB returns the union of every part's AABB (spec.md §4.4 step 3).
func (ps *MeshPartSet) AABB() spatial.AABB {
	out := spatial.EmptyAABB()
	for _, p := range ps.Parts {
		out = out.Union(p.AABB())
	}
	return out
}

// BuildPartSet groups faces (already filtered by side mask, in ascending
// host-mesh face-index order) into coplanar parts (spec.md §4.4). Each face
// is assigned to the lowest-indexed existing part it is coplanar with
// within 10*eps range, or starts a new part.
func BuildPartSet(host meshmodel.IMesh, eps float64, faces []int) *MeshPartSet {
	ps := &MeshPartSet{}
	tree := spatial.NewPlaneTree()

	for _, f := range faces {
		canon := CanonicalPlane(host.FacePlane(f))
		key := spatial.Plane4{Normal: canon.Normal, Offset: canon.Offset}

		match := -1
		tree.RangeSearch(key, 10*eps, func(ownerPartIdx int, candidate spatial.Plane4) {
			candPlane := meshmodel.Plane{Normal: candidate.Normal, Offset: candidate.Offset}
			if !PlanesCoplanar(canon, candPlane, eps) {
				return
			}
			if match == -1 || ownerPartIdx < match {
				match = ownerPartIdx
			}
		})

		if match == -1 {
			part := newMeshPart(canon, eps)
			ps.Parts = append(ps.Parts, part)
			match = len(ps.Parts) - 1
			tree.Insert(key, match)
		}
		ps.Parts[match].addFace(host, f)
	}

	return ps
}
