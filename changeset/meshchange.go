package changeset

import (
	"github.com/akmonengine/meshbool/indexset"
	"github.com/akmonengine/meshbool/meshmodel"
)

// MeshChange is the full staged delta spec.md §3 describes: an add buffer,
// a deletion bitmap, a transitive vertex-merge map, the set of edges to tag
// "intersection," the set of faces to flip, and the kill-loose policy
// governing whether face deletion sweeps now-isolated edges/verts.
type MeshChange struct {
	Add    *MeshAdd
	Delete *MeshDelete

	merge             *indexset.IntIntMap
	intersectionEdges *indexset.IntSet
	flipFaces         *indexset.IntSet

	// KillLoose governs whether committing a face deletion also deletes
	// any of its verts/edges left with no remaining incident face
	// (spec.md §3, §4.8 "removed faces use the kill-loose deletion path").
	KillLoose bool
}

// NewMeshChange returns an empty change against host, with KillLoose set to
// killLoose.
func NewMeshChange(host meshmodel.IMesh, killLoose bool) *MeshChange {
	return &MeshChange{
		Add:               NewMeshAdd(host),
		Delete:            NewMeshDelete(host.TotVert(), host.TotEdge(), host.TotFace()),
		merge:             indexset.NewIntIntMap(0),
		intersectionEdges: indexset.NewIntSet(0),
		flipFaces:         indexset.NewIntSet(0),
		KillLoose:         killLoose,
	}
}

// AddMerge records that vertex src resolves to target (extended indices).
// target must be strictly less than src, the total order spec.md §4.3
// requires of every merge-map edge so the map can never contain a cycle.
func (c *MeshChange) AddMerge(src, target int) error {
	if target >= src {
		return ErrMergeNotForward
	}
	c.merge.Set(src, target)
	return nil
}

// ResolveMerge chases src through the merge map to its canonical target,
// per spec.md §4.3's resolve_merge.
func (c *MeshChange) ResolveMerge(src int) (int, error) {
	return indexset.ResolveMerge(src, c.merge)
}

// TagIntersection marks edge e (extended index) as lying on the
// intersection curve (spec.md §3's "Intersection edge").
func (c *MeshChange) TagIntersection(e int) { c.intersectionEdges.Add(e) }

// IsIntersectionEdge reports whether e was tagged via TagIntersection.
func (c *MeshChange) IsIntersectionEdge(e int) bool { return c.intersectionEdges.Has(e) }

// IntersectionEdges returns every tagged intersection edge, in insertion
// order.
func (c *MeshChange) IntersectionEdges() []int { return c.intersectionEdges.Values() }

// MarkFlip marks face f (extended index) to have its winding reversed once
// materialized (spec.md §4.7 phase 4, §4.8's do_flip rules).
func (c *MeshChange) MarkFlip(f int) { c.flipFaces.Add(f) }

// IsFlipped reports whether f was marked via MarkFlip.
func (c *MeshChange) IsFlipped(f int) bool { return c.flipFaces.Has(f) }

// FlipFaces returns every face marked via MarkFlip, in insertion order.
func (c *MeshChange) FlipFaces() []int { return c.flipFaces.Values() }

// DeleteFace marks original face f for deletion. killLoose is governed by
// the change's own KillLoose flag, not a per-call argument: spec.md §3
// scopes it to the whole change.
func (c *MeshChange) DeleteFace(f int) { c.Delete.Face(f) }
