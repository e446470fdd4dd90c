package boolmesh

import (
	"sort"

	"github.com/akmonengine/meshbool/apply"
	"github.com/akmonengine/meshbool/arena"
	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/classify"
	"github.com/akmonengine/meshbool/meshmodel"
	"github.com/akmonengine/meshbool/partition"
	"github.com/akmonengine/meshbool/retess"
	"github.com/akmonengine/meshbool/spatial"
	"github.com/akmonengine/meshbool/xsect"
)

// Boolean implements spec.md §6's entry point: classify faces by side,
// build coplanar parts per side, overlap-query part AABBs, intersect every
// overlapping pair, retessellate, commit, then (unless op is OpNone)
// classify the result by generalized winding number and commit the
// remove/flip decisions. Returns whether the host mesh was modified.
func Boolean(host meshmodel.HostMesh, sidePredicate meshmodel.SidePredicate, opts ...Option) (changed bool, err error) {
	cfg := newConfig(opts)
	ar := arena.New()
	defer ar.Release()

	cfg.tracer.Trace("boolmesh: phase 1, classify faces by side")
	facesA, facesB := splitBySide(host, sidePredicate, cfg.useSelf)
	tagSideFlags(host, facesA, facesB, cfg.useSelf)

	partsA := partition.BuildPartSet(host, cfg.eps, facesA)
	ar.Track(len(partsA.Parts))

	allParts := append([]*partition.MeshPart(nil), partsA.Parts...)
	numA := len(partsA.Parts)
	if !cfg.useSelf {
		partsB := partition.BuildPartSet(host, cfg.eps, facesB)
		ar.Track(len(partsB.Parts))
		allParts = append(allParts, partsB.Parts...)
	}

	change := changeset.NewMeshChange(host, true)
	uf := newUnionFind(len(allParts))
	looseVerts := make([][]int, len(allParts))
	looseEdges := make([][]int, len(allParts))

	cfg.tracer.Trace("boolmesh: phase 2, part-pair intersection")
	xopts := xsect.Options{Log: cfg.tracer.Trace}

	boxes := make([]spatial.AABB, len(allParts))
	for i, p := range allParts {
		boxes[i] = p.AABB()
	}
	overlap := spatial.NewOverlapIndex(boxes)

	for _, pair := range overlap.AllPairs() {
		if !cfg.useSelf && sameSide(pair.A, pair.B, numA) {
			continue // cross-side pairs only; each side is assumed non-self-intersecting
		}
		a, b := allParts[pair.A], allParts[pair.B]
		rec := xsect.IntersectParts(host, change, a, pair.A, b, pair.B, cfg.eps, xopts)

		if partition.PlanesCoplanar(a.Plane, b.Plane, cfg.eps) && !cfg.useSeparate {
			uf.union(pair.A, pair.B)
			ar.Track(1)
			continue
		}
		looseVerts[pair.A] = append(looseVerts[pair.A], rec.Verts...)
		looseEdges[pair.A] = append(looseEdges[pair.A], rec.Edges...)
		looseVerts[pair.B] = append(looseVerts[pair.B], rec.Verts...)
		looseEdges[pair.B] = append(looseEdges[pair.B], rec.Edges...)
		ar.Track(len(rec.Verts) + len(rec.Edges) + len(rec.Faces))
	}

	cfg.tracer.Trace("boolmesh: phase 3, planar retessellation")
	units := groupUnits(allParts, uf, looseVerts, looseEdges)
	retessOpts := retess.Options{Log: cfg.tracer.Trace}
	for _, u := range units {
		if len(u.Faces) == 0 {
			continue
		}
		result, err := retess.Retessellate(host, change, u, cfg.eps, cfg.cdt, retessOpts)
		if err != nil {
			return false, err
		}
		ar.Track(len(result.NewFaces))
	}

	changedByIntersect := change.Add.TotStagedVert() > 0 ||
		change.Add.TotStagedEdge() > 0 ||
		change.Add.TotStagedFace() > 0 ||
		len(change.Delete.DeletedFaces()) > 0 ||
		len(change.Delete.DeletedEdges()) > 0 ||
		len(change.Delete.DeletedVerts()) > 0

	cfg.tracer.Trace("boolmesh: phase 4, commit intersection and retessellation change")
	if _, err := apply.Commit(host, change, apply.Options{Log: cfg.tracer.Trace}); err != nil {
		return false, err
	}

	if cfg.op == meshmodel.OpNone {
		return changedByIntersect, nil
	}

	cfg.tracer.Trace("boolmesh: phase 5, winding classification")
	result := classify.Classify(host, cfg.op)
	opChange := changeset.NewMeshChange(host, true)
	classify.ApplyDecisions(opChange, result)

	changedByOp := len(opChange.Delete.DeletedFaces()) > 0 || len(opChange.FlipFaces()) > 0

	cfg.tracer.Trace("boolmesh: phase 6, commit classification change")
	if _, err := apply.Commit(host, opChange, apply.Options{Log: cfg.tracer.Trace}); err != nil {
		return changedByIntersect, err
	}

	return changedByIntersect || changedByOp, nil
}

// splitBySide buckets host faces into side A and side B lists, in
// ascending face-index order, per spec.md §6's side_predicate semantics.
// useSelf overrides the predicate entirely, putting every face on side A
// (a single combined part set, per spec.md §3's "all" PartSet).
func splitBySide(host meshmodel.IMesh, sidePredicate meshmodel.SidePredicate, useSelf bool) (facesA, facesB []int) {
	n := host.TotFace()
	if useSelf {
		facesA = make([]int, n)
		for i := range facesA {
			facesA[i] = i
		}
		return facesA, nil
	}
	for f := 0; f < n; f++ {
		switch sidePredicate(f) {
		case meshmodel.SideA:
			facesA = append(facesA, f)
		case meshmodel.SideB:
			facesB = append(facesB, f)
		}
	}
	return facesA, facesB
}

func sameSide(a, b, numA int) bool {
	return (a < numA) == (b < numA)
}

// tagSideFlags stamps each original face's base side bit onto the host
// before any part is built, so the change applier's side-flag
// consolidation (spec.md §4.7 phase 3) and the winding classifier (spec.md
// §4.8) have something to read. useSelf sets both bits on every face
// (spec.md §6: "puts every face on both sides").
func tagSideFlags(host meshmodel.HostMesh, facesA, facesB []int, useSelf bool) {
	if useSelf {
		for _, f := range facesA {
			host.SetSideFlag(f, meshmodel.SideMaskA|meshmodel.SideMaskB)
		}
		return
	}
	for _, f := range facesA {
		host.SetSideFlag(f, meshmodel.SideMaskA)
	}
	for _, f := range facesB {
		host.SetSideFlag(f, meshmodel.SideMaskB)
	}
}

// groupUnits folds every union-find group of parts into one retess.Unit,
// concatenating their faces and whatever loose intersection geometry was
// attributed to any part in the group (spec.md §4.5's coplanar-merge mode:
// two coincident parts retessellate together as one unit, spec.md §8's
// coincident-quad scenario). Units are returned ordered by their group's
// lowest part id for determinism.
func groupUnits(parts []*partition.MeshPart, uf *unionFind, looseVerts, looseEdges [][]int) []retess.Unit {
	byRoot := make(map[int][]int)
	for i := range parts {
		root := uf.find(i)
		byRoot[root] = append(byRoot[root], i)
	}

	roots := make([]int, 0, len(byRoot))
	for r := range byRoot {
		roots = append(roots, r)
	}
	sort.Ints(roots)

	units := make([]retess.Unit, 0, len(roots))
	for _, root := range roots {
		members := byRoot[root]
		sort.Ints(members)

		u := retess.Unit{Plane: parts[members[0]].Plane}
		for _, id := range members {
			u.Faces = append(u.Faces, parts[id].Faces.Values()...)
			u.Verts = append(u.Verts, parts[id].Verts.Values()...)
			u.Edges = append(u.Edges, parts[id].Edges.Values()...)
			u.Verts = append(u.Verts, looseVerts[id]...)
			u.Edges = append(u.Edges, looseEdges[id]...)
		}
		sort.Ints(u.Faces)
		units = append(units, u)
	}
	return units
}
