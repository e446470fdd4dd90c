package classify

import (
	"sort"

	"github.com/akmonengine/meshbool/meshmodel"
)

// unionFind is a minimal array-based disjoint-set over face indices,
// path-compressing on find and unioning by attaching the higher root to
// the lower one so the lowest face index in a group is always its root
// (giving buildGroups a deterministic representative for free).
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		uf.parent[rb] = ra
	} else {
		uf.parent[ra] = rb
	}
}

// Group is one edge-connected face component sharing a single side mask.
type Group struct {
	Faces []int // ascending host face indices
	Side  meshmodel.SideMask
}

// buildGroups implements spec.md §4.8's grouping rule: two faces are in the
// same group iff every shared edge's radial fan of incident faces all carry
// the identical side flag. A loop may be traversed across an edge only when
// no face in that edge's fan disagrees with the rest.
func buildGroups(host Host) []Group {
	n := host.TotFace()
	uf := newUnionFind(n)

	edgeFaces := make(map[int][]int)
	for f := 0; f < n; f++ {
		ln := host.FaceLen(f)
		for i := 0; i < ln; i++ {
			e := host.FaceEdge(f, i)
			if e == NotFound {
				continue
			}
			edgeFaces[e] = append(edgeFaces[e], f)
		}
	}

	for _, faces := range edgeFaces {
		if len(faces) < 2 {
			continue
		}
		flag0 := host.SideFlag(faces[0])
		same := true
		for _, f := range faces[1:] {
			if host.SideFlag(f) != flag0 {
				same = false
				break
			}
		}
		if !same {
			continue
		}
		for _, f := range faces[1:] {
			uf.union(faces[0], f)
		}
	}

	byRoot := make(map[int][]int)
	for f := 0; f < n; f++ {
		root := uf.find(f)
		byRoot[root] = append(byRoot[root], f)
	}

	roots := make([]int, 0, len(byRoot))
	for r := range byRoot {
		roots = append(roots, r)
	}
	sort.Ints(roots)

	groups := make([]Group, 0, len(roots))
	for _, root := range roots {
		faces := byRoot[root]
		sort.Ints(faces)
		groups = append(groups, Group{Faces: faces, Side: host.SideFlag(faces[0])})
	}
	return groups
}
