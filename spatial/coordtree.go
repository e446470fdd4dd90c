package spatial

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// CoordTree is a static k-d tree over a fixed set of 3-D points, built once
// per boolean call from the host mesh's vertex positions and used only for
// find_co_eps (spec.md §4.2). It is never updated as new vertices are
// staged — late-stage coincidences among staged geometry are instead caught
// by changeset's linear add-buffer scan (spec.md §4.2, §9 open question).
//
// The bucketed-space idiom follows spatialgrid.go's worldToCell/hashCell
// (pre-sized buckets, deterministic iteration), adapted from a hash grid to
// a k-d tree because RangeSearch must return the minimum original index
// among all points within radius, which recursive subtree pruning gives
// directly without visiting the whole structure.
type CoordTree struct {
	points []mgl64.Vec3
	index  []int // points[i] corresponds to original vertex index[i]
	nodes  []kdNode
}

type kdNode struct {
	axis        int
	pointIdx    int // index into points/index slices
	left, right int // node indices, -1 if absent
}

// NewCoordTree builds a tree over points, where points[i] is the position of
// host vertex i. Building is once-per-call (spec.md §4.2).
func NewCoordTree(points []mgl64.Vec3) *CoordTree {
	t := &CoordTree{
		points: points,
		index:  make([]int, len(points)),
	}
	for i := range points {
		t.index[i] = i
	}
	if len(points) == 0 {
		return t
	}
	t.nodes = make([]kdNode, 0, len(points))
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	t.build(order, 0)
	return t
}

// build constructs the tree recursively over a slice of point-order indices,
// splitting on the median of the current axis, and returns the node index of
// the subtree root (-1 for an empty slice).
func (t *CoordTree) build(order []int, depth int) int {
	if len(order) == 0 {
		return -1
	}
	axis := depth % 3
	sort.Slice(order, func(i, j int) bool {
		return component(t.points[order[i]], axis) < component(t.points[order[j]], axis)
	})
	mid := len(order) / 2
	nodeIdx := len(t.nodes)
	t.nodes = append(t.nodes, kdNode{axis: axis, pointIdx: order[mid], left: -1, right: -1})

	left := t.build(append([]int(nil), order[:mid]...), depth+1)
	right := t.build(append([]int(nil), order[mid+1:]...), depth+1)
	t.nodes[nodeIdx].left = left
	t.nodes[nodeIdx].right = right
	return nodeIdx
}

func component(v mgl64.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X()
	case 1:
		return v.Y()
	default:
		return v.Z()
	}
}

// RangeSearch invokes visit(originalIndex) for every point within eps of co
// under the L∞ norm (spec.md §4.2/§6: vertex-coincidence tests use ε in L∞).
func (t *CoordTree) RangeSearch(co mgl64.Vec3, eps float64, visit func(idx int)) {
	if len(t.nodes) == 0 {
		return
	}
	t.search(0, co, eps, visit)
}

func (t *CoordTree) search(nodeIdx int, co mgl64.Vec3, eps float64, visit func(idx int)) {
	if nodeIdx < 0 {
		return
	}
	node := t.nodes[nodeIdx]
	p := t.points[node.pointIdx]
	if linfDist(p, co) <= eps {
		visit(node.pointIdx)
	}

	c := component(co, node.axis)
	pc := component(p, node.axis)
	// Both subtrees may hold points within eps in L∞ even though the split
	// axis differs from the axes that matter, so descend whichever side is
	// reachable within eps and always probe both when within range.
	if c-eps <= pc {
		t.search(node.left, co, eps, visit)
	}
	if c+eps >= pc {
		t.search(node.right, co, eps, visit)
	}
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

// FindCoEps returns the minimum-index point within eps of co in L∞ norm, or
// NotFoundIndex if none qualifies — find_co_eps, spec.md §4.2.
func (t *CoordTree) FindCoEps(co mgl64.Vec3, eps float64) int {
	best := NotFoundIndex
	t.RangeSearch(co, eps, func(idx int) {
		if best == NotFoundIndex || idx < best {
			best = idx
		}
	})
	return best
}

// NotFoundIndex is the not-found sentinel for index-returning lookups in
// this package (mirrors indexset.NotFound; kept local to avoid a spatial →
// indexset dependency neither side otherwise needs).
const NotFoundIndex = -1
