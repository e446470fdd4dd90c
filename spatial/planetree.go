package spatial

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane4 is a canonicalized plane key: unit normal plus signed offset,
// stored as a 4-vector (nx, ny, nz, d) for the 4-D spatial index spec.md
// §4.4 step 1 asks for. Canonicalization (negating so the first non-zero of
// (d, c, b, a) is non-positive) is the caller's job — partition.CanonicalPlane
// — so PlaneTree only ever indexes already-canonical keys.
type Plane4 struct {
	Normal mgl64.Vec3
	Offset float64
}

func (p Plane4) component(axis int) float64 {
	switch axis {
	case 0:
		return p.Normal.X()
	case 1:
		return p.Normal.Y()
	case 2:
		return p.Normal.Z()
	default:
		return p.Offset
	}
}

// PlaneTree is a 4-D k-d tree over canonicalized face planes, used by
// partition to find coplanarity candidates within 10·eps (spec.md §4.4
// step 2): the 4-D Euclidean metric under-approximates plane equivalence,
// so candidates found by range search still need the caller's tolerant
// dot-product/offset test, PlaneTree only narrows the candidate set.
// Built incrementally (one Insert per face, in face order) rather than
// batch-built like CoordTree, since part construction inserts as it
// iterates faces rather than knowing the full plane set up front.
type PlaneTree struct {
	planes []Plane4
	owner  []int // owner[i] is the part index owning planes[i]
	nodes  []pt4Node
	root   int
}

type pt4Node struct {
	planeIdx    int
	axis        int
	left, right int
}

// NewPlaneTree returns an empty tree.
func NewPlaneTree() *PlaneTree {
	return &PlaneTree{root: -1}
}

// Insert adds plane with its owning part index and rebalances by full
// rebuild. Part sets hold at most a few hundred planes in practice (one per
// coplanar group, not per face), so a rebuild-on-insert k-d tree stays cheap
// and keeps the implementation simple and obviously deterministic.
func (t *PlaneTree) Insert(p Plane4, ownerIdx int) {
	t.planes = append(t.planes, p)
	t.owner = append(t.owner, ownerIdx)
	t.rebuild()
}

func (t *PlaneTree) rebuild() {
	order := make([]int, len(t.planes))
	for i := range order {
		order[i] = i
	}
	t.nodes = make([]pt4Node, 0, len(t.planes))
	t.root = t.build(order, 0)
}

func (t *PlaneTree) build(order []int, depth int) int {
	if len(order) == 0 {
		return -1
	}
	axis := depth % 4
	sort.Slice(order, func(i, j int) bool {
		return t.planes[order[i]].component(axis) < t.planes[order[j]].component(axis)
	})
	mid := len(order) / 2
	nodeIdx := len(t.nodes)
	t.nodes = append(t.nodes, pt4Node{planeIdx: order[mid], axis: axis, left: -1, right: -1})
	left := t.build(append([]int(nil), order[:mid]...), depth+1)
	right := t.build(append([]int(nil), order[mid+1:]...), depth+1)
	t.nodes[nodeIdx].left = left
	t.nodes[nodeIdx].right = right
	return nodeIdx
}

// RangeSearch invokes visit(ownerPartIdx, plane) for every indexed plane
// within radius of p under the 4-D Euclidean norm.
func (t *PlaneTree) RangeSearch(p Plane4, radius float64, visit func(ownerPartIdx int, plane Plane4)) {
	t.search(t.root, p, radius, visit)
}

func (t *PlaneTree) search(nodeIdx int, p Plane4, radius float64, visit func(int, Plane4)) {
	if nodeIdx < 0 {
		return
	}
	node := t.nodes[nodeIdx]
	candidate := t.planes[node.planeIdx]
	if plane4Dist(candidate, p) <= radius {
		visit(t.owner[node.planeIdx], candidate)
	}

	axis := node.axis
	c := p.component(axis)
	pc := candidate.component(axis)
	if c-radius <= pc {
		t.search(node.left, p, radius, visit)
	}
	if c+radius >= pc {
		t.search(node.right, p, radius, visit)
	}
}

// plane4Dist returns the linear 4-D Euclidean distance between a and b, so
// it compares directly against the linear radius RangeSearch and its axis
// pruning both use.
func plane4Dist(a, b Plane4) float64 {
	dn := a.Normal.Sub(b.Normal)
	dd := a.Offset - b.Offset
	return math.Sqrt(dn.Dot(dn) + dd*dd)
}
