package retess

import (
	"math"
	"sort"
)

// Earclip is the default CDT implementation: incremental Bowyer-Watson
// Delaunay triangulation of the point set followed by Sloan-style
// constraint-edge recovery via diagonal flipping. It does not claim
// Delaunay optimality once constraints are recovered — only validity,
// which is all spec.md §4.6 step 3 asks of the external primitive
// ("a planar subdivision in which every constraint is an edge and every
// face is bounded"). No example/library in the retrieval pack implements
// or imports a CDT (see DESIGN.md); this is the stdlib fallback the
// interface boundary exists to make swappable.
type Earclip struct {
	// MaxFlipIterations bounds the diagonal-flip recovery loop per
	// constrained edge. Zero uses a sane default. A constraint that can't
	// be recovered within the bound is left unresolved and reported via
	// a returned *UnresolvedConstraintsError, matching
	// spec.md §7's "open-case encountered: log and produce no
	// intersection geometry for that face pair" treatment - the caller
	// decides whether to skip the part or proceed with a best-effort mesh.
	MaxFlipIterations int
}

// Triangulate implements CDT.
func (e Earclip) Triangulate(input CDTInput) (CDTOutput, error) {
	maxIter := e.MaxFlipIterations
	if maxIter <= 0 {
		maxIter = 4096
	}
	b := newBuilder(input, maxIter)
	b.insertAllPoints()
	b.stripSuperTriangle()
	unresolved := b.recoverConstraints()
	out := b.buildOutput()
	if len(unresolved) > 0 {
		return out, &UnresolvedConstraintsError{Count: len(unresolved)}
	}
	return out, nil
}

// UnresolvedConstraintsError reports that one or more constrained edges
// could not be recovered by diagonal flipping within the iteration budget
// (spec.md §7 open case; the mesh is still returned, best-effort).
type UnresolvedConstraintsError struct{ Count int }

func (e *UnresolvedConstraintsError) Error() string {
	return "retess: earclip could not recover all constrained edges"
}

// tri is one triangle, vertex indices into builder.pts, CCW.
type tri struct{ a, b, c int }

func (t tri) edges() [3][2]int {
	return [3][2]int{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}}
}

func (t tri) hasVert(v int) bool { return t.a == v || t.b == v || t.c == v }

type builder struct {
	input   CDTInput
	eps     float64
	maxIter int

	pts       []Point2
	originals [][]int // pts[i] <- input point ranks that merged into it
	superBase int      // index of the first of the 3 super-triangle verts

	tris []tri

	// pointRank maps an input point rank to its builder vertex index.
	pointRank []int
}

func newBuilder(input CDTInput, maxIter int) *builder {
	eps := input.Eps
	if eps <= 0 {
		eps = 1e-9
	}
	return &builder{
		input:     input,
		eps:       eps,
		maxIter:   maxIter,
		pointRank: make([]int, len(input.Points)),
	}
}

func (b *builder) insertAllPoints() {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range b.input.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(b.input.Points) == 0 {
		minX, minY, maxX, maxY = -1, -1, 1, 1
	}
	dx := maxX - minX
	dy := maxY - minY
	span := math.Max(dx, dy)
	if span <= 0 {
		span = 1
	}
	mid := Point2{(minX + maxX) / 2, (minY + maxY) / 2}
	margin := span * 20

	// Seed the cavity-insertion triangulation with a super-triangle at
	// indices 0-2, the only triangle b.tris has to start from.
	// remapSuperTriangleToEnd moves it to the top 3 indices once every
	// real point has been placed, so the rest of the builder can assume
	// real points occupy 0..superBase-1 and the super-triangle follows.
	b.pts = append(b.pts,
		Point2{mid.X - margin, mid.Y - margin},
		Point2{mid.X + margin, mid.Y - margin},
		Point2{mid.X, mid.Y + margin},
	)
	b.originals = append(b.originals, nil, nil, nil)
	b.tris = append(b.tris, tri{0, 1, 2})

	for rank, p := range b.input.Points {
		b.pointRank[rank] = b.insertPoint(p, rank)
	}

	b.remapSuperTriangleToEnd()
}

// superTriSize is the number of seed vertices insertAllPoints appends
// before any real point; real points are inserted at indices >= this
// until remapSuperTriangleToEnd moves the seed out of the way.
const superTriSize = 3

// insertPoint dedups against already-placed real points within eps (L2,
// plane projected) before falling back to a true Bowyer-Watson cavity
// insertion, matching spec.md §4.6 step 4's "deduped by coordinate within
// eps". Indices below superTriSize are the super-triangle seed and are
// never a dedup target.
func (b *builder) insertPoint(p Point2, rank int) int {
	for i := superTriSize; i < len(b.pts); i++ {
		d := p.Sub(b.pts[i])
		if math.Hypot(d.X, d.Y) <= b.eps {
			b.originals[i] = append(b.originals[i], rank)
			return i
		}
	}

	idx := len(b.pts)
	b.pts = append(b.pts, p)
	b.originals = append(b.originals, []int{rank})

	var bad []int
	for i, t := range b.tris {
		if b.inCircumcircle(t, p) {
			bad = append(bad, i)
		}
	}
	if len(bad) == 0 {
		// Numerically degenerate (on an existing circumcircle boundary);
		// fall back to the triangle containing p.
		for i, t := range b.tris {
			if b.pointInTri(t, p) {
				bad = []int{i}
				break
			}
		}
	}

	type edgeDir struct{ u, v int }
	count := make(map[edgeDir]int)
	badSet := make(map[int]bool, len(bad))
	for _, bi := range bad {
		badSet[bi] = true
	}
	for _, bi := range bad {
		for _, e := range b.tris[bi].edges() {
			count[edgeDir{e[0], e[1]}]++
		}
	}

	var boundary [][2]int
	for e, c := range count {
		if c != 1 {
			continue
		}
		if _, rev := count[edgeDir{e.v, e.u}]; rev {
			continue
		}
		boundary = append(boundary, [2]int{e.u, e.v})
	}

	remaining := b.tris[:0:0]
	for i, t := range b.tris {
		if !badSet[i] {
			remaining = append(remaining, t)
		}
	}
	b.tris = remaining

	for _, e := range boundary {
		b.tris = append(b.tris, tri{e[0], e[1], idx})
	}
	return idx
}

// remapSuperTriangleToEnd moves the super-triangle's 3 seed vertices
// (inserted at 0-2 so insertPoint's cavity algorithm has a triangle to
// start from) to the top 3 indices, compacting the deduped real points
// down to 0..real-1 in their original insertion order, and sets superBase
// to the real point count. stripSuperTriangle and buildOutput assume this
// layout: real points first, super-triangle last.
func (b *builder) remapSuperTriangleToEnd() {
	total := len(b.pts)
	real := total - superTriSize

	mapping := make([]int, total)
	mapping[0], mapping[1], mapping[2] = real, real+1, real+2
	for old := superTriSize; old < total; old++ {
		mapping[old] = old - superTriSize
	}

	newPts := make([]Point2, total)
	newOriginals := make([][]int, total)
	for old, nw := range mapping {
		newPts[nw] = b.pts[old]
		newOriginals[nw] = b.originals[old]
	}
	b.pts = newPts
	b.originals = newOriginals

	for i, t := range b.tris {
		b.tris[i] = tri{mapping[t.a], mapping[t.b], mapping[t.c]}
	}
	for i, r := range b.pointRank {
		b.pointRank[i] = mapping[r]
	}
	b.superBase = real
}

// inCircumcircle reports whether p lies strictly inside t's circumcircle,
// assuming t is CCW-wound.
func (b *builder) inCircumcircle(t tri, p Point2) bool {
	a, bb, c := b.pts[t.a], b.pts[t.b], b.pts[t.c]
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := bb.X-p.X, bb.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y
	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	return det > b.eps*b.eps
}

func (b *builder) pointInTri(t tri, p Point2) bool {
	a, bb, c := b.pts[t.a], b.pts[t.b], b.pts[t.c]
	d1 := orient(a, bb, p)
	d2 := orient(bb, c, p)
	d3 := orient(c, a, p)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func orient(a, b, c Point2) float64 {
	return cross2(b.Sub(a), c.Sub(a))
}

// stripSuperTriangle removes every triangle touching one of the 3 synthetic
// bounding vertices.
func (b *builder) stripSuperTriangle() {
	kept := b.tris[:0:0]
	for _, t := range b.tris {
		if t.hasVert(b.superBase) || t.hasVert(b.superBase+1) || t.hasVert(b.superBase+2) {
			continue
		}
		kept = append(kept, t)
	}
	b.tris = kept
}

type undirEdge struct{ u, v int }

func makeUndir(a, bIdx int) undirEdge {
	if a > bIdx {
		a, bIdx = bIdx, a
	}
	return undirEdge{a, bIdx}
}

// hasEdge reports whether any triangle currently has an edge between u, v.
func (b *builder) hasEdge(u, v int) bool {
	key := makeUndir(u, v)
	for _, t := range b.tris {
		for _, e := range t.edges() {
			if makeUndir(e[0], e[1]) == key {
				return true
			}
		}
	}
	return false
}

// trianglesOnEdge returns the indices into b.tris of the (at most two)
// triangles incident to the undirected edge u-v, and their apex vertex
// (the vertex of that triangle not on the edge).
func (b *builder) trianglesOnEdge(u, v int) (idxs []int, apex []int) {
	key := makeUndir(u, v)
	for i, t := range b.tris {
		for _, e := range t.edges() {
			if makeUndir(e[0], e[1]) == key {
				idxs = append(idxs, i)
				apex = append(apex, thirdVert(t, e[0], e[1]))
				break
			}
		}
	}
	return
}

func thirdVert(t tri, u, v int) int {
	switch {
	case t.a != u && t.a != v:
		return t.a
	case t.b != u && t.b != v:
		return t.b
	default:
		return t.c
	}
}

// segmentsProperlyIntersect reports whether segment p1-p2 and q1-q2 cross
// at an interior point of both (not merely touching at a shared endpoint).
func segmentsProperlyIntersect(p1, p2, q1, q2 Point2) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// recoverConstraints ensures every constrained edge in the input appears as
// a triangulation edge, via Sloan-style diagonal flipping, and returns the
// constraint indices it could not recover within the iteration budget.
func (b *builder) recoverConstraints() []int {
	var unresolved []int
	for ci, ce := range b.input.Edges {
		u, v := b.pointRank[ce.V0], b.pointRank[ce.V1]
		if u == v {
			continue
		}
		if !b.recoverOne(u, v) {
			unresolved = append(unresolved, ci)
		}
	}
	return unresolved
}

func (b *builder) recoverOne(u, v int) bool {
	if b.hasEdge(u, v) {
		return true
	}
	pu, pv := b.pts[u], b.pts[v]

	type crossing struct{ a, bb int }
	var queue []crossing
	for _, t := range b.tris {
		for _, e := range t.edges() {
			if e[0] > e[1] {
				continue // consider each undirected edge once
			}
			if e[0] == u || e[0] == v || e[1] == u || e[1] == v {
				continue
			}
			if segmentsProperlyIntersect(pu, pv, b.pts[e[0]], b.pts[e[1]]) {
				queue = append(queue, crossing{e[0], e[1]})
			}
		}
	}

	for iter := 0; len(queue) > 0 && iter < b.maxIter; iter++ {
		cEdge := queue[0]
		queue = queue[1:]

		idxs, apex := b.trianglesOnEdge(cEdge.a, cEdge.bb)
		if len(idxs) != 2 {
			continue // boundary edge, can't flip
		}
		r, s := apex[0], apex[1]

		if !segmentsProperlyIntersect(b.pts[r], b.pts[s], b.pts[cEdge.a], b.pts[cEdge.bb]) {
			// Quad r-a-s-b isn't convex across this diagonal; defer.
			queue = append(queue, cEdge)
			continue
		}

		b.flipEdge(idxs[0], idxs[1], cEdge.a, cEdge.bb, r, s)

		if makeUndir(r, s) == makeUndir(u, v) {
			continue
		}
		if segmentsProperlyIntersect(pu, pv, b.pts[r], b.pts[s]) {
			queue = append(queue, crossing{r, s})
		}
	}

	return b.hasEdge(u, v)
}

// flipEdge replaces the shared diagonal a-b of triangles ti, tj (apexes r,
// s respectively) with diagonal r-s.
func (b *builder) flipEdge(ti, tj, a, bb, r, s int) {
	newT1 := tri{r, a, s}
	newT2 := tri{s, bb, r}
	if orient(b.pts[r], b.pts[a], b.pts[s]) < 0 {
		newT1 = tri{r, s, a}
	}
	if orient(b.pts[s], b.pts[bb], b.pts[r]) < 0 {
		newT2 = tri{s, r, bb}
	}
	lo, hi := ti, tj
	if lo > hi {
		lo, hi = hi, lo
	}
	b.tris[lo] = newT1
	b.tris[hi] = newT2
}

// buildOutput assembles the final CDTOutput: output vertices (pts up to
// superBase), output edges (every remaining triangulation edge, tagged
// with whichever constraints it satisfies), and output faces (every
// triangle, tagged with whichever input faces cover its centroid).
func (b *builder) buildOutput() CDTOutput {
	var out CDTOutput
	out.Verts = make([]CDTOutVert, b.superBase)
	for i := 0; i < b.superBase; i++ {
		out.Verts[i] = CDTOutVert{Point: b.pts[i], Originals: b.originals[i]}
	}

	constraintByEdge := make(map[undirEdge][]int)
	for ci, ce := range b.input.Edges {
		u, v := b.pointRank[ce.V0], b.pointRank[ce.V1]
		constraintByEdge[makeUndir(u, v)] = append(constraintByEdge[makeUndir(u, v)], ci)
	}

	seen := make(map[undirEdge]bool)
	for _, t := range b.tris {
		for _, e := range t.edges() {
			key := makeUndir(e[0], e[1])
			if seen[key] {
				continue
			}
			seen[key] = true
			out.Edges = append(out.Edges, CDTOutEdge{
				V0:        key.u,
				V1:        key.v,
				Originals: constraintByEdge[key],
			})
		}
	}
	sort.Slice(out.Edges, func(i, j int) bool {
		if out.Edges[i].V0 != out.Edges[j].V0 {
			return out.Edges[i].V0 < out.Edges[j].V0
		}
		return out.Edges[i].V1 < out.Edges[j].V1
	})

	for _, t := range b.tris {
		centroid := Point2{
			X: (b.pts[t.a].X + b.pts[t.b].X + b.pts[t.c].X) / 3,
			Y: (b.pts[t.a].Y + b.pts[t.b].Y + b.pts[t.c].Y) / 3,
		}
		var originals []int
		for fi, f := range b.input.Faces {
			if polygonContains(b.input.Points, b.pointRanksToPts(f.Verts), centroid) {
				originals = append(originals, fi)
			}
		}
		out.Faces = append(out.Faces, CDTOutFace{
			Verts:     []int{t.a, t.b, t.c},
			Originals: originals,
		})
	}
	return out
}

func (b *builder) pointRanksToPts(ranks []int) []Point2 {
	pts := make([]Point2, len(ranks))
	for i, r := range ranks {
		pts[i] = b.input.Points[r]
	}
	return pts
}

// polygonContains reports whether p lies inside the polygon poly (even-odd
// ray casting rule), used only to assign output-triangle provenance by
// coverage against each input face's boundary.
func polygonContains(_ []Point2, poly []Point2, p Point2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xint := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xint {
				inside = !inside
			}
		}
	}
	return inside
}
