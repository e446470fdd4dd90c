package retess

// Point2 is a 2-D coordinate in the part's projected frame.
type Point2 struct{ X, Y float64 }

// Sub is used throughout earclip's geometric predicates.
func (p Point2) Sub(o Point2) Point2 { return Point2{p.X - o.X, p.Y - o.Y} }

func cross2(a, b Point2) float64 { return a.X*b.Y - a.Y*b.X }

// CDTEdge is one constrained edge, given as indices into CDTInput.Points.
type CDTEdge struct {
	V0, V1 int
}

// CDTFace is one input polygon loop (indices into CDTInput.Points, wound
// consistently with the part's normal per spec.md §4.6 step 3), used only
// to assign output-triangle provenance by coverage, not as a triangulation
// constraint beyond its boundary edges.
type CDTFace struct {
	Verts []int
}

// CDTInput is everything the external constrained Delaunay triangulator
// (spec.md §6, explicitly out of scope per spec.md §1) needs: the part's
// projected vertices, its constrained edges, and its polygon faces.
type CDTInput struct {
	Points []Point2
	Edges  []CDTEdge
	Faces  []CDTFace
	Eps    float64
}

// CDTOutVert is one output vertex: its position and the input point
// indices that collapsed into it (spec.md §4.6 step 4: "either originates
// from one or more input vertices or is new"). Empty Originals means a
// genuinely new (Steiner) vertex.
type CDTOutVert struct {
	Point     Point2
	Originals []int
}

// CDTOutEdge is one output edge (output-vertex indices) plus the input
// edge indices (into CDTInput.Edges) whose constraint it satisfies, in the
// order the underlying constraints were supplied — the caller picks the
// lowest-indexed input original per spec.md's tie-break rule.
type CDTOutEdge struct {
	V0, V1    int
	Originals []int
}

// CDTOutFace is one output triangle (output-vertex indices, wound
// consistently with the input faces) plus the input face indices (into
// CDTInput.Faces) whose region covers it. More than one original here is
// the "other_examples" case: two coincident input faces from opposite
// sides of a coplanar merge both covering the same output triangle.
type CDTOutFace struct {
	Verts     []int
	Originals []int
}

// CDTOutput is the full "valid-mesh" result spec.md §4.6 step 3 asks for:
// a planar subdivision in which every constraint is an edge and every face
// is bounded.
type CDTOutput struct {
	Verts []CDTOutVert
	Edges []CDTOutEdge
	Faces []CDTOutFace
}

// CDT is the external constrained-triangulation primitive spec.md §6
// requires and §1 declares out of scope for this core; retess depends only
// on this interface so a real CDT package can be substituted without
// touching the retessellator.
type CDT interface {
	Triangulate(input CDTInput) (CDTOutput, error)
}
