package retess

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/meshmodel"
)

// Options configures Retessellate; the zero value is usable.
type Options struct {
	// Log receives a note whenever an open case is hit (spec.md §7: an
	// unresolved constraint from the CDT is logged and the best-effort
	// mesh is used as-is, not treated as a fatal fault). Nil is a valid
	// no-op logger.
	Log func(string)
}

func (o Options) log(msg string) {
	if o.Log != nil {
		o.Log(msg)
	}
}

// Result reports what Retessellate staged, for tracing and tests.
type Result struct {
	NewFaces []int // extended indices of every face staged into change
}

// Retessellate implements spec.md §4.6 end to end for one retessellation
// unit: gather needed elements, project to 2-D, invoke cdt, and map the
// result back into change. All of u.Faces are marked for deletion; their
// replacement geometry is staged fresh.
func Retessellate(host meshmodel.IMesh, change *changeset.MeshChange, u Unit, eps float64, cdt CDT, opts Options) (Result, error) {
	if eps <= 0 {
		eps = 1e-9
	}
	g := gather(host, change.Add, u)
	fr := newFrame(u.Plane)

	input := CDTInput{Eps: eps}
	input.Points = make([]Point2, g.verts.Len())
	for rank := 0; rank < g.verts.Len(); rank++ {
		co := vertCo(host, change.Add, g.verts.ValueAt(rank))
		input.Points[rank] = fr.project(co)
		if rank == 0 {
			fr.restoreZ = fr.zOf(co)
		}
	}

	for rank := 0; rank < g.edges.Len(); rank++ {
		extIdx := g.edges.ValueAt(rank)
		v1, v2 := edgeVertsOf(host, change.Add, extIdx)
		r1, r2 := g.verts.RankOf(v1), g.verts.RankOf(v2)
		if r1 == NotFound || r2 == NotFound {
			continue
		}
		input.Edges = append(input.Edges, CDTEdge{V0: r1, V1: r2})
	}

	for rank := 0; rank < g.faces.Len(); rank++ {
		f := g.faces.ValueAt(rank)
		loop := append([]int(nil), g.faceLoops[rank]...)
		if host.FaceNormal(f).Dot(u.Plane.Normal) < 0 {
			reverse(loop)
		}
		input.Faces = append(input.Faces, CDTFace{Verts: loop})
	}

	output, err := cdt.Triangulate(input)
	if err != nil {
		if _, ok := err.(*UnresolvedConstraintsError); ok {
			opts.log("retess: CDT could not recover all constrained edges; proceeding with best-effort mesh")
		} else {
			return Result{}, err
		}
	}

	return mapBack(host, change, g, fr, u, output, eps, opts)
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// mapBack implements spec.md §4.6 step 4-5: materialize CDT output as
// staged vertices/edges/faces, record vertex merges, and mark originals
// for deletion.
func mapBack(host meshmodel.IMesh, change *changeset.MeshChange, g *gathered, fr frame, u Unit, output CDTOutput, eps float64, opts Options) (Result, error) {
	hostTotVert := host.TotVert()
	outVertExt := make([]int, len(output.Verts))

	for oi, ov := range output.Verts {
		if len(ov.Originals) == 0 {
			pos := fr.unproject(ov.Point)
			outVertExt[oi] = snapOrStage(host, change, pos, eps)
			continue
		}
		extIdxs := make([]int, len(ov.Originals))
		for k, rank := range ov.Originals {
			extIdxs[k] = g.verts.ValueAt(rank)
		}
		canonical := extIdxs[0]
		for _, idx := range extIdxs[1:] {
			if idx < canonical {
				canonical = idx
			}
		}
		outVertExt[oi] = canonical
		for _, idx := range extIdxs {
			if idx == canonical {
				continue
			}
			if idx < hostTotVert {
				if err := change.AddMerge(idx, canonical); err != nil {
					return Result{}, err
				}
				change.Delete.Vert(idx)
			}
		}
	}

	reusedEdge := make(map[int]bool)
	outEdgeExt := make([]int, len(output.Edges))
	edgeExtByRankPair := make(map[[2]int]int)

	for oi, oe := range output.Edges {
		v1, v2 := outVertExt[oe.V0], outVertExt[oe.V1]
		if v1 == v2 {
			continue
		}
		example := NotFound
		for _, ci := range oe.Originals {
			extE := g.edges.ValueAt(ci)
			if example == NotFound || extE < example {
				example = extE
			}
		}

		var edgeExt int
		if example != NotFound {
			exV1, exV2 := edgeVertsOf(host, change.Add, example)
			if (exV1 == v1 && exV2 == v2) || (exV1 == v2 && exV2 == v1) {
				edgeExt = example
				reusedEdge[example] = true
			} else {
				newE, err := change.Add.AddEdge(v1, v2, example)
				if err != nil {
					opts.log("retess: degenerate replacement edge; skipping")
					continue
				}
				edgeExt = newE
			}
		} else {
			newE, err := change.Add.AddEdge(v1, v2, NotFound)
			if err != nil {
				continue
			}
			edgeExt = newE
		}
		outEdgeExt[oi] = edgeExt
		edgeExtByRankPair[rankKey(oe.V0, oe.V1)] = edgeExt
	}

	for _, e := range g.edges.Values() {
		if e < host.TotEdge() && !reusedEdge[e] {
			change.Delete.Edge(e)
		}
	}

	var newFaces []int
	for _, of := range output.Faces {
		if len(of.Verts) < 3 {
			continue
		}
		verts := make([]int, len(of.Verts))
		edges := make([]int, len(of.Verts))
		ok := true
		n := len(of.Verts)
		for i := 0; i < n; i++ {
			verts[i] = outVertExt[of.Verts[i]]
			eIdx, found := edgeExtByRankPair[rankKey(of.Verts[i], of.Verts[(i+1)%n])]
			if !found {
				ok = false
				break
			}
			edges[i] = eIdx
		}
		if !ok {
			opts.log("retess: output face missing a mapped edge; skipping")
			continue
		}
		if verts[0] == verts[1] || hasRepeat(verts) {
			continue
		}

		var originals []int
		for _, fi := range of.Originals {
			originals = append(originals, g.faces.ValueAt(fi))
		}
		if len(originals) == 0 {
			continue
		}
		sort.Ints(originals)
		example := originals[0]
		other := originals[1:]

		newF, err := change.Add.AddFace(verts, edges, example, other)
		if err != nil {
			opts.log("retess: degenerate replacement face; skipping")
			continue
		}
		newFaces = append(newFaces, newF)
	}

	for _, f := range u.Faces {
		change.Delete.Face(f)
	}

	return Result{NewFaces: newFaces}, nil
}

func rankKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func hasRepeat(verts []int) bool {
	seen := make(map[int]bool, len(verts))
	for _, v := range verts {
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}

// snapOrStage mirrors xsect's snapOrStageVert (host CoordTree, then the add
// buffer's own linear scan) for Steiner points the CDT introduces; kept
// local rather than imported from xsect to avoid a retess->xsect dependency
// neither package otherwise needs.
func snapOrStage(host meshmodel.IMesh, change *changeset.MeshChange, co mgl64.Vec3, eps float64) int {
	if hit := host.CoordTree().FindCoEps(co, eps); hit != meshmodel.NotFound {
		return hit
	}
	return change.Add.FindOrAddVert(co, eps, meshmodel.NotFound)
}
