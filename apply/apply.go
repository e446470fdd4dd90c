package apply

import (
	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/meshmodel"
)

// Options configures Commit; the zero value is usable.
type Options struct {
	// Log receives a progress note for each phase, for tracing. Nil is a
	// valid no-op logger.
	Log func(string)
}

func (o Options) log(msg string) {
	if o.Log != nil {
		o.Log(msg)
	}
}

// Result reports the index renumbering Reindex produced, old host index ->
// new (meshmodel.NotFound for a removed element), one slice per element
// kind.
type Result struct {
	VertMap []int
	EdgeMap []int
	FaceMap []int
}

// Commit materializes change onto host, phase by phase, per spec.md §4.7.
// The phased order is mandatory: new elements must never reference a
// deleted original, and side-flag tags must be recoverable after Reindex
// renumbers faces.
func Commit(host meshmodel.HostMesh, change *changeset.MeshChange, opts Options) (Result, error) {
	add := change.Add
	hostTotVert := host.TotVert()
	hostTotEdge := host.TotEdge()
	hostTotFace := host.TotFace()

	// Phase 1: create new vertices, remembering extended index -> host
	// handle. Original indices map to themselves until Reindex runs.
	opts.log("apply: phase 1, create vertices")
	vertHandle := make([]int, hostTotVert+add.TotStagedVert())
	for i := 0; i < hostTotVert; i++ {
		vertHandle[i] = i
	}
	for i := 0; i < add.TotStagedVert(); i++ {
		ext := hostTotVert + i
		vertHandle[ext] = host.CreateVert(add.VertCo(ext), add.VertExample(ext))
	}

	resolveVert := func(ext int) (int, error) {
		canonical, err := change.ResolveMerge(ext)
		if err != nil {
			return 0, err
		}
		return vertHandle[canonical], nil
	}

	// Phase 2: create new edges. Endpoints in the original range are first
	// passed through resolve_merge.
	opts.log("apply: phase 2, create edges")
	edgeHandle := make([]int, hostTotEdge+add.TotStagedEdge())
	for i := 0; i < hostTotEdge; i++ {
		edgeHandle[i] = i
	}
	for i := 0; i < add.TotStagedEdge(); i++ {
		ext := hostTotEdge + i
		v1, v2 := add.EdgeVerts(ext)
		hv1, err := resolveVert(v1)
		if err != nil {
			return Result{}, err
		}
		hv2, err := resolveVert(v2)
		if err != nil {
			return Result{}, err
		}
		edgeHandle[ext] = host.CreateEdge(hv1, hv2, add.EdgeExample(ext))
	}

	// Phase 3: create new faces, resolving vert merges and looking up edge
	// handles by extended index, consolidating side flags from every
	// example face and tagging opposite normals.
	opts.log("apply: phase 3, create faces")
	faceHandle := make([]int, hostTotFace+add.TotStagedFace())
	for i := 0; i < hostTotFace; i++ {
		faceHandle[i] = i
	}
	for i := 0; i < add.TotStagedFace(); i++ {
		ext := hostTotFace + i

		vertsExt := add.FaceVerts(ext)
		verts := make([]int, len(vertsExt))
		for k, v := range vertsExt {
			hv, err := resolveVert(v)
			if err != nil {
				return Result{}, err
			}
			verts[k] = hv
		}

		edgesExt := add.FaceEdges(ext)
		edges := make([]int, len(edgesExt))
		for k, e := range edgesExt {
			edges[k] = edgeHandle[e]
		}

		example := add.FaceExample(ext)
		hostFace := host.CreateFace(verts, edges, example)
		faceHandle[ext] = hostFace

		if example != NotFound {
			examples := append([]int{example}, add.FaceOtherExamples(ext)...)
			var mask meshmodel.SideMask
			for _, ex := range examples {
				mask |= host.SideFlag(ex)
			}
			for a := 0; a < len(examples); a++ {
				for b := a + 1; b < len(examples); b++ {
					if host.FaceNormal(examples[a]).Dot(host.FaceNormal(examples[b])) < 0 {
						mask |= meshmodel.SideMaskOppNorms
						break
					}
				}
			}
			host.SetSideFlag(hostFace, mask)
		}

		if change.IsFlipped(ext) {
			host.FlipFace(hostFace)
		}
	}

	// Phase 4: flip remaining (original) faces, then delete faces, edges,
	// and vertices in that order so nothing dangling is ever referenced.
	opts.log("apply: phase 4, flip and delete")
	for _, f := range change.FlipFaces() {
		if f < hostTotFace {
			host.FlipFace(faceHandle[f])
		}
	}

	for _, f := range change.Delete.DeletedFaces() {
		host.KillFace(faceHandle[f], change.KillLoose)
	}
	for _, e := range change.Delete.DeletedEdges() {
		host.KillEdge(edgeHandle[e])
	}
	for _, v := range change.Delete.DeletedVerts() {
		host.KillVert(vertHandle[v])
	}

	// Phase 5: reindex. The host's own Reindex carries per-face side-flag
	// tags through compaction, satisfying "rebuild the side-flag table for
	// the new face count" without a second pass here.
	opts.log("apply: phase 5, reindex")
	vertMap, edgeMap, faceMap := host.Reindex()

	return Result{VertMap: vertMap, EdgeMap: edgeMap, FaceMap: faceMap}, nil
}
