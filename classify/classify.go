package classify

import (
	"github.com/akmonengine/meshbool/changeset"
	"github.com/akmonengine/meshbool/meshmodel"
)

// Decision is the remove/flip outcome spec.md §4.8's rule table assigns to
// one group.
type Decision struct {
	Remove bool
	Flip   bool
}

// Result is the full classification of a host mesh's faces: the groups
// found and each one's decision, in the same order.
type Result struct {
	Groups    []Group
	Decisions []Decision
}

// Classify implements spec.md §4.8 end to end: group faces, compute each
// group's generalized winding number against the opposite side (against
// side B for both-sides groups, and skipped for both-sides groups under
// union, which are decided from the opposite-normals bit alone), and apply
// op's remove/flip rule table.
func Classify(host Host, op meshmodel.Op) Result {
	groups := buildGroups(host)
	decisions := make([]Decision, len(groups))
	for i, g := range groups {
		decisions[i] = decide(host, g, op)
	}
	return Result{Groups: groups, Decisions: decisions}
}

func decide(host Host, g Group, op meshmodel.Op) Decision {
	rep := g.Faces[0]
	p := host.FaceInteriorPoint(rep)
	oppNorms := g.Side.OppNormals()

	if g.Side.BothSides() {
		// spec.md §4.8's "both-sides face" rows: a face produced by
		// retessellation merging coincident faces from both operands.
		// Union decides purely from the opposite-normals bit. Difference
		// treats it as a side-A face for removal but flips per
		// opposite-normals instead of the side-B "always flip" rule.
		// Intersection has no row in the table; a coincident boundary
		// face is symmetric under the operands by construction, so it is
		// decided the same way a side-A face would be, against side B.
		switch op {
		case meshmodel.OpUnion:
			return Decision{Remove: oppNorms, Flip: false}
		case meshmodel.OpDifference:
			inside := isInside(host, p, sideFaces(host, meshmodel.SideB))
			return Decision{Remove: inside, Flip: oppNorms}
		default:
			inside := isInside(host, p, sideFaces(host, meshmodel.SideB))
			return Decision{Remove: !inside, Flip: false}
		}
	}

	opposite := meshmodel.SideB
	if g.Side.HasB() {
		opposite = meshmodel.SideA
	}
	inside := isInside(host, p, sideFaces(host, opposite))

	switch op {
	case meshmodel.OpIntersection:
		return Decision{Remove: !inside, Flip: false}
	case meshmodel.OpUnion:
		return Decision{Remove: inside, Flip: false}
	case meshmodel.OpDifference:
		if g.Side.HasA() {
			return Decision{Remove: inside, Flip: false}
		}
		return Decision{Remove: !inside, Flip: true}
	default: // OpNone: no op runs past the intersect-and-tag phase.
		return Decision{Remove: false, Flip: false}
	}
}

// ApplyDecisions stages every group's outcome into change: removed faces
// via the kill-loose deletion path, flipped faces into the flip set
// (spec.md §4.8's closing line).
func ApplyDecisions(change *changeset.MeshChange, result Result) {
	for i, g := range result.Groups {
		d := result.Decisions[i]
		if d.Remove {
			for _, f := range g.Faces {
				change.DeleteFace(f)
			}
		}
		if d.Flip {
			for _, f := range g.Faces {
				change.MarkFlip(f)
			}
		}
	}
}
