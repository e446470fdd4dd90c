package meshmodel

import "github.com/go-gl/mathgl/mgl64"

// Op selects the constructive solid geometry operation the engine performs
// after intersection (spec.md §6). OpNone stops after the intersect-and-tag
// phase.
type Op int

const (
	OpNone Op = iota
	OpIntersection
	OpUnion
	OpDifference
)

// String renders Op for diagnostics and test failure messages.
func (op Op) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpIntersection:
		return "isect"
	case OpUnion:
		return "union"
	case OpDifference:
		return "diff"
	default:
		return "unknown"
	}
}

// Side is the per-face classification a SidePredicate returns (spec.md §6).
type Side int

const (
	SideIgnore Side = -1
	SideA      Side = 0
	SideB      Side = 1
)

// SidePredicate maps a host-mesh face index to the side it belongs to.
// use_self overrides the predicate entirely (every face on both sides);
// the predicate itself is never consulted with use_self true (spec.md §6).
type SidePredicate func(face int) Side

// SideMask is the per-face bitmap {A, B, opposite-normals} spec.md §3's
// "Side flags" describes. It is the unit both changeset and classify
// operate on.
type SideMask uint8

const (
	SideMaskA        SideMask = 1 << 0
	SideMaskB        SideMask = 1 << 1
	SideMaskOppNorms SideMask = 1 << 2
)

// HasA reports whether the A bit is set.
func (m SideMask) HasA() bool { return m&SideMaskA != 0 }

// HasB reports whether the B bit is set.
func (m SideMask) HasB() bool { return m&SideMaskB != 0 }

// BothSides reports whether both the A and B bits are set. This is the
// corrected reading of the source's `fside & (SIDE_A & SIDE_B)` — which is
// always `fside & 0` and therefore always false — flagged as a likely bug
// in spec.md §9 and NOT silently fixed there; see DESIGN.md's "Open
// Question decisions" for the recorded confirmation that classify should
// use this reading, `(fside&SIDE_A != 0) && (fside&SIDE_B != 0)`, since the
// §4.8 decision table's "both-sides face" rows are otherwise dead code.
func (m SideMask) BothSides() bool { return m.HasA() && m.HasB() }

// OppNormals reports whether the opposite-normals bit is set.
func (m SideMask) OppNormals() bool { return m&SideMaskOppNorms != 0 }

// Plane is a unit-normal + signed-offset plane equation, face_plane's
// return type (spec.md §4.2) and the input to partition's canonicalization
// (spec.md §4.4 step 1).
type Plane struct {
	Normal mgl64.Vec3
	Offset float64
}

// SignedDistance returns the signed distance from p to the plane.
func (pl Plane) SignedDistance(p mgl64.Vec3) float64 {
	return pl.Normal.Dot(p) + pl.Offset
}
