package spatial

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAABB_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{
			name: "separated on X",
			a:    AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:    AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}},
			want: false,
		},
		{
			name: "touching at a face",
			a:    AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			b:    AABB{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}},
			want: true,
		},
		{
			name: "fully contained",
			a:    AABB{Min: mgl64.Vec3{-5, -5, -5}, Max: mgl64.Vec3{5, 5, 5}},
			b:    AABB{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAABB_InflateAndUnion(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	inflated := a.Inflate(0.1)
	if inflated.Min.X() != -0.1 || inflated.Max.X() != 1.1 {
		t.Fatalf("Inflate() = %+v", inflated)
	}

	b := AABB{Min: mgl64.Vec3{2, 2, 2}, Max: mgl64.Vec3{3, 3, 3}}
	u := a.Union(b)
	if u.Min != (mgl64.Vec3{0, 0, 0}) || u.Max != (mgl64.Vec3{3, 3, 3}) {
		t.Fatalf("Union() = %+v", u)
	}
}

func TestCoordTree_FindCoEps(t *testing.T) {
	pts := []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 0.0005, 0},
		{5, 5, 5},
	}
	tree := NewCoordTree(pts)

	// Two points (1 and 2) are within eps of the query; the minimum index
	// must win (spec.md §4.2: find_co_eps returns the minimum-index hit).
	got := tree.FindCoEps(mgl64.Vec3{1, 0, 0}, 0.001)
	if got != 1 {
		t.Fatalf("FindCoEps = %d, want 1", got)
	}

	if got := tree.FindCoEps(mgl64.Vec3{100, 100, 100}, 0.001); got != NotFoundIndex {
		t.Fatalf("FindCoEps(far point) = %d, want NotFoundIndex", got)
	}
}

func TestOverlapIndex_AllPairs(t *testing.T) {
	boxes := []AABB{
		{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
		{Min: mgl64.Vec3{0.5, 0, 0}, Max: mgl64.Vec3{1.5, 1, 1}},
		{Min: mgl64.Vec3{10, 10, 10}, Max: mgl64.Vec3{11, 11, 11}},
	}
	idx := NewOverlapIndex(boxes)
	pairs := idx.AllPairs()
	if len(pairs) != 1 || pairs[0] != (Pair{A: 0, B: 1}) {
		t.Fatalf("AllPairs() = %v, want [{0 1}]", pairs)
	}
}

func TestPlaneTree_RangeSearch(t *testing.T) {
	tree := NewPlaneTree()
	tree.Insert(Plane4{Normal: mgl64.Vec3{0, 0, 1}, Offset: 0}, 0)
	tree.Insert(Plane4{Normal: mgl64.Vec3{0, 0, 1}, Offset: 5}, 1)
	tree.Insert(Plane4{Normal: mgl64.Vec3{1, 0, 0}, Offset: 0}, 2)

	var hits []int
	tree.RangeSearch(Plane4{Normal: mgl64.Vec3{0, 0, 1}, Offset: 0.01}, 1.0, func(owner int, _ Plane4) {
		hits = append(hits, owner)
	})
	if len(hits) != 1 || hits[0] != 0 {
		t.Fatalf("RangeSearch hits = %v, want [0]", hits)
	}
}
