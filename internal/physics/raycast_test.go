package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"tilecollider/internal/grid"
)

func TestRaycastHitsFirstSolidCell(t *testing.T) {
	solid := func(c grid.Cell) bool { return c == grid.Cell{X: 3, Y: 0, Z: 0} }

	res := Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, 10, solid)
	if !res.Hit {
		t.Fatal("ray along +X missed the solid cell")
	}
	if res.HitCell != (grid.Cell{X: 3, Y: 0, Z: 0}) {
		t.Fatalf("hit cell = %v, want (3,0,0)", res.HitCell)
	}
	if res.AdjacentCell != (grid.Cell{X: 2, Y: 0, Z: 0}) {
		t.Fatalf("adjacent cell = %v, want (2,0,0)", res.AdjacentCell)
	}
	if res.Distance <= 0 || res.Distance > 3 {
		t.Fatalf("hit distance = %v, want in (0,3]", res.Distance)
	}
}

func TestRaycastMiss(t *testing.T) {
	solid := func(grid.Cell) bool { return false }

	res := Raycast(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 0}, 5, solid)
	if res.Hit {
		t.Fatal("ray through empty grid reported a hit")
	}
}

func TestRaycastDiagonal(t *testing.T) {
	target := grid.Cell{X: 4, Y: 4, Z: 0}
	solid := func(c grid.Cell) bool { return c == target }

	res := Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 1, 0}, 20, solid)
	if !res.Hit || res.HitCell != target {
		t.Fatalf("diagonal ray: hit=%v cell=%v, want hit at %v", res.Hit, res.HitCell, target)
	}
}

func TestAABBOverlaps(t *testing.T) {
	unit := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}

	tests := []struct {
		name string
		box  AABB
		want bool
	}{
		{"identical", unit, true},
		{"overlapping corner", AABB{Min: mgl32.Vec3{0.5, 0.5, 0.5}, Max: mgl32.Vec3{2, 2, 2}}, true},
		{"touching face", AABB{Min: mgl32.Vec3{1, 0, 0}, Max: mgl32.Vec3{2, 1, 1}}, false},
		{"disjoint", AABB{Min: mgl32.Vec3{5, 5, 5}, Max: mgl32.Vec3{6, 6, 6}}, false},
	}
	for _, tt := range tests {
		if got := unit.Overlaps(tt.box); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBoundsOf(t *testing.T) {
	verts := []mgl32.Vec3{{1, 2, 3}, {-1, 5, 0}, {4, -2, 2}}
	got := BoundsOf(verts)
	want := AABB{Min: mgl32.Vec3{-1, -2, 0}, Max: mgl32.Vec3{4, 5, 3}}
	if got != want {
		t.Fatalf("BoundsOf = %v, want %v", got, want)
	}
}

func TestAABBContains(t *testing.T) {
	box := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{2, 2, 2}}
	if !box.Contains(mgl32.Vec3{1, 1, 1}) {
		t.Fatal("center not contained")
	}
	if box.Contains(mgl32.Vec3{3, 1, 1}) {
		t.Fatal("outside point contained")
	}
}
