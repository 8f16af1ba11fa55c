package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"tilecollider/internal/physics"
)

// twoBlockMesh builds a mesh holding two unit-cube vertex runs at x=0 and
// x=3. Indices are irrelevant to cooking and left minimal.
func twoBlockMesh() *Mesh {
	m := &Mesh{}
	var verts []mgl32.Vec3
	for _, base := range []float32{0, 3} {
		for _, v := range [BlockVertexCount]mgl32.Vec3{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		} {
			verts = append(verts, mgl32.Vec3{v.X() + base, v.Y(), v.Z()})
		}
	}
	m.SetGeometry(verts, []uint32{0, 1, 2})
	return m
}

func TestSyncBakerCooks(t *testing.T) {
	m := twoBlockMesh()
	SyncBaker{}.Bake(m)

	cooked := m.Cooked()
	if cooked == nil {
		t.Fatal("mesh not cooked after sync bake")
	}
	if len(cooked.BlockBounds) != 2 {
		t.Fatalf("cooked %d block bounds, want 2", len(cooked.BlockBounds))
	}
	want := physics.AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{4, 1, 1}}
	if cooked.Bounds != want {
		t.Fatalf("overall bounds = %v, want %v", cooked.Bounds, want)
	}
}

func TestBakePoolAwaitsCompletion(t *testing.T) {
	pool := NewBakePool(2)
	defer pool.Close()

	for i := 0; i < 8; i++ {
		m := twoBlockMesh()
		pool.Bake(m)
		// Bake returning is the contract: cooked data must be attached
		// before the caller's next frame.
		if m.Cooked() == nil {
			t.Fatalf("mesh %d not cooked when Bake returned", i)
		}
	}
}

func TestBakePoolCooksInlineAfterClose(t *testing.T) {
	pool := NewBakePool(1)
	pool.Close()

	m := twoBlockMesh()
	pool.Bake(m)
	if m.Cooked() == nil {
		t.Fatal("mesh not cooked by closed pool")
	}
}

func TestBakeEmptyMesh(t *testing.T) {
	m := &Mesh{}
	SyncBaker{}.Bake(m)
	if m.Cooked() != nil {
		t.Fatal("empty mesh produced cooked data")
	}
}

func TestGeometryChangesInvalidateCookAndBumpVersion(t *testing.T) {
	m := twoBlockMesh()
	v1 := m.Version()
	SyncBaker{}.Bake(m)

	m.SetGeometry(m.Vertices, m.Indices)
	if m.Cooked() != nil {
		t.Fatal("cooked data survived SetGeometry")
	}
	if m.Version() == v1 {
		t.Fatal("version unchanged by SetGeometry")
	}

	m.Clear()
	if !m.Empty() {
		t.Fatal("mesh not empty after Clear")
	}
	if m.Cooked() != nil {
		t.Fatal("cooked data survived Clear")
	}
}

func TestCookedCollides(t *testing.T) {
	m := twoBlockMesh()
	SyncBaker{}.Bake(m)
	cooked := m.Cooked()

	tests := []struct {
		name string
		box  physics.AABB
		want bool
	}{
		{"inside first block", physics.AABB{Min: mgl32.Vec3{0.2, 0.2, 0.2}, Max: mgl32.Vec3{0.8, 0.8, 0.8}}, true},
		{"between blocks", physics.AABB{Min: mgl32.Vec3{1.2, 0, 0}, Max: mgl32.Vec3{2.8, 1, 1}}, false},
		{"overlapping second block", physics.AABB{Min: mgl32.Vec3{2.5, 0, 0}, Max: mgl32.Vec3{3.5, 1, 1}}, true},
		{"outside overall bounds", physics.AABB{Min: mgl32.Vec3{10, 10, 10}, Max: mgl32.Vec3{11, 11, 11}}, false},
	}
	for _, tt := range tests {
		if got := cooked.Collides(tt.box); got != tt.want {
			t.Errorf("%s: Collides = %v, want %v", tt.name, got, tt.want)
		}
	}
}
