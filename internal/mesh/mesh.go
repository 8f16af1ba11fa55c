package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"tilecollider/internal/physics"
)

// BlockVertexCount is the number of vertices per collider block.
const BlockVertexCount = 8

// Mesh is the shared geometry object the collider builder rebuilds in place.
// The render side reads Vertices/Indices; the physics side queries the
// cooked data produced by a Baker. An empty mesh means no collider exists.
type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint32

	version uint64
	cooked  *Cooked
}

// Clear drops the geometry and any cooked data.
func (m *Mesh) Clear() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.cooked = nil
	m.version++
}

// SetGeometry replaces the mesh contents with copies of the given buffers.
// Cooked data is invalidated until the next bake.
func (m *Mesh) SetGeometry(verts []mgl32.Vec3, indices []uint32) {
	m.Vertices = append(m.Vertices[:0], verts...)
	m.Indices = append(m.Indices[:0], indices...)
	m.cooked = nil
	m.version++
}

// Empty reports whether the mesh carries no geometry.
func (m *Mesh) Empty() bool {
	return len(m.Vertices) == 0
}

// Version increases on every Clear/SetGeometry. Render code uses it to
// decide when to re-upload vertex buffers.
func (m *Mesh) Version() uint64 {
	return m.version
}

// Cooked returns the physics data from the last bake, or nil if the mesh
// has not been baked since its geometry changed.
func (m *Mesh) Cooked() *Cooked {
	return m.cooked
}

// Cooked is the physics-side view of a baked mesh: one bounding box per
// collider block plus the overall bounds.
type Cooked struct {
	Bounds      physics.AABB
	BlockBounds []physics.AABB
}

// Collides reports whether the box overlaps any collider block.
func (c *Cooked) Collides(box physics.AABB) bool {
	if !c.Bounds.Overlaps(box) {
		return false
	}
	for _, b := range c.BlockBounds {
		if b.Overlaps(box) {
			return true
		}
	}
	return false
}

// cook derives the physics data from the mesh geometry. Vertices arrive in
// runs of BlockVertexCount per collider block.
func cook(m *Mesh) *Cooked {
	if m.Empty() {
		return nil
	}
	blocks := len(m.Vertices) / BlockVertexCount
	cooked := &Cooked{
		Bounds:      physics.BoundsOf(m.Vertices),
		BlockBounds: make([]physics.AABB, 0, blocks),
	}
	for i := 0; i < blocks; i++ {
		run := m.Vertices[i*BlockVertexCount : (i+1)*BlockVertexCount]
		cooked.BlockBounds = append(cooked.BlockBounds, physics.BoundsOf(run))
	}
	return cooked
}
