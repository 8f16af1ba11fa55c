package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max mgl32.Vec3
}

// Overlaps reports whether the two boxes intersect. Touching faces do not
// count as an overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X() < b.Max.X() && a.Max.X() > b.Min.X() &&
		a.Min.Y() < b.Max.Y() && a.Max.Y() > b.Min.Y() &&
		a.Min.Z() < b.Max.Z() && a.Max.Z() > b.Min.Z()
}

// Contains reports whether the point lies inside the box.
func (a AABB) Contains(p mgl32.Vec3) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y() &&
		p.Z() >= a.Min.Z() && p.Z() <= a.Max.Z()
}

// Extend grows the box to include the point.
func (a AABB) Extend(p mgl32.Vec3) AABB {
	return AABB{
		Min: mgl32.Vec3{min32(a.Min.X(), p.X()), min32(a.Min.Y(), p.Y()), min32(a.Min.Z(), p.Z())},
		Max: mgl32.Vec3{max32(a.Max.X(), p.X()), max32(a.Max.Y(), p.Y()), max32(a.Max.Z(), p.Z())},
	}
}

// BoundsOf computes the bounding box of a non-empty vertex run.
func BoundsOf(verts []mgl32.Vec3) AABB {
	box := AABB{Min: verts[0], Max: verts[0]}
	for _, v := range verts[1:] {
		box = box.Extend(v)
	}
	return box
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
