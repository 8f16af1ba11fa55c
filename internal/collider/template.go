package collider

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// BlockVertexCount is the number of vertices appended per occupied cell.
	BlockVertexCount = 8
	// BlockIndexCount is the number of triangle indices appended per occupied
	// cell: 6 faces x 2 triangles x 3 indices.
	BlockIndexCount = 36
)

// blockVertices is the canonical unit-cube template. The min corner sits at
// the origin so a block's geometry spans [cell, cell+size) before the offset
// is applied.
var blockVertices = [BlockVertexCount]mgl32.Vec3{
	{0, 0, 0}, // 0
	{1, 0, 0}, // 1
	{1, 1, 0}, // 2
	{0, 1, 0}, // 3
	{0, 0, 1}, // 4
	{1, 0, 1}, // 5
	{1, 1, 1}, // 6
	{0, 1, 1}, // 7
}

// blockIndices references the template corners with CCW winding for outward
// face normals. Triangle indices for block n are these values plus n*8.
var blockIndices = [BlockIndexCount]uint32{
	// +Z
	4, 5, 6, 6, 7, 4,
	// -Z
	1, 0, 3, 3, 2, 1,
	// -X
	0, 4, 7, 7, 3, 0,
	// +X
	5, 1, 2, 2, 6, 5,
	// +Y
	3, 7, 6, 6, 2, 3,
	// -Y
	0, 1, 5, 5, 4, 0,
}
