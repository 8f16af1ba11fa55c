package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"tilecollider/internal/grid"
	"tilecollider/internal/profiling"
)

// RaycastResult stores the result of a raycast operation.
type RaycastResult struct {
	HitCell      grid.Cell // first solid cell along the ray
	AdjacentCell grid.Cell // last empty cell crossed before the hit
	Distance     float32
	Hit          bool
}

// Raycast walks the cell grid along a ray with a DDA traversal and reports
// the first cell for which solid returns true. The adjacent cell is the one
// the ray crossed just before the hit, which is where a new tile would go.
func Raycast(start, direction mgl32.Vec3, maxDist float32, solid func(grid.Cell) bool) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	dir := direction.Normalize()

	cx := int(math.Floor(float64(start.X())))
	cy := int(math.Floor(float64(start.Y())))
	cz := int(math.Floor(float64(start.Z())))

	deltaX := float32(math.Abs(1.0 / float64(dir.X())))
	deltaY := float32(math.Abs(1.0 / float64(dir.Y())))
	deltaZ := float32(math.Abs(1.0 / float64(dir.Z())))

	var stepX, stepY, stepZ int
	var sideDistX, sideDistY, sideDistZ float32

	if dir.X() > 0 {
		stepX = 1
		sideDistX = (float32(cx) + 1 - start.X()) * deltaX
	} else {
		stepX = -1
		sideDistX = (start.X() - float32(cx)) * deltaX
	}
	if dir.Y() > 0 {
		stepY = 1
		sideDistY = (float32(cy) + 1 - start.Y()) * deltaY
	} else {
		stepY = -1
		sideDistY = (start.Y() - float32(cy)) * deltaY
	}
	if dir.Z() > 0 {
		stepZ = 1
		sideDistZ = (float32(cz) + 1 - start.Z()) * deltaZ
	} else {
		stepZ = -1
		sideDistZ = (start.Z() - float32(cz)) * deltaZ
	}

	result := RaycastResult{}
	result.AdjacentCell = grid.Cell{X: cx, Y: cy, Z: cz}
	var travelled float32

	for travelled < maxDist {
		if sideDistX < sideDistY && sideDistX < sideDistZ {
			sideDistX += deltaX
			cx += stepX
			travelled = sideDistX - deltaX
		} else if sideDistY < sideDistZ {
			sideDistY += deltaY
			cy += stepY
			travelled = sideDistY - deltaY
		} else {
			sideDistZ += deltaZ
			cz += stepZ
			travelled = sideDistZ - deltaZ
		}

		cell := grid.Cell{X: cx, Y: cy, Z: cz}
		if solid(cell) {
			result.HitCell = cell
			result.Distance = travelled
			result.Hit = true
			return result
		}
		result.AdjacentCell = cell
	}

	return RaycastResult{}
}
