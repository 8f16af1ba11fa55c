package autotile

import (
	"fmt"

	"tilecollider/internal/grid"
)

// NeighborOffsets enumerates the 8 neighbors of a tile in the fixed order
// that assigns their mask bits: N, E, S, W, NW, NE, SE, SW with bit weights
// 2^0 through 2^7. The order is load-bearing: mask accumulation validates
// each partial mask against the variant table in exactly this order.
var NeighborOffsets = [8]grid.Cell{
	{X: 0, Y: 1},   // N  = 1
	{X: 1, Y: 0},   // E  = 2
	{X: 0, Y: -1},  // S  = 4
	{X: -1, Y: 0},  // W  = 8
	{X: -1, Y: 1},  // NW = 16
	{X: 1, Y: 1},   // NE = 32
	{X: 1, Y: -1},  // SE = 64
	{X: -1, Y: -1}, // SW = 128
}

// Resolver maps neighborhood masks to tile variant indices. The variant
// table is explicit configuration: it comes from a tileset definition or a
// generated default, never from hidden global state.
type Resolver struct {
	variants map[int]int
	fallback int
}

// NewResolver creates a resolver over the given mask -> variant table.
// An empty table is structurally invalid configuration: it is reported once
// as a non-fatal warning and every lookup degrades to the fallback variant.
func NewResolver(table map[int]int) *Resolver {
	if len(table) == 0 {
		fmt.Printf("Warning: autotile resolver created with no variants, all tiles resolve to variant 0\n")
	}
	return &Resolver{variants: table}
}

// Mask accumulates the neighborhood bitmask for a cell. Neighbors are
// visited in table order; each bit is kept only if the cumulative mask is
// itself a key of the variant table. A present neighbor can therefore be
// rejected when an earlier-rejected bit makes the combination illegal.
// Downstream variant tables are authored against this greedy behavior, so
// it must not be replaced with a plain 8-bit membership mask.
func (r *Resolver) Mask(c grid.Cell, sameSet func(grid.Cell) bool) int {
	if len(r.variants) == 0 {
		return 0
	}
	mask := 0
	for i, off := range NeighborOffsets {
		if !sameSet(c.Add(off)) {
			continue
		}
		candidate := mask | 1<<i
		if _, ok := r.variants[candidate]; ok {
			mask = candidate
		}
	}
	return mask
}

// Resolve computes the cell's mask and looks up its variant. Unknown masks
// fall back to the default variant.
func (r *Resolver) Resolve(c grid.Cell, sameSet func(grid.Cell) bool) int {
	if len(r.variants) == 0 {
		return r.fallback
	}
	if v, ok := r.variants[r.Mask(c, sameSet)]; ok {
		return v
	}
	return r.fallback
}
