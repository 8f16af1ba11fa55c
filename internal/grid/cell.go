package grid

// Cell is an integer grid position. It is the key for all per-cell state:
// tiles in the Grid, collider blocks in the mesh builder.
type Cell struct {
	X, Y, Z int
}

// Add returns the cell offset by another cell.
func (c Cell) Add(o Cell) Cell {
	return Cell{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// TileID identifies a tile kind. Zero means "no tile".
type TileID uint16

const TileIDEmpty TileID = 0

// Tile is the per-cell payload. Variant is the autotile variant index picked
// by the resolver; Solid marks the tile as collider-relevant.
type Tile struct {
	ID      TileID
	Solid   bool
	Variant int
}

// Empty reports whether the tile slot is unoccupied.
func (t Tile) Empty() bool {
	return t.ID == TileIDEmpty
}

// TileChange pairs a cell with its new tile for batched mutations.
// A change to the empty tile clears the cell.
type TileChange struct {
	Cell Cell
	Tile Tile
}
