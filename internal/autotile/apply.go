package autotile

import (
	"tilecollider/internal/grid"
	"tilecollider/internal/profiling"
)

// Apply recomputes autotile variants after a batch of tile changes. Each
// changed cell and its 8 neighbors are re-resolved, since a tile edit also
// changes the neighborhoods around it. Variants are written through the
// grid's silent variant setter so the pass does not feed back into the
// change stream.
func (r *Resolver) Apply(g *grid.Grid, changed []grid.Cell) {
	defer profiling.Track("autotile.Apply")()

	seen := make(map[grid.Cell]struct{}, len(changed)*9)
	for _, c := range changed {
		r.applyCell(g, c, seen)
		for _, off := range NeighborOffsets {
			r.applyCell(g, c.Add(off), seen)
		}
	}
}

func (r *Resolver) applyCell(g *grid.Grid, c grid.Cell, seen map[grid.Cell]struct{}) {
	if _, ok := seen[c]; ok {
		return
	}
	seen[c] = struct{}{}

	tile, ok := g.Tile(c)
	if !ok {
		return
	}

	sameSet := func(n grid.Cell) bool {
		nt, present := g.Tile(n)
		return present && nt.ID == tile.ID
	}
	g.SetVariant(c, r.Resolve(c, sameSet))
}
