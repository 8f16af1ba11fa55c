package grid

import (
	"sync"
)

// ChangeHandler receives a batch of changed cells together with the grid
// that produced them. Handlers shared between several grids can filter on
// the source argument.
type ChangeHandler func(source *Grid, cells []Cell)

// Grid is a bounded cell -> tile store with batched change notifications.
// Mutations outside the bounds are silently ignored; reads outside the
// bounds report no tile.
type Grid struct {
	min, max Cell

	mu    sync.RWMutex
	tiles map[Cell]Tile

	subMu   sync.Mutex
	subs    map[int]ChangeHandler
	nextSub int
}

// New creates an empty grid covering the inclusive cell range [min, max].
func New(min, max Cell) *Grid {
	return &Grid{
		min:   min,
		max:   max,
		tiles: make(map[Cell]Tile),
		subs:  make(map[int]ChangeHandler),
	}
}

// Bounds returns the inclusive cell range covered by the grid.
func (g *Grid) Bounds() (min, max Cell) {
	return g.min, g.max
}

// InBounds reports whether the cell lies inside the tracked region.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= g.min.X && c.X <= g.max.X &&
		c.Y >= g.min.Y && c.Y <= g.max.Y &&
		c.Z >= g.min.Z && c.Z <= g.max.Z
}

// Tile returns the tile at the cell, if any.
func (g *Grid) Tile(c Cell) (Tile, bool) {
	g.mu.RLock()
	t, ok := g.tiles[c]
	g.mu.RUnlock()
	return t, ok
}

// ColliderPresent reports whether the cell carries a solid tile. This is the
// predicate the collider builder evaluates during refresh and incremental
// updates.
func (g *Grid) ColliderPresent(c Cell) bool {
	g.mu.RLock()
	t, ok := g.tiles[c]
	g.mu.RUnlock()
	return ok && t.Solid
}

// Set places or clears a single tile and notifies subscribers with a
// one-cell batch.
func (g *Grid) Set(c Cell, t Tile) {
	g.Apply([]TileChange{{Cell: c, Tile: t}})
}

// Apply performs a batch of tile changes and notifies subscribers exactly
// once with the affected cells. Out-of-bounds changes are dropped from the
// batch.
func (g *Grid) Apply(changes []TileChange) {
	if len(changes) == 0 {
		return
	}

	changed := make([]Cell, 0, len(changes))
	g.mu.Lock()
	for _, ch := range changes {
		if !g.InBounds(ch.Cell) {
			continue
		}
		if ch.Tile.Empty() {
			if _, ok := g.tiles[ch.Cell]; !ok {
				continue
			}
			delete(g.tiles, ch.Cell)
		} else {
			g.tiles[ch.Cell] = ch.Tile
		}
		changed = append(changed, ch.Cell)
	}
	g.mu.Unlock()

	if len(changed) > 0 {
		g.notify(changed)
	}
}

// SetVariant overwrites the autotile variant of an occupied cell without
// notifying subscribers. The autotile pass runs inside change handling;
// re-notifying from here would recurse into the change stream.
func (g *Grid) SetVariant(c Cell, variant int) {
	g.mu.Lock()
	if t, ok := g.tiles[c]; ok {
		t.Variant = variant
		g.tiles[c] = t
	}
	g.mu.Unlock()
}

// EachCell calls fn for every cell in the tracked region, occupied or not.
// Used by the collider builder's full refresh.
func (g *Grid) EachCell(fn func(Cell)) {
	for z := g.min.Z; z <= g.max.Z; z++ {
		for y := g.min.Y; y <= g.max.Y; y++ {
			for x := g.min.X; x <= g.max.X; x++ {
				fn(Cell{x, y, z})
			}
		}
	}
}

// EachTile calls fn for every occupied cell. Iteration order is unspecified.
func (g *Grid) EachTile(fn func(Cell, Tile)) {
	g.mu.RLock()
	cells := make([]Cell, 0, len(g.tiles))
	for c := range g.tiles {
		cells = append(cells, c)
	}
	g.mu.RUnlock()
	for _, c := range cells {
		if t, ok := g.Tile(c); ok {
			fn(c, t)
		}
	}
}

// TileCount returns the number of occupied cells.
func (g *Grid) TileCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.tiles)
}

// Subscribe registers a change handler and returns its subscription id.
func (g *Grid) Subscribe(h ChangeHandler) int {
	g.subMu.Lock()
	defer g.subMu.Unlock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = h
	return id
}

// Unsubscribe removes a previously registered handler. Unknown ids are
// ignored.
func (g *Grid) Unsubscribe(id int) {
	g.subMu.Lock()
	delete(g.subs, id)
	g.subMu.Unlock()
}

func (g *Grid) notify(cells []Cell) {
	g.subMu.Lock()
	handlers := make([]ChangeHandler, 0, len(g.subs))
	for _, h := range g.subs {
		handlers = append(handlers, h)
	}
	g.subMu.Unlock()

	for _, h := range handlers {
		h(g, cells)
	}
}
