package grid

import (
	"reflect"
	"sort"
	"testing"
)

func TestApplyNotifiesOncePerBatch(t *testing.T) {
	g := New(Cell{0, 0, 0}, Cell{7, 7, 0})

	var calls int
	var got []Cell
	var src *Grid
	g.Subscribe(func(source *Grid, cells []Cell) {
		calls++
		src = source
		got = append([]Cell(nil), cells...)
	})

	g.Apply([]TileChange{
		{Cell: Cell{0, 0, 0}, Tile: Tile{ID: 1, Solid: true}},
		{Cell: Cell{1, 0, 0}, Tile: Tile{ID: 1, Solid: true}},
		{Cell: Cell{2, 0, 0}, Tile: Tile{ID: 2}},
	})

	if calls != 1 {
		t.Fatalf("batch of 3 changes produced %d notifications, want 1", calls)
	}
	if src != g {
		t.Fatal("notification source is not the mutated grid")
	}
	if len(got) != 3 {
		t.Fatalf("notification carried %d cells, want 3", len(got))
	}
}

func TestOutOfBoundsChangesDropped(t *testing.T) {
	g := New(Cell{0, 0, 0}, Cell{3, 3, 0})

	var calls int
	g.Subscribe(func(*Grid, []Cell) { calls++ })

	g.Set(Cell{10, 0, 0}, Tile{ID: 1, Solid: true})
	if calls != 0 {
		t.Fatal("out-of-bounds change was notified")
	}
	if _, ok := g.Tile(Cell{10, 0, 0}); ok {
		t.Fatal("out-of-bounds tile was stored")
	}
}

func TestClearingAbsentCellNotNotified(t *testing.T) {
	g := New(Cell{0, 0, 0}, Cell{3, 3, 0})

	var calls int
	g.Subscribe(func(*Grid, []Cell) { calls++ })

	g.Set(Cell{1, 1, 0}, Tile{})
	if calls != 0 {
		t.Fatal("clearing an already-empty cell was notified")
	}
}

func TestSetAndClear(t *testing.T) {
	g := New(Cell{0, 0, 0}, Cell{3, 3, 0})

	c := Cell{2, 1, 0}
	g.Set(c, Tile{ID: 5, Solid: true})
	if tile, ok := g.Tile(c); !ok || tile.ID != 5 {
		t.Fatalf("Tile(%v) = %v, %v after set", c, tile, ok)
	}
	if !g.ColliderPresent(c) {
		t.Fatal("solid tile not collider-present")
	}

	g.Set(c, Tile{ID: 3, Solid: false})
	if g.ColliderPresent(c) {
		t.Fatal("non-solid tile reported collider-present")
	}

	g.Set(c, Tile{})
	if _, ok := g.Tile(c); ok {
		t.Fatal("tile survived clearing")
	}
	if g.TileCount() != 0 {
		t.Fatalf("tile count = %d after clearing, want 0", g.TileCount())
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	g := New(Cell{0, 0, 0}, Cell{3, 3, 0})

	var calls int
	id := g.Subscribe(func(*Grid, []Cell) { calls++ })

	g.Set(Cell{0, 0, 0}, Tile{ID: 1, Solid: true})
	g.Unsubscribe(id)
	g.Set(Cell{1, 0, 0}, Tile{ID: 1, Solid: true})

	if calls != 1 {
		t.Fatalf("handler called %d times, want 1", calls)
	}
}

func TestSetVariantIsSilent(t *testing.T) {
	g := New(Cell{0, 0, 0}, Cell{3, 3, 0})

	c := Cell{1, 1, 0}
	g.Set(c, Tile{ID: 1, Solid: true})

	var calls int
	g.Subscribe(func(*Grid, []Cell) { calls++ })

	g.SetVariant(c, 12)
	if calls != 0 {
		t.Fatal("SetVariant produced a notification")
	}
	if tile, _ := g.Tile(c); tile.Variant != 12 {
		t.Fatalf("variant = %d, want 12", tile.Variant)
	}

	// Variant writes to empty cells are no-ops.
	g.SetVariant(Cell{2, 2, 0}, 9)
	if _, ok := g.Tile(Cell{2, 2, 0}); ok {
		t.Fatal("SetVariant materialized an empty cell")
	}
}

func TestEachCellCoversRegion(t *testing.T) {
	g := New(Cell{0, 0, 0}, Cell{1, 1, 1})

	var cells []Cell
	g.EachCell(func(c Cell) { cells = append(cells, c) })

	if len(cells) != 8 {
		t.Fatalf("EachCell visited %d cells, want 8", len(cells))
	}
}

func TestEachTile(t *testing.T) {
	g := New(Cell{0, 0, 0}, Cell{3, 3, 0})
	g.Apply([]TileChange{
		{Cell: Cell{0, 0, 0}, Tile: Tile{ID: 1, Solid: true}},
		{Cell: Cell{3, 2, 0}, Tile: Tile{ID: 2}},
	})

	var got []Cell
	g.EachTile(func(c Cell, _ Tile) { got = append(got, c) })
	sort.Slice(got, func(i, j int) bool {
		return got[i].X < got[j].X
	})

	want := []Cell{{0, 0, 0}, {3, 2, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("EachTile visited %v, want %v", got, want)
	}
}
