package collider

import (
	"github.com/go-gl/mathgl/mgl32"

	"tilecollider/internal/grid"
	"tilecollider/internal/mesh"
	"tilecollider/internal/profiling"
)

// Source is the tile system the builder tracks. ColliderPresent is the
// predicate evaluated during refresh and incremental updates; EachCell
// enumerates the bounded region once at full refresh.
type Source interface {
	ColliderPresent(grid.Cell) bool
	EachCell(func(grid.Cell))
}

// Builder maintains a box-collider mesh with one unit cube per occupied
// cell. Insert and Remove are O(1): blocks live in fixed-size runs inside
// two growable buffers, and removal swaps the last block into the freed
// slot. All mutations must happen on a single goroutine; the builder is not
// reentrant.
type Builder struct {
	size   float32
	offset mgl32.Vec3

	verts []mgl32.Vec3
	tris  []uint32

	// blocks maps each occupied cell to its block index; cells is the
	// inverse, block index -> owning cell. Keeping the inverse explicit
	// avoids recovering a swapped block's cell from its geometry, which
	// breaks for non-integer size or offset.
	blocks map[grid.Cell]int
	cells  []grid.Cell

	src   Source
	mesh  *mesh.Mesh
	baker mesh.Baker

	attached *grid.Grid
	subID    int
}

// New creates an empty builder over the given source. The size scales the
// unit-cube template; the offset translates every block.
func New(src Source, size float32, offset mgl32.Vec3, baker mesh.Baker) *Builder {
	if baker == nil {
		baker = mesh.SyncBaker{}
	}
	return &Builder{
		size:   size,
		offset: offset,
		blocks: make(map[grid.Cell]int),
		src:    src,
		mesh:   &mesh.Mesh{},
		baker:  baker,
	}
}

// Mesh returns the shared mesh object rebuilt in place by Rebuild.
func (b *Builder) Mesh() *mesh.Mesh {
	return b.mesh
}

// BlockCount returns the number of occupied cells.
func (b *Builder) BlockCount() int {
	return len(b.cells)
}

// BlockIndex returns the block index for a cell, if it is occupied.
func (b *Builder) BlockIndex(c grid.Cell) (int, bool) {
	i, ok := b.blocks[c]
	return i, ok
}

// blockVertex transforms one template vertex into world space: scale first,
// then translate by cell position and offset.
func (b *Builder) blockVertex(c grid.Cell, i int) mgl32.Vec3 {
	t := blockVertices[i]
	return mgl32.Vec3{
		t.X()*b.size + float32(c.X) + b.offset.X(),
		t.Y()*b.size + float32(c.Y) + b.offset.Y(),
		t.Z()*b.size + float32(c.Z) + b.offset.Z(),
	}
}

// Insert appends a collider block for the cell. Inserting an occupied cell
// is a no-op.
func (b *Builder) Insert(c grid.Cell) {
	if _, ok := b.blocks[c]; ok {
		return
	}

	index := len(b.cells)
	for i := 0; i < BlockVertexCount; i++ {
		b.verts = append(b.verts, b.blockVertex(c, i))
	}
	base := uint32(index * BlockVertexCount)
	for _, ti := range blockIndices {
		b.tris = append(b.tris, base+ti)
	}

	b.blocks[c] = index
	b.cells = append(b.cells, c)
}

// Remove deletes the cell's collider block by overwriting it with the last
// block and shrinking both buffers. Removing an absent cell is a no-op.
//
// Triangle indices never need rewriting: each block's indices are the
// template values plus blockIndex*8, so after the vertex run is swapped into
// the freed slot the indices already stored there still address it.
func (b *Builder) Remove(c grid.Cell) {
	index, ok := b.blocks[c]
	if !ok {
		return
	}

	lastIndex := len(b.cells) - 1
	if index != lastIndex {
		copy(
			b.verts[index*BlockVertexCount:(index+1)*BlockVertexCount],
			b.verts[lastIndex*BlockVertexCount:(lastIndex+1)*BlockVertexCount],
		)
		moved := b.cells[lastIndex]
		b.cells[index] = moved
		b.blocks[moved] = index
	}

	b.verts = b.verts[:lastIndex*BlockVertexCount]
	b.tris = b.tris[:lastIndex*BlockIndexCount]
	b.cells = b.cells[:lastIndex]
	delete(b.blocks, c)
}

// Rebuild pushes the current buffers into the mesh object and bakes it.
// With no blocks the mesh is left cleared, meaning no collider exists.
// Call once per batch of Insert/Remove, not per cell.
func (b *Builder) Rebuild() {
	defer profiling.Track("collider.Rebuild")()

	b.mesh.Clear()
	if len(b.verts) == 0 {
		return
	}
	b.mesh.SetGeometry(b.verts, b.tris)
	b.baker.Bake(b.mesh)
}

// Refresh scans every cell of the source region once, inserting or removing
// per the collider predicate, then rebuilds the mesh.
func (b *Builder) Refresh() {
	defer profiling.Track("collider.Refresh")()

	b.src.EachCell(func(c grid.Cell) {
		if b.src.ColliderPresent(c) {
			b.Insert(c)
		} else {
			b.Remove(c)
		}
	})
	b.Rebuild()
}

// Update re-evaluates the collider predicate for a batch of changed cells,
// then rebuilds the mesh once for the whole batch.
func (b *Builder) Update(cells []grid.Cell) {
	defer profiling.Track("collider.Update")()

	for _, c := range cells {
		if b.src.ColliderPresent(c) {
			b.Insert(c)
		} else {
			b.Remove(c)
		}
	}
	b.Rebuild()
}

// Attach subscribes the builder to the grid's change stream. Notifications
// from any other source are ignored. Attach replaces a previous attachment.
func (b *Builder) Attach(g *grid.Grid) {
	b.Detach()
	b.attached = g
	b.subID = g.Subscribe(func(source *grid.Grid, cells []grid.Cell) {
		if source != b.attached {
			return
		}
		b.Update(cells)
	})
}

// Detach unsubscribes from the currently attached grid, if any.
func (b *Builder) Detach() {
	if b.attached == nil {
		return
	}
	b.attached.Unsubscribe(b.subID)
	b.attached = nil
}
