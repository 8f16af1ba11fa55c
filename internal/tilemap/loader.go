package tilemap

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"tilecollider/internal/grid"
)

// LoadGrid parses a TMX map and returns a populated grid. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
//
// Every tile layer becomes one z-plane of the grid, in document order. TMX
// rows grow downward, so y is flipped to keep +Y as "north" for the
// autotile neighbor offsets. Tiles are solid by default; a tileset tile with
// the property "collider" set to "false" or "0" opts out.
func LoadGrid(fsys fs.FS, tmxPath string) (*grid.Grid, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(m.Layers) == 0 {
		return nil, fmt.Errorf("TMX %s has no tile layers", tmxPath)
	}

	g := grid.New(
		grid.Cell{X: 0, Y: 0, Z: 0},
		grid.Cell{X: m.Width - 1, Y: m.Height - 1, Z: len(m.Layers) - 1},
	)

	var changes []grid.TileChange
	for z, layer := range m.Layers {
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				lt := layer.Tiles[y*m.Width+x]
				if lt.IsNil() {
					continue
				}
				changes = append(changes, grid.TileChange{
					Cell: grid.Cell{X: x, Y: m.Height - 1 - y, Z: z},
					Tile: grid.Tile{
						ID:    grid.TileID(lt.Tileset.FirstGID + lt.ID),
						Solid: tileSolid(lt),
					},
				})
			}
		}
	}

	g.Apply(changes)
	return g, nil
}

func tileSolid(lt *tiled.LayerTile) bool {
	tsTile, err := lt.Tileset.GetTilesetTile(lt.ID)
	if err != nil {
		return true
	}
	switch tsTile.Properties.GetString("collider") {
	case "false", "0":
		return false
	default:
		return true
	}
}
