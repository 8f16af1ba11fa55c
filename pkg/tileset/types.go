package tileset

// Entry maps one neighborhood mask to a tile variant index.
type Entry struct {
	Mask    int `json:"mask"`
	Variant int `json:"variant"`
}

// Definition describes a blob autotile set: which neighborhood masks are
// legal and which variant each one selects. Definitions are authored as
// JSON assets and loaded through the Loader.
type Definition struct {
	Name    string  `json:"name"`
	Default int     `json:"default"`
	Entries []Entry `json:"entries"`
}

// Table flattens the entries into the mask -> variant map the autotile
// resolver consumes.
func (d *Definition) Table() map[int]int {
	table := make(map[int]int, len(d.Entries))
	for _, e := range d.Entries {
		table[e.Mask] = e.Variant
	}
	return table
}
