package tileset

// Mask bits in neighbor enumeration order.
const (
	maskN  = 1 << 0
	maskE  = 1 << 1
	maskS  = 1 << 2
	maskW  = 1 << 3
	maskNW = 1 << 4
	maskNE = 1 << 5
	maskSE = 1 << 6
	maskSW = 1 << 7
)

// legalMask reports whether a neighborhood mask is one of the 47 blob
// masks: a corner bit only matters when both of its adjacent edge bits are
// set, so masks with a dangling corner are not authored as tiles.
func legalMask(mask int) bool {
	corners := [4]struct{ corner, edges int }{
		{maskNW, maskN | maskW},
		{maskNE, maskN | maskE},
		{maskSE, maskS | maskE},
		{maskSW, maskS | maskW},
	}
	for _, c := range corners {
		if mask&c.corner != 0 && mask&c.edges != c.edges {
			return false
		}
	}
	return true
}

// GenerateTable deterministically rebuilds the default variant table: the
// 47 legal blob masks in ascending order, each assigned its ordinal as the
// variant index. Callers hold the result as explicit configuration and
// regenerate it when the source tileset asset changes.
func GenerateTable() map[int]int {
	table := make(map[int]int, 47)
	variant := 0
	for mask := 0; mask < 256; mask++ {
		if legalMask(mask) {
			table[mask] = variant
			variant++
		}
	}
	return table
}

// GenerateDefinition wraps GenerateTable in a named definition, for writing
// a starter tileset asset to disk.
func GenerateDefinition(name string) *Definition {
	table := GenerateTable()
	def := &Definition{Name: name, Entries: make([]Entry, 0, len(table))}
	for mask := 0; mask < 256; mask++ {
		if v, ok := table[mask]; ok {
			def.Entries = append(def.Entries, Entry{Mask: mask, Variant: v})
		}
	}
	return def
}
