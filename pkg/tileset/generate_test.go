package tileset

import "testing"

func TestGenerateTableSize(t *testing.T) {
	table := GenerateTable()
	if len(table) != 47 {
		t.Fatalf("Expected 47 legal masks, got %d", len(table))
	}
}

func TestGenerateTableLegality(t *testing.T) {
	table := GenerateTable()

	// Corner-free masks and the full neighborhood are always legal.
	for _, mask := range []int{0, 1, 15, 255} {
		if _, ok := table[mask]; !ok {
			t.Errorf("Expected mask %d to be legal", mask)
		}
	}

	// A bare NW corner has no adjacent edges, so it never appears.
	if _, ok := table[16]; ok {
		t.Error("Expected mask 16 (dangling NW corner) to be illegal")
	}

	// NW corner with both its edges (N and W) set is legal.
	if _, ok := table[1|8|16]; !ok {
		t.Error("Expected mask 25 (NW corner with N and W edges) to be legal")
	}

	// NW corner with only the N edge is still dangling.
	if _, ok := table[1|16]; ok {
		t.Error("Expected mask 17 (NW corner missing W edge) to be illegal")
	}
}

func TestGenerateTableOrdinalVariants(t *testing.T) {
	table := GenerateTable()

	// The first sixteen masks are all corner-free and therefore legal, so
	// ascending ordinal assignment makes each its own variant index.
	for mask := 0; mask < 16; mask++ {
		if table[mask] != mask {
			t.Errorf("Expected mask %d to get variant %d, got %d", mask, mask, table[mask])
		}
	}
	if table[255] != 46 {
		t.Errorf("Expected mask 255 to get the last variant 46, got %d", table[255])
	}
}

func TestGenerateDefinitionRoundTrip(t *testing.T) {
	def := GenerateDefinition("blob47")
	if def.Name != "blob47" {
		t.Errorf("Expected name 'blob47', got '%s'", def.Name)
	}
	if len(def.Entries) != 47 {
		t.Fatalf("Expected 47 entries, got %d", len(def.Entries))
	}

	table := GenerateTable()
	for mask, variant := range def.Table() {
		if table[mask] != variant {
			t.Errorf("Definition disagrees with table at mask %d: %d vs %d", mask, variant, table[mask])
		}
	}
}
