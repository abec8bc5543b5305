package biome

import "testing"

func TestStableIDs(t *testing.T) {
	want := map[Biome]uint8{
		Default:         0,
		TheEnd:          9,
		SmallEndIslands: 40,
		EndMidlands:     41,
		EndHighlands:    42,
		EndBarrens:      43,
	}
	for b, id := range want {
		if uint8(b) != id {
			t.Fatalf("biome %v: expected id %d, got %d", b.Name(), id, uint8(b))
		}
	}
}

func TestNames(t *testing.T) {
	cases := []struct {
		b                    Biome
		name, display, ident string
	}{
		{TheEnd, "the_end", "The End", "TheEnd"},
		{SmallEndIslands, "small_end_islands", "Small End Islands", "SmallEndIslands"},
		{EndHighlands, "end_highlands", "End Highlands", "EndHighlands"},
	}
	for _, c := range cases {
		if c.b.Name() != c.name {
			t.Fatalf("expected name %q, got %q", c.name, c.b.Name())
		}
		if c.b.DisplayName() != c.display {
			t.Fatalf("expected display name %q, got %q", c.display, c.b.DisplayName())
		}
		if c.b.String() != c.ident {
			t.Fatalf("expected string %q, got %q", c.ident, c.b.String())
		}
	}
	if got := EndBarrens.EncodeBiome(); got != "minecraft:end_barrens" {
		t.Fatalf("unexpected encoded biome %q", got)
	}
}

func TestByName(t *testing.T) {
	for _, b := range All() {
		got, ok := ByName(b.EncodeBiome())
		if !ok || got != b {
			t.Fatalf("ByName(%q) = %v, %v", b.EncodeBiome(), got, ok)
		}
	}
	if _, ok := ByName("plains"); ok {
		t.Fatalf("expected unknown biome lookup to fail")
	}
	if got, ok := ByName("  END_MIDLANDS "); !ok || got != EndMidlands {
		t.Fatalf("expected case-insensitive lookup, got %v, %v", got, ok)
	}
}

func TestValid(t *testing.T) {
	if Biome(7).Valid() {
		t.Fatalf("expected id 7 to be invalid")
	}
	if Biome(7).Name() != "unknown_7" {
		t.Fatalf("unexpected name for unknown biome: %q", Biome(7).Name())
	}
	for _, b := range All() {
		if !b.Valid() {
			t.Fatalf("expected %v to be valid", b)
		}
	}
}
