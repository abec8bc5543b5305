package region

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/df-mc/endgen/world/biome"
	"github.com/df-mc/endgen/world/generator/end"
)

// Map holds the biome of every column of an Area, row by row along X.
type Map struct {
	// Seed is the seed of the generator the Map was sampled from.
	Seed int64
	// Version is the layout version of that generator.
	Version string
	// Layout is the fingerprint of that generator's layout, see
	// end.Layout.Fingerprint.
	Layout uint64
	// Area is the sampled area.
	Area Area
	// Biomes holds Area.Size() entries; column (x, z) is stored at index
	// (x-MinX)*Depth + (z-MinZ).
	Biomes []biome.Biome
}

func newMap(seed int64, l end.Layout, area Area) *Map {
	return &Map{Seed: seed, Version: l.Version, Layout: l.Fingerprint(), Area: area, Biomes: make([]biome.Biome, area.Size())}
}

func (m *Map) index(x, z int) int {
	return (x-m.Area.MinX)*m.Area.Depth() + (z - m.Area.MinZ)
}

// At returns the biome of column (x, z). It returns biome.Default for columns
// outside the Area.
func (m *Map) At(x, z int) biome.Biome {
	if !m.Area.Contains(x, z) {
		return biome.Default
	}
	return m.Biomes[m.index(x, z)]
}

// Sum returns the wrapping 32-bit sum of all biome IDs, a cheap checksum used
// to compare maps with reference output.
func (m *Map) Sum() int32 {
	var sum int32
	for _, b := range m.Biomes {
		sum += int32(b)
	}
	return sum
}

// Counts returns how many columns hold each biome.
func (m *Map) Counts() map[biome.Biome]int {
	counts := make(map[biome.Biome]int)
	for _, b := range m.Biomes {
		counts[b]++
	}
	return counts
}

// Digest returns an xxhash of the seed, layout, area and biomes.
func (m *Map) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	writeInt(m.Seed)
	_, _ = d.WriteString(m.Version)
	writeInt(int64(m.Layout))
	for _, v := range []int{m.Area.MinX, m.Area.MinZ, m.Area.MaxX, m.Area.MaxZ, m.Area.Y} {
		writeInt(int64(v))
	}
	_, _ = d.Write(biomeBytes(m.Biomes))
	return d.Sum64()
}

func biomeBytes(biomes []biome.Biome) []byte {
	b := make([]byte, len(biomes))
	for i, v := range biomes {
		b[i] = byte(v)
	}
	return b
}
