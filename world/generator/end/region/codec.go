package region

import (
	"errors"
	"fmt"
	"math"

	"github.com/df-mc/endgen/world/biome"
	"github.com/klauspost/compress/zstd"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// ErrCorrupt is returned by UnmarshalMap if the data passed does not hold a
// valid Map.
var ErrCorrupt = errors.New("region: corrupt map data")

// mapData is the NBT representation of a Map.
type mapData struct {
	Version string `nbt:"version"`
	Layout  int64  `nbt:"layout"`
	Seed    int64  `nbt:"seed"`
	MinX    int32  `nbt:"min_x"`
	MinZ    int32  `nbt:"min_z"`
	MaxX    int32  `nbt:"max_x"`
	MaxZ    int32  `nbt:"max_z"`
	Y       int32  `nbt:"y"`
	Biomes  []byte `nbt:"biomes"`
	Digest  int64  `nbt:"digest"`
}

var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	decoder, _ = zstd.NewReader(nil)
)

// MarshalBinary encodes the Map as little endian NBT compressed with zstd. It
// returns an error wrapping ErrInvalidArea if a bound of the area does not
// fit in 32 bits.
func (m *Map) MarshalBinary() ([]byte, error) {
	a := m.Area
	for _, v := range []int{a.MinX, a.MinZ, a.MaxX, a.MaxZ, a.Y} {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %v does not fit in 32 bits", ErrInvalidArea, a)
		}
	}
	data := mapData{
		Version: m.Version,
		Layout:  int64(m.Layout),
		Seed:    m.Seed,
		MinX:    int32(m.Area.MinX),
		MinZ:    int32(m.Area.MinZ),
		MaxX:    int32(m.Area.MaxX),
		MaxZ:    int32(m.Area.MaxZ),
		Y:       int32(m.Area.Y),
		Biomes:  biomeBytes(m.Biomes),
		Digest:  int64(m.Digest()),
	}
	b, err := nbt.MarshalEncoding(data, nbt.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("encode map nbt: %w", err)
	}
	return encoder.EncodeAll(b, make([]byte, 0, len(b)/4)), nil
}

// UnmarshalMap decodes a Map previously encoded using Map.MarshalBinary. The
// digest stored is checked against the decoded Map and ErrCorrupt is returned
// if they differ.
func UnmarshalMap(b []byte) (*Map, error) {
	raw, err := decoder.DecodeAll(b, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: decompress: %v", ErrCorrupt, err)
	}
	var data mapData
	if err := nbt.UnmarshalEncoding(raw, &data, nbt.LittleEndian); err != nil {
		return nil, fmt.Errorf("%w: decode nbt: %v", ErrCorrupt, err)
	}
	m := &Map{
		Seed:    data.Seed,
		Version: data.Version,
		Layout:  uint64(data.Layout),
		Area: Area{
			MinX: int(data.MinX), MinZ: int(data.MinZ),
			MaxX: int(data.MaxX), MaxZ: int(data.MaxZ),
			Y: int(data.Y),
		},
	}
	if err := m.Area.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if len(data.Biomes) != m.Area.Size() {
		return nil, fmt.Errorf("%w: expected %d biomes, got %d", ErrCorrupt, m.Area.Size(), len(data.Biomes))
	}
	m.Biomes = make([]biome.Biome, len(data.Biomes))
	for i, v := range data.Biomes {
		m.Biomes[i] = biome.Biome(v)
	}
	if uint64(data.Digest) != m.Digest() {
		return nil, fmt.Errorf("%w: digest mismatch", ErrCorrupt)
	}
	return m, nil
}
