// Package biome holds the biome labels produced by the End generator. The
// numeric values match the Java Edition biome IDs and must never change:
// they cross the native boundary and are stored in exported region maps.
package biome

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Biome is a discrete End biome label.
type Biome uint8

const (
	// Default is the zero value. The generator never classifies a position as
	// Default; it is only returned by a generator that has been closed.
	Default Biome = 0
	// TheEnd is the central island around the origin.
	TheEnd Biome = 9
	// SmallEndIslands covers the void between outer islands, where only small
	// floating islands appear.
	SmallEndIslands Biome = 40
	// EndMidlands is the sloped middle band of the outer islands.
	EndMidlands Biome = 41
	// EndHighlands forms the bulk of the outer islands.
	EndHighlands Biome = 42
	// EndBarrens is the flat rim of the outer islands.
	EndBarrens Biome = 43
)

// All returns every biome the generator can produce, ordered by ID.
func All() []Biome {
	return []Biome{TheEnd, SmallEndIslands, EndMidlands, EndHighlands, EndBarrens}
}

var names = map[Biome]string{
	Default:         "default",
	TheEnd:          "the_end",
	SmallEndIslands: "small_end_islands",
	EndMidlands:     "end_midlands",
	EndHighlands:    "end_highlands",
	EndBarrens:      "end_barrens",
}

// Valid reports if b is one of the known labels.
func (b Biome) Valid() bool {
	_, ok := names[b]
	return ok
}

// Name returns the resource name of the biome, for example "end_highlands".
func (b Biome) Name() string {
	if n, ok := names[b]; ok {
		return n
	}
	return fmt.Sprintf("unknown_%d", uint8(b))
}

// EncodeBiome returns the resource location of the biome.
func (b Biome) EncodeBiome() string {
	return "minecraft:" + b.Name()
}

// DisplayName returns a human readable name, for example "End Highlands".
func (b Biome) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(b.Name(), "_", " "))
}

// String returns the Go identifier of the biome, for example "EndHighlands".
func (b Biome) String() string {
	return strings.ReplaceAll(b.DisplayName(), " ", "")
}

// ByName looks up a biome by its resource name, with or without the
// "minecraft:" prefix. Lookups are case-insensitive.
func ByName(name string) (Biome, bool) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "minecraft:")
	for b, n := range names {
		if n == name {
			return b, true
		}
	}
	return Default, false
}
