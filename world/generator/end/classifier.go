package end

import "github.com/df-mc/endgen/world/biome"

// Classifier turns chunk positions and island heights into biomes.
type Classifier struct {
	coreRadius   int64
	coreRadiusSq int64
	highlands    float32
	midlands     float32
	smallIslands float32
}

// NewClassifier returns the Classifier described by the layout passed.
func NewClassifier(l Layout) Classifier {
	return Classifier{
		coreRadius:   l.CoreRadius,
		coreRadiusSq: l.CoreRadius * l.CoreRadius,
		highlands:    l.HighlandsAbove,
		midlands:     l.MidlandsFrom,
		smallIslands: l.SmallIslandsBelow,
	}
}

// Core reports if the chunk at (x, z) belongs to the central island.
func (c Classifier) Core(x, z int64) bool {
	r := c.coreRadius
	if x > r || x < -r || z > r || z < -r {
		return false
	}
	return x*x+z*z <= c.coreRadiusSq
}

// Classify returns the biome of an outer chunk with the island height h.
// A height exactly on a band boundary falls into the lower-priority band:
// h == HighlandsAbove is midlands, h == SmallIslandsBelow is barrens.
func (c Classifier) Classify(h float32) biome.Biome {
	switch {
	case h > c.highlands:
		return biome.EndHighlands
	case h >= c.midlands:
		return biome.EndMidlands
	case h < c.smallIslands:
		return biome.SmallEndIslands
	default:
		return biome.EndBarrens
	}
}
