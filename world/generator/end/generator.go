// Package end implements the biome generator of the End dimension: a seeded
// simplex noise field gating small island peaks, a distance falloff shaping
// the central island and a fixed set of height bands. Results are a pure
// function of the seed and the queried position.
package end

import (
	"errors"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/df-mc/endgen/world/biome"
	"github.com/df-mc/endgen/world/generator/end/noise"
	"github.com/df-mc/endgen/world/generator/end/rand"
	"github.com/df-mc/endgen/world/generator/end/voronoi"
	"github.com/google/uuid"
)

// ErrClosed is returned when closing a Generator that was already closed.
var ErrClosed = errors.New("end: generator closed")

// ChunkPos holds the position of a chunk column: X and Z, in units of 16
// blocks.
type ChunkPos [2]int32

// Generator answers biome queries for one seed. Its tables are built by
// Config.New and read-only afterwards, so a Generator may be queried from
// any number of goroutines. The owner must call Close exactly once, after
// every query has returned.
type Generator struct {
	seed    int64
	id      uuid.UUID
	log     *slog.Logger
	debug   bool
	metrics *Metrics

	state atomic.Pointer[state]
}

// state holds everything derived from the seed. It is published once,
// fully initialised, and swapped out by Close.
type state struct {
	layout     Layout
	noise      *noise.Octaves
	zoom       voronoi.Magnifier
	falloff    Falloff
	classifier Classifier
	cache      *cache
}

// New creates a vanilla End Generator for the seed passed.
func New(seed int64) *Generator {
	return Config{}.New(seed)
}

// New creates a Generator for the seed passed using the options in conf. It
// panics if conf.Layout is invalid.
func (conf Config) New(seed int64) *Generator {
	conf = conf.withDefaults()
	if err := conf.Layout.Validate(); err != nil {
		panic("config: invalid layout: " + err.Error())
	}
	l := conf.Layout

	r := rand.NewRandom(seed)
	r.Skip(l.RandomSkip)

	g := &Generator{
		seed:    seed,
		id:      uuid.New(),
		log:     conf.Log,
		debug:   conf.Debug,
		metrics: NewMetrics(),
	}
	s := &state{
		layout:     l,
		noise:      noise.NewOctaves(r, l.Octaves, l.Persistence, l.Lacunarity),
		zoom:       voronoi.New(seed),
		falloff:    NewFalloff(l),
		classifier: NewClassifier(l),
	}
	if !conf.DisableCache {
		s.cache = newCache(conf.CacheShards, conf.CacheShardSize, g.metrics)
	}
	g.state.Store(s)

	g.log.Debug("end generator created", "id", g.id, "seed", seed, "layout", l.Version, "octaves", l.Octaves, "cache", s.cache != nil)
	return g
}

// Seed returns the seed the Generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// ID returns a unique identifier of the Generator, used in logs.
func (g *Generator) ID() uuid.UUID {
	return g.id
}

// Metrics returns the counters of the Generator.
func (g *Generator) Metrics() *Metrics {
	return g.metrics
}

// Layout returns the layout of the Generator. It returns the zero Layout once
// the Generator is closed.
func (g *Generator) Layout() Layout {
	s := g.load()
	if s == nil {
		return Layout{}
	}
	return s.layout
}

// Biome returns the biome at the block position passed. The y coordinate
// only matters through the fuzzed biome zoom, which may move a position
// into a neighbouring chunk column.
func (g *Generator) Biome(x, y, z int) biome.Biome {
	s := g.load()
	if s == nil {
		return biome.Default
	}
	cx, _, cz := s.zoom.Cell(int64(x), int64(y), int64(z))
	return g.chunkBiome(s, cx>>2, cz>>2)
}

// Biome2D returns the biome at the block column passed, sampled at y = 0.
func (g *Generator) Biome2D(x, z int) biome.Biome {
	return g.Biome(x, 0, z)
}

// ChunkBiome returns the biome of a whole chunk column, without the fuzzed
// zoom applied.
func (g *Generator) ChunkBiome(pos ChunkPos) biome.Biome {
	s := g.load()
	if s == nil {
		return biome.Default
	}
	return g.chunkBiome(s, int64(pos[0]), int64(pos[1]))
}

// IslandHeight returns the island height at (x, z), measured in half chunks.
// Heights above zero are solid island surface.
func (g *Generator) IslandHeight(x, z int64) float32 {
	s := g.load()
	if s == nil {
		return 0
	}
	return g.islandHeight(s, x, z)
}

// Noise returns the noise field sample at (x, z) in chunk units. The value
// lies within [-1, 1].
func (g *Generator) Noise(x, z float64) float64 {
	s := g.load()
	if s == nil {
		return 0
	}
	return s.noise.Sample(x, z)
}

// Falloff returns the distance falloff of the Generator.
func (g *Generator) Falloff() Falloff {
	s := g.load()
	if s == nil {
		return Falloff{}
	}
	return s.falloff
}

// CacheLen returns the number of memoised chunk biomes.
func (g *Generator) CacheLen() int {
	s := g.load()
	if s == nil || s.cache == nil {
		return 0
	}
	return s.cache.len()
}

// Close releases the tables and cache of the Generator. Any query made after
// Close returns zero values, or panics if the Generator was created with
// Config.Debug set. Closing twice returns ErrClosed.
func (g *Generator) Close() error {
	s := g.state.Swap(nil)
	if s == nil {
		if g.debug {
			panic(ClosedPanicMessage)
		}
		return ErrClosed
	}
	if s.cache != nil {
		s.cache.reset()
	}
	m := g.metrics.Snapshot()
	g.log.Debug("end generator closed", "id", g.id, "seed", g.seed, "queries", m.Queries, "cache_hits", m.CacheHits, "island_scans", m.IslandScans)
	return nil
}

func (g *Generator) chunkBiome(s *state, x, z int64) biome.Biome {
	g.metrics.IncQueries()
	if s.classifier.Core(x, z) {
		return biome.TheEnd
	}
	key, cacheable := cacheKey(x, z)
	cacheable = cacheable && s.cache != nil
	if cacheable {
		if b, ok := s.cache.get(key); ok {
			return b
		}
	}
	b := s.classifier.Classify(g.islandHeight(s, x*2+1, z*2+1))
	if cacheable {
		s.cache.put(key, b)
	}
	return b
}

// islandHeight computes the height at (x, z) in half chunks: the distance
// falloff raised by every island peak within the scan radius.
func (g *Generator) islandHeight(s *state, x, z int64) float32 {
	g.metrics.IncIslandScans()
	h := s.falloff.Height(x, z)
	if saturated(x, z) {
		return h
	}
	l := &s.layout
	cx, cz := x/2, z/2
	ox, oz := x%2, z%2
	r := l.IslandScanRadius
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			px, pz := cx+dx, cz+dz
			if !s.islandAt(px, pz) {
				continue
			}
			peak := s.falloff.Peak(float32(ox-dx*2), float32(oz-dz*2), s.steepness(px, pz))
			h = max(h, peak)
		}
	}
	return h
}

// islandAt reports if the chunk at (x, z) holds an island peak.
func (s *state) islandAt(x, z int64) bool {
	excl := s.layout.IslandExclusionRadius
	if x*x+z*z <= excl*excl {
		return false
	}
	return s.noise.Sample(float64(x), float64(z)) < s.layout.IslandThreshold
}

// steepness returns how quickly the island peak at chunk (x, z) drops off.
func (s *state) steepness(x, z int64) float32 {
	l := &s.layout
	a := float32(abs32(float32(x)) * l.ElevationX)
	b := float32(abs32(float32(z)) * l.ElevationZ)
	return float32(math.Mod(float64(a+b), float64(l.ElevationModulus))) + l.ElevationBase
}

func (g *Generator) load() *state {
	s := g.state.Load()
	if s == nil && g.debug {
		panic(ClosedPanicMessage)
	}
	return s
}
