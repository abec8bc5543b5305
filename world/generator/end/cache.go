package end

import (
	"math"
	"sync"

	"github.com/brentp/intintmap"
	"github.com/df-mc/endgen/world/biome"
	"github.com/segmentio/fasthash/fnv1a"
)

// cache memoises chunk biomes. It is split into shards, each an open
// addressing int map guarded by its own lock, so concurrent queries on
// different chunks rarely contend. A shard that grows beyond its limit is
// reset instead of evicting single entries.
type cache struct {
	shards  []cacheShard
	limit   int
	metrics *Metrics
}

type cacheShard struct {
	mu sync.RWMutex
	m  *intintmap.Map
}

const cacheFillFactor = 0.6

func newCache(shards, limit int, metrics *Metrics) *cache {
	c := &cache{shards: make([]cacheShard, shards), limit: limit, metrics: metrics}
	for i := range c.shards {
		c.shards[i].m = intintmap.New(64, cacheFillFactor)
	}
	return c
}

// cacheKey packs a chunk position into a single key. ok is false for
// positions that do not fit in 32 bits per axis; those are never cached.
func cacheKey(x, z int64) (key int64, ok bool) {
	if x > math.MaxInt32 || x < math.MinInt32 || z > math.MaxInt32 || z < math.MinInt32 {
		return 0, false
	}
	return int64(uint64(uint32(x))<<32 | uint64(uint32(z))), true
}

func (c *cache) shard(key int64) *cacheShard {
	return &c.shards[fnv1a.HashUint64(uint64(key))%uint64(len(c.shards))]
}

func (c *cache) get(key int64) (biome.Biome, bool) {
	s := c.shard(key)
	s.mu.RLock()
	v, ok := s.m.Get(key)
	s.mu.RUnlock()
	if ok {
		c.metrics.IncCacheHits()
	} else {
		c.metrics.IncCacheMisses()
	}
	return biome.Biome(v), ok
}

func (c *cache) put(key int64, b biome.Biome) {
	s := c.shard(key)
	s.mu.Lock()
	if s.m.Size() >= c.limit {
		s.m = intintmap.New(64, cacheFillFactor)
		c.metrics.IncEvictions()
	}
	s.m.Put(key, int64(b))
	s.mu.Unlock()
}

func (c *cache) len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += s.m.Size()
		s.mu.RUnlock()
	}
	return n
}

func (c *cache) reset() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.m = intintmap.New(8, cacheFillFactor)
		s.mu.Unlock()
	}
}
