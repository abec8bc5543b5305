package end

import "sync/atomic"

// Metrics tracks generator counters for observability. All methods are safe
// to call on a nil *Metrics.
type Metrics struct {
	queries     atomic.Uint64
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64
	evictions   atomic.Uint64
	scans       atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Queries, CacheHits, CacheMisses, Evictions, IslandScans uint64
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncQueries increments the chunk biome query counter.
func (m *Metrics) IncQueries() {
	if m == nil {
		return
	}
	m.queries.Add(1)
}

// IncCacheHits increments the cache hit counter.
func (m *Metrics) IncCacheHits() {
	if m == nil {
		return
	}
	m.cacheHits.Add(1)
}

// IncCacheMisses increments the cache miss counter.
func (m *Metrics) IncCacheMisses() {
	if m == nil {
		return
	}
	m.cacheMisses.Add(1)
}

// IncEvictions increments the counter of cache shards that were reset.
func (m *Metrics) IncEvictions() {
	if m == nil {
		return
	}
	m.evictions.Add(1)
}

// IncIslandScans increments the counter of island scans performed.
func (m *Metrics) IncIslandScans() {
	if m == nil {
		return
	}
	m.scans.Add(1)
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	return MetricsSnapshot{
		Queries:     m.queries.Load(),
		CacheHits:   m.cacheHits.Load(),
		CacheMisses: m.cacheMisses.Load(),
		Evictions:   m.evictions.Load(),
		IslandScans: m.scans.Load(),
	}
}
