package end

import (
	"log/slog"
	"runtime"
)

// Config contains options for creating a Generator. The zero value is
// usable and produces the vanilla End.
type Config struct {
	// Log is the Logger used to report generator lifecycle events. If nil,
	// Log is set to slog.Default().
	Log *slog.Logger
	// Layout holds the constants shaping the generated End. If left as the
	// zero value, VanillaLayout() is used.
	Layout Layout
	// DisableCache disables memoising chunk biomes. Results never depend on
	// the cache; disabling it only trades memory for CPU time.
	DisableCache bool
	// CacheShards is the number of independently locked cache shards. If 0 or
	// lower, a count derived from the number of CPUs is used.
	CacheShards int
	// CacheShardSize is the number of chunk biomes a shard may hold before it
	// is reset. If 0 or lower, 4096 is used.
	CacheShardSize int
	// Debug turns misuse of a closed Generator into a panic instead of
	// silently returning biome.Default.
	Debug bool
}

func (conf Config) withDefaults() Config {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Layout == (Layout{}) {
		conf.Layout = VanillaLayout()
	}
	if conf.CacheShards <= 0 {
		conf.CacheShards = runtime.GOMAXPROCS(0) * 4
	}
	if conf.CacheShardSize <= 0 {
		conf.CacheShardSize = 4096
	}
	return conf
}
