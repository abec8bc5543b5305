package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/df-mc/endgen/world/generator/end"
	"github.com/df-mc/endgen/world/generator/end/region"
	"github.com/pelletier/go-toml"
)

// UserConfig is the user configurable part of endgen, stored in a TOML file.
type UserConfig struct {
	Generator struct {
		// Seed is the world seed the End is generated for.
		Seed int64
		// DisableCache disables memoisation of chunk biomes.
		DisableCache bool
		// CacheShardSize is the number of chunk biomes held per cache shard
		// before the shard is reset. Set to 0 to use the default.
		CacheShardSize int
		// Debug makes the generator panic when it is used after being closed.
		Debug bool
	}
	Layout struct {
		// Octaves is the number of noise octaves. The vanilla End uses one;
		// any other value produces a custom layout.
		Octaves int
		// CoreRadius is the radius in chunks of the central island.
		CoreRadius int64
	}
	Region struct {
		// Enabled controls whether a region map is sampled on startup.
		Enabled bool
		// MinX, MinZ, MaxX and MaxZ span the region sampled, in blocks.
		MinX, MinZ, MaxX, MaxZ int
		// Y is the height at which the region is sampled.
		Y int
		// Workers is the number of goroutines sampling the region. Set to 0
		// to use one per CPU.
		Workers int
		// Folder is the LevelDB folder sampled maps are cached in. Leave
		// empty to disable caching.
		Folder string
		// Output is a file the encoded map is written to. Leave empty to skip.
		Output string
	}
	Console struct {
		// Enabled controls whether commands are read from standard input.
		Enabled bool
	}
	Log struct {
		// Level is the minimum level logged: debug, info, warn or error.
		Level string
	}
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.Generator.Seed = 1551515151585454
	c.Layout.Octaves = 1
	c.Layout.CoreRadius = end.VanillaLayout().CoreRadius
	c.Region.MinX, c.Region.MinZ = 10000, 10000
	c.Region.MaxX, c.Region.MaxZ = 10999, 10999
	c.Region.Folder = "regions"
	c.Console.Enabled = true
	c.Log.Level = "info"
	return c
}

// loadConfig reads the UserConfig stored at path. If the file does not exist
// yet, it is created holding DefaultConfig.
func loadConfig(path string) (UserConfig, error) {
	c := DefaultConfig()
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, writeConfig(path, c)
		}
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(contents, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

func writeConfig(path string, c UserConfig) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	encoded, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Config converts the UserConfig to an end.Config. The layout is checked
// before it is returned.
func (uc UserConfig) Config(log *slog.Logger) (end.Config, error) {
	l := end.VanillaLayout()
	if uc.Layout.Octaves != 0 && uc.Layout.Octaves != l.Octaves {
		l.Octaves = uc.Layout.Octaves
		l.Version = "v2.0.0"
	}
	if uc.Layout.CoreRadius != 0 && uc.Layout.CoreRadius != l.CoreRadius {
		l.CoreRadius = uc.Layout.CoreRadius
		l.Version = "v2.0.0"
	}
	if err := l.Validate(); err != nil {
		return end.Config{}, fmt.Errorf("layout: %w", err)
	}
	return end.Config{
		Log:            log,
		Layout:         l,
		DisableCache:   uc.Generator.DisableCache,
		CacheShardSize: uc.Generator.CacheShardSize,
		Debug:          uc.Generator.Debug,
	}, nil
}

// Area returns the region area configured.
func (uc UserConfig) Area() (region.Area, error) {
	r := uc.Region
	a := region.NewArea(r.MinX, r.MinZ, r.MaxX, r.MaxZ, r.Y)
	return a, a.Validate()
}

// Level parses the configured log level.
func (uc UserConfig) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(uc.Log.Level))); err != nil {
		return slog.LevelInfo
	}
	return level
}
