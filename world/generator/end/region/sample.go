package region

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/df-mc/endgen/world/biome"
	"github.com/df-mc/endgen/world/generator/end"
	"golang.org/x/sync/errgroup"
)

// Source is a biome source that can be sampled. *end.Generator implements it.
type Source interface {
	Seed() int64
	Layout() end.Layout
	Biome(x, y, z int) biome.Biome
}

// SampleConfig holds optional parameters for Sample.
type SampleConfig struct {
	// Log is the Logger progress is reported to. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Workers is the maximum number of rows sampled concurrently. If zero or
	// negative, Workers is set to runtime.GOMAXPROCS(0).
	Workers int
}

func (conf SampleConfig) withDefaults() SampleConfig {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Workers <= 0 {
		conf.Workers = runtime.GOMAXPROCS(0)
	}
	return conf
}

// Sample queries the biome of every column in area from src. Rows along X
// are spread over conf.Workers goroutines. Sample stops early and returns the
// context's error if ctx is cancelled, and returns ErrInvalidArea if the area
// does not validate.
func Sample(ctx context.Context, src Source, area Area, conf SampleConfig) (*Map, error) {
	if err := area.Validate(); err != nil {
		return nil, err
	}
	conf = conf.withDefaults()
	start := time.Now()

	m := newMap(src.Seed(), src.Layout(), area)
	depth := area.Depth()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(conf.Workers)
	for x := area.MinX; x <= area.MaxX; x++ {
		if gctx.Err() != nil {
			break
		}
		row := m.Biomes[(x-area.MinX)*depth : (x-area.MinX+1)*depth]
		g.Go(func() error {
			for i := range row {
				if i%256 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				row[i] = src.Biome(x, area.Y, area.MinZ+i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	conf.Log.Debug("Sampled region.", "area", area, "columns", area.Size(), "workers", conf.Workers, "duration", time.Since(start))
	return m, nil
}
