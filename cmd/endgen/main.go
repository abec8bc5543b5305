// Command endgen generates End biomes for a seed. It runs a demo query,
// optionally samples and stores a region map and then reads commands from
// standard input.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"
	"unsafe"

	"github.com/df-mc/endgen/console"
	"github.com/df-mc/endgen/world/biome"
	"github.com/df-mc/endgen/world/generator/end"
	"github.com/df-mc/endgen/world/generator/end/region"
)

func main() {
	configPath := flag.String("config", "endgen.toml", "path to the TOML configuration file")
	seed := flag.Int64("seed", 0, "world seed, overrides the seed in the configuration file")
	flag.Parse()

	uc, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			uc.Generator.Seed = *seed
		}
	})

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uc.Level()}))
	if err := run(uc, log); err != nil {
		log.Error("endgen failed", "err", err)
		os.Exit(1)
	}
}

func run(uc UserConfig, log *slog.Logger) error {
	conf, err := uc.Config(log)
	if err != nil {
		return err
	}
	g := conf.New(uc.Generator.Seed)
	defer g.Close()

	demo(g)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if uc.Region.Enabled {
		if err := sampleRegion(ctx, uc, g, log); err != nil {
			return err
		}
	}
	if uc.Console.Enabled {
		log.Info("Console ready, type help for a list of commands.")
		console.New(g, log).Run(ctx)
	}
	return nil
}

// demo queries the small end islands position and sums a 100x100 area.
func demo(g *end.Generator) {
	if g.Biome(10000, 251, 10000) == biome.SmallEndIslands {
		fmt.Println("That's a win")
	}
	var sum int32
	for x := 0; x < 100; x++ {
		for z := 0; z < 100; z++ {
			sum += int32(g.Biome2D(10000+x, 10000+z))
		}
	}
	fmt.Println(sum)
	fmt.Println(unsafe.Sizeof(g.Seed()))
	fmt.Println(unsafe.Sizeof(g))
}

func sampleRegion(ctx context.Context, uc UserConfig, g *end.Generator, log *slog.Logger) error {
	area, err := uc.Area()
	if err != nil {
		return err
	}
	sconf := region.SampleConfig{Log: log, Workers: uc.Region.Workers}

	start := time.Now()
	var (
		m      *region.Map
		cached bool
	)
	if uc.Region.Folder != "" {
		s, err := region.StoreConfig{Log: log}.Open(uc.Region.Folder)
		if err != nil {
			return err
		}
		defer s.Close()
		if m, cached, err = s.Load(ctx, g, area, sconf); err != nil {
			return fmt.Errorf("load region: %w", err)
		}
	} else if m, err = region.Sample(ctx, g, area, sconf); err != nil {
		return fmt.Errorf("sample region: %w", err)
	}
	log.Info("Region ready.", "area", area, "cached", cached, "sum", m.Sum(), "digest", fmt.Sprintf("%016x", m.Digest()), "duration", time.Since(start))

	counts := m.Counts()
	keys := make([]biome.Biome, 0, len(counts))
	for b := range counts {
		keys = append(keys, b)
	}
	slices.Sort(keys)
	for _, b := range keys {
		log.Info("Biome coverage.", "biome", b.DisplayName(), "columns", counts[b], "share", fmt.Sprintf("%.2f%%", float64(counts[b])/float64(area.Size())*100))
	}

	if uc.Region.Output != "" {
		b, err := m.MarshalBinary()
		if err != nil {
			return err
		}
		if err := os.WriteFile(uc.Region.Output, b, 0644); err != nil {
			return fmt.Errorf("write region: %w", err)
		}
		log.Info("Wrote region map.", "file", uc.Region.Output, "bytes", len(b))
	}
	return nil
}
