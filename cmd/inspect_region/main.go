// Command inspect_region prints a summary of region map files written by
// endgen.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/df-mc/endgen/world/biome"
	"github.com/df-mc/endgen/world/generator/end/region"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect_region <file>...")
		os.Exit(2)
	}
	failed := false
	for _, path := range os.Args[1:] {
		if err := inspect(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func inspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	m, err := region.UnmarshalMap(data)
	if err != nil {
		return err
	}
	fmt.Printf("%s: seed %d, layout %s (%016x), area %v, %d columns\n", path, m.Seed, m.Version, m.Layout, m.Area, m.Area.Size())
	fmt.Printf("  sum %d, digest %016x, %d bytes encoded\n", m.Sum(), m.Digest(), len(data))

	counts := m.Counts()
	keys := make([]biome.Biome, 0, len(counts))
	for b := range counts {
		keys = append(keys, b)
	}
	slices.Sort(keys)
	for _, b := range keys {
		fmt.Printf("  %-18s %9d  %6.2f%%\n", b.EncodeBiome(), counts[b], float64(counts[b])/float64(m.Area.Size())*100)
	}
	return nil
}
