package console

import (
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/df-mc/endgen/world/biome"
	"github.com/df-mc/endgen/world/generator/end"
)

// Command is a console command operating on a Generator.
type Command struct {
	name, usage, description string
	aliases                  []string
	run                      func(g *end.Generator, args []int64, o *Output)
	// args is the number of integer arguments the command takes.
	args int
}

// Name returns the name of the Command.
func (c Command) Name() string { return c.name }

// Usage returns a usage line of the Command.
func (c Command) Usage() string { return strings.TrimSpace(c.name + " " + c.usage) }

// Description returns what the Command does.
func (c Command) Description() string { return c.description }

// Execute parses the arguments passed and runs the Command on g.
func (c Command) Execute(g *end.Generator, args []string, o *Output) {
	if len(args) != c.args {
		o.Errorf("usage: %v", c.Usage())
		return
	}
	parsed := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			o.Errorf("invalid coordinate %q: must be a 32-bit integer", arg)
			return
		}
		parsed[i] = v
	}
	c.run(g, parsed, o)
}

var commands = map[string]Command{}

func register(c Command) {
	commands[c.name] = c
	for _, alias := range c.aliases {
		commands[alias] = c
	}
}

// ByAlias returns the Command registered under the name or alias passed.
func ByAlias(alias string) (Command, bool) {
	c, ok := commands[strings.ToLower(alias)]
	return c, ok
}

// Commands returns every registered Command once, sorted by name.
func Commands() []Command {
	seen := make(map[string]bool)
	var list []Command
	for _, c := range commands {
		if !seen[c.name] {
			seen[c.name] = true
			list = append(list, c)
		}
	}
	slices.SortFunc(list, func(a, b Command) int { return strings.Compare(a.name, b.name) })
	return list
}

func init() {
	register(Command{name: "biome", usage: "<x> <y> <z>", description: "Prints the biome at a block position.", aliases: []string{"b"}, args: 3, run: runBiome})
	register(Command{name: "biome2d", usage: "<x> <z>", description: "Prints the biome at a block column.", args: 2, run: runBiome2D})
	register(Command{name: "chunk", usage: "<x> <z>", description: "Prints the biome of a chunk column.", args: 2, run: runChunk})
	register(Command{name: "height", usage: "<x> <z>", description: "Prints the island height of a chunk column.", args: 2, run: runHeight})
	register(Command{name: "islands", usage: "<x0> <z0> <x1> <z1>", description: "Lists island peaks in a chunk rectangle.", args: 4, run: runIslands})
	register(Command{name: "seed", description: "Prints the seed and layout of the generator.", run: runSeed})
	register(Command{name: "status", description: "Displays generator statistics.", aliases: []string{"stats"}, run: runStatus})
	register(Command{name: "help", description: "Lists the available commands.", aliases: []string{"?"}, run: runHelp})
}

func describe(b biome.Biome) string {
	return fmt.Sprintf("%v (%v, id %d)", b.DisplayName(), b.EncodeBiome(), uint8(b))
}

func runBiome(g *end.Generator, args []int64, o *Output) {
	o.Printf("Biome at (%d, %d, %d): %v", args[0], args[1], args[2], describe(g.Biome(int(args[0]), int(args[1]), int(args[2]))))
}

func runBiome2D(g *end.Generator, args []int64, o *Output) {
	o.Printf("Biome at (%d, %d): %v", args[0], args[1], describe(g.Biome2D(int(args[0]), int(args[1]))))
}

func runChunk(g *end.Generator, args []int64, o *Output) {
	pos := end.ChunkPos{int32(args[0]), int32(args[1])}
	o.Printf("Biome of chunk %v: %v", pos, describe(g.ChunkBiome(pos)))
}

func runHeight(g *end.Generator, args []int64, o *Output) {
	h := g.IslandHeight(args[0]*2+1, args[1]*2+1)
	o.Printf("Island height of chunk (%d, %d): %.2f", args[0], args[1], h)
}

// maxIslandScan limits the chunk area scanned by the islands command.
const maxIslandScan = 512 * 512

func runIslands(g *end.Generator, args []int64, o *Output) {
	a, b := end.ChunkPos{int32(args[0]), int32(args[1])}, end.ChunkPos{int32(args[2]), int32(args[3])}
	w := max(a[0], b[0]) - min(a[0], b[0]) + 1
	d := max(a[1], b[1]) - min(a[1], b[1]) + 1
	if int64(w)*int64(d) > maxIslandScan {
		o.Errorf("area of %dx%d chunks is too large, at most %d chunks may be scanned", w, d, maxIslandScan)
		return
	}
	islands := g.Islands(a, b)
	o.Printf("Found %d island(s) between %v and %v.", len(islands), a, b)
	for _, island := range islands {
		o.Printf("  chunk %v at (%.0f, %.0f), steepness %.0f", island.Chunk, island.Pos.X(), island.Pos.Y(), island.Steepness)
	}
}

func runSeed(g *end.Generator, _ []int64, o *Output) {
	l := g.Layout()
	o.Printf("Seed: %d | Generator: %v", g.Seed(), g.ID())
	o.Printf("Layout: %v | Octaves: %d | Core radius: %d chunks", l.Version, l.Octaves, l.CoreRadius)
}

func runStatus(g *end.Generator, _ []int64, o *Output) {
	m := g.Metrics().Snapshot()
	hitRate := 0.0
	if total := m.CacheHits + m.CacheMisses; total > 0 {
		hitRate = float64(m.CacheHits) / float64(total) * 100
	}
	o.Printf("Queries: %d | Island scans: %d", m.Queries, m.IslandScans)
	o.Printf("Cache: %d entries | Hit rate: %.2f%% | Evictions: %d", g.CacheLen(), hitRate, m.Evictions)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	o.Printf("Memory: %.2f MiB heap used / %.2f MiB reserved", float64(mem.HeapAlloc)/(1024*1024), float64(mem.HeapSys)/(1024*1024))
}

func runHelp(_ *end.Generator, _ []int64, o *Output) {
	for _, c := range Commands() {
		o.Printf("%v - %v", c.Usage(), c.Description())
	}
}
