package console

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/df-mc/endgen/world/generator/end"
)

const demoSeed = 1551515151585454

func newTestConsole(t *testing.T, conf end.Config, input string) (*Console, *bytes.Buffer) {
	t.Helper()
	g := conf.New(demoSeed)
	t.Cleanup(func() { end.Guard(func() { _ = g.Close() }) })
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	return New(g, log).WithReader(strings.NewReader(input)), &buf
}

func TestConsoleBiome(t *testing.T) {
	c, buf := newTestConsole(t, end.Config{}, "biome 10000 251 10000\n\n/biome2d 0 0\n")
	c.Run(context.Background())

	out := buf.String()
	if !strings.Contains(out, "minecraft:small_end_islands") {
		t.Fatalf("expected small end islands in output, got:\n%s", out)
	}
	if !strings.Contains(out, "minecraft:the_end") {
		t.Fatalf("expected the end at the origin, got:\n%s", out)
	}
}

func TestConsoleErrors(t *testing.T) {
	c, _ := newTestConsole(t, end.Config{}, "")
	if o := c.ExecuteLine("teleport 1 2 3"); len(o.Errors()) != 1 {
		t.Fatalf("expected unknown command error, got %v", o.Errors())
	}
	if o := c.ExecuteLine("biome 1 2"); len(o.Errors()) != 1 || !strings.Contains(o.Errors()[0].Error(), "usage") {
		t.Fatalf("expected usage error, got %v", o.Errors())
	}
	if o := c.ExecuteLine("chunk one 2"); len(o.Errors()) != 1 {
		t.Fatalf("expected invalid coordinate error, got %v", o.Errors())
	}
	if o := c.ExecuteLine("chunk 4294967296 0"); len(o.Errors()) != 1 {
		t.Fatalf("expected out of range coordinate error, got %v", o.Errors())
	}
	if o := c.ExecuteLine("islands -1000 -1000 1000 1000"); len(o.Errors()) != 1 {
		t.Fatalf("expected oversized scan to be rejected, got %v", o.Errors())
	}
}

func TestConsoleCommands(t *testing.T) {
	c, _ := newTestConsole(t, end.Config{}, "")
	for _, line := range []string{"seed", "status", "stats", "help", "height 0 0", "chunk 0 0", "islands 500 500 520 520"} {
		o := c.ExecuteLine(line)
		if len(o.Errors()) != 0 || len(o.Messages()) == 0 {
			t.Fatalf("%q: expected output without errors, got %v %v", line, o.Messages(), o.Errors())
		}
	}
	o := c.ExecuteLine("height 0 0")
	if !strings.Contains(o.Messages()[0], "80.00") {
		t.Fatalf("expected the origin to be at peak height, got %v", o.Messages())
	}
	if len(c.ExecuteLine("help").Messages()) != len(Commands()) {
		t.Fatalf("expected help to list every command once")
	}
}

func TestConsoleStops(t *testing.T) {
	c, buf := newTestConsole(t, end.Config{}, "stop\nbiome 0 0 0\n")
	c.Run(context.Background())
	if strings.Contains(buf.String(), "Biome at") {
		t.Fatalf("expected no commands to run after stop")
	}
}

func TestConsoleCancelled(t *testing.T) {
	c, buf := newTestConsole(t, end.Config{}, "biome 0 0 0\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Run(ctx)
	if buf.Len() != 0 {
		t.Fatalf("expected no output after cancellation, got %s", buf.String())
	}
}

func TestConsoleClosedGenerator(t *testing.T) {
	c, _ := newTestConsole(t, end.Config{Debug: true}, "")
	if err := c.gen.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	o := c.ExecuteLine("biome 0 0 0")
	if len(o.Errors()) != 1 || o.Errors()[0].Error() != "generator is closed" {
		t.Fatalf("expected closed generator error, got %v", o.Errors())
	}
}
