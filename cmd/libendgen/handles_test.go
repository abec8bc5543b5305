//go:build cgo

package main

import (
	"testing"

	"github.com/df-mc/endgen/world/biome"
)

func TestHandleLifecycle(t *testing.T) {
	h := newHandle(1551515151585454)
	if h == 0 {
		t.Fatalf("expected a non-zero handle")
	}
	if b := biomeAt(h, 10000, 251, 10000); b != biome.SmallEndIslands {
		t.Fatalf("expected small end islands, got %v", b)
	}
	if b := biome2DAt(h, 0, 0); b != biome.TheEnd {
		t.Fatalf("expected the end at the origin, got %v", b)
	}
	release(h)
	if generator(h) != nil {
		t.Fatalf("expected released handle to resolve to nil")
	}
	if b := biomeAt(h, 0, 0, 0); b != biome.Default {
		t.Fatalf("expected default biome from released handle, got %v", b)
	}
	// Releasing twice is a no-op.
	release(h)
}

func TestZeroHandle(t *testing.T) {
	if b := biome2DAt(0, 5, 5); b != biome.Default {
		t.Fatalf("expected default biome from zero handle, got %v", b)
	}
	release(0)
}

func TestHandlesIndependent(t *testing.T) {
	a, b := newHandle(1), newHandle(2)
	t.Cleanup(func() { release(a); release(b) })
	if a == b {
		t.Fatalf("expected distinct handles")
	}
	if generator(a).Seed() != 1 || generator(b).Seed() != 2 {
		t.Fatalf("handles resolve to the wrong generators")
	}
}
