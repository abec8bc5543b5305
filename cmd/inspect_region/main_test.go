package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/df-mc/endgen/world/generator/end"
	"github.com/df-mc/endgen/world/generator/end/region"
)

func TestInspect(t *testing.T) {
	g := end.New(1551515151585454)
	t.Cleanup(func() { _ = g.Close() })
	m, err := region.Sample(context.Background(), g, region.NewArea(0, 0, 63, 63, 0), region.SampleConfig{})
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	b, err := m.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "origin.region")
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := inspect(path); err != nil {
		t.Fatalf("inspect: %v", err)
	}

	if err := os.WriteFile(path, b[:len(b)/2], 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := inspect(path); err == nil {
		t.Fatalf("expected truncated file to fail")
	}
	if err := inspect(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected missing file to fail")
	}
}
