//go:build cgo

package main

import (
	"runtime/cgo"

	"github.com/df-mc/endgen/world/biome"
	"github.com/df-mc/endgen/world/generator/end"
)

// newHandle creates a Generator for the seed passed and returns a handle to
// it that may be held by C code.
func newHandle(seed uint64) uintptr {
	return uintptr(cgo.NewHandle(end.New(int64(seed))))
}

// generator resolves a handle created by newHandle. It returns nil for the
// zero handle and for handles that were already released.
func generator(h uintptr) (g *end.Generator) {
	if h == 0 {
		return nil
	}
	defer func() {
		if recover() != nil {
			g = nil
		}
	}()
	g, _ = cgo.Handle(h).Value().(*end.Generator)
	return g
}

func biomeAt(h uintptr, x, y, z int32) biome.Biome {
	g := generator(h)
	if g == nil {
		return biome.Default
	}
	b, _ := end.GuardValue(func() biome.Biome {
		return g.Biome(int(x), int(y), int(z))
	})
	return b
}

func biome2DAt(h uintptr, x, z int32) biome.Biome {
	return biomeAt(h, x, 0, z)
}

// release closes the Generator behind h and invalidates the handle.
func release(h uintptr) {
	g := generator(h)
	if g == nil {
		return
	}
	cgo.Handle(h).Delete()
	_ = g.Close()
}
