package end

import "testing"

func BenchmarkBiome(b *testing.B) {
	g := New(500)
	defer g.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Biome(500, 500, 500)
	}
}

func BenchmarkBiomeUncached(b *testing.B) {
	g := Config{DisableCache: true}.New(500)
	defer g.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Biome(500+i, 0, 500)
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New(int64(i)).Close()
	}
}
