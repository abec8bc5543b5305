package noise

import (
	"math"
	"testing"

	"github.com/df-mc/endgen/world/generator/end/rand"
)

func endRandom(seed int64) *rand.Random {
	r := rand.NewRandom(seed)
	r.Skip(17292)
	return r
}

func TestSimplexDeterministic(t *testing.T) {
	a, b := NewSimplex(endRandom(1551515151585454)), NewSimplex(endRandom(1551515151585454))
	if a.Permutation() != b.Permutation() {
		t.Fatalf("expected equal seeds to produce equal permutations")
	}
	for x := -50.0; x <= 50; x += 3.7 {
		for z := -50.0; z <= 50; z += 4.1 {
			if va, vb := a.Sample2D(x, z), b.Sample2D(x, z); va != vb {
				t.Fatalf("sample (%v, %v) differs: %v vs %v", x, z, va, vb)
			}
		}
	}
}

func TestSimplexPermutationIsPermutation(t *testing.T) {
	s := NewSimplex(endRandom(12))
	var seen [256]bool
	for _, v := range s.Permutation() {
		if v < 0 || v > 255 || seen[v] {
			t.Fatalf("permutation contains invalid or duplicate entry %d", v)
		}
		seen[v] = true
	}
}

func TestSimplexSeedSensitive(t *testing.T) {
	a, b := NewSimplex(endRandom(1)), NewSimplex(endRandom(2))
	if a.Permutation() == b.Permutation() {
		t.Fatalf("expected different seeds to produce different permutations")
	}
}

func TestSimplexFinite(t *testing.T) {
	// Each corner contributes at most 70 * max((0.5-d^2)^4 * sqrt(2) * d),
	// about 0.91, so three corners bound the raw value loosely by 3.
	s := NewSimplex(endRandom(-8))
	for x := -300.0; x < 300; x += 0.73 {
		for z := -300.0; z < 300; z += 1.9 {
			v := s.Sample2D(x, z)
			if math.IsNaN(v) || math.Abs(v) > 3 {
				t.Fatalf("sample (%v, %v) out of range: %v", x, z, v)
			}
		}
	}
}

func TestSimplexContinuous(t *testing.T) {
	s := NewSimplex(endRandom(77))
	const step = 1e-4
	for x := -20.0; x < 20; x += 0.37 {
		a, b := s.Sample2D(x, 3.3), s.Sample2D(x+step, 3.3)
		if math.Abs(a-b) > 0.01 {
			t.Fatalf("noise jumps between %v and %v: %v -> %v", x, x+step, a, b)
		}
	}
}

func TestOctavesSingleLayerMatchesSimplex(t *testing.T) {
	o := NewOctaves(endRandom(42), 1, 0.5, 2)
	s := NewSimplex(endRandom(42))
	for x := -40.0; x < 40; x += 2.5 {
		if o.Sample(x, -x) != Clamp(s.Sample2D(x, -x), -1, 1) {
			t.Fatalf("single octave differs from simplex at %v", x)
		}
	}
}

func TestOctavesBounded(t *testing.T) {
	o := NewOctaves(endRandom(42), 4, 0.5, 2)
	if o.Count() != 4 {
		t.Fatalf("expected 4 octaves, got %d", o.Count())
	}
	for x := -100.0; x < 100; x += 1.3 {
		for z := -100.0; z < 100; z += 2.9 {
			if v := o.Sample(x, z); v < -1 || v > 1 {
				t.Fatalf("octave sample out of range at (%v, %v): %v", x, z, v)
			}
		}
	}
}

func TestOctavesClampsCount(t *testing.T) {
	if o := NewOctaves(endRandom(1), 0, 0.5, 2); o.Count() != 1 {
		t.Fatalf("expected count to be raised to 1, got %d", o.Count())
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5.0, -1, 1) != 1 || Clamp(-5.0, -1, 1) != -1 || Clamp(float32(0.5), -1, 1) != 0.5 {
		t.Fatalf("clamp returned unexpected values")
	}
	if !math.IsNaN(Clamp(math.NaN(), -1, 1)) {
		t.Fatalf("expected NaN to pass through")
	}
}
