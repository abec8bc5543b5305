package noise

import (
	"github.com/df-mc/endgen/world/generator/end/rand"
	"golang.org/x/exp/constraints"
)

// Octaves layers several Simplex generators. Octave k is sampled at
// frequency lacunarity^k with amplitude persistence^k and the sum is divided
// by the total amplitude, keeping the result within [-1, 1]. With a single
// octave Sample returns exactly the value of the underlying Simplex.
type Octaves struct {
	layers      []*Simplex
	persistence float64
	lacunarity  float64
	amplitude   float64
}

// NewOctaves creates count Simplex layers, drawing their tables from r one
// after another. count is raised to 1 if lower.
func NewOctaves(r *rand.Random, count int, persistence, lacunarity float64) *Octaves {
	count = max(count, 1)
	o := &Octaves{
		layers:      make([]*Simplex, count),
		persistence: persistence,
		lacunarity:  lacunarity,
	}
	amp := 1.0
	for i := range o.layers {
		o.layers[i] = NewSimplex(r)
		o.amplitude += amp
		amp *= persistence
	}
	return o
}

// Count returns the amount of octaves.
func (o *Octaves) Count() int {
	return len(o.layers)
}

// Layer returns the Simplex of octave i.
func (o *Octaves) Layer(i int) *Simplex {
	return o.layers[i]
}

// Sample returns the normalised multi-octave noise value at (x, z).
func (o *Octaves) Sample(x, z float64) float64 {
	if len(o.layers) == 1 {
		return Clamp(o.layers[0].Sample2D(x, z), -1, 1)
	}
	var sum float64
	amp, freq := 1.0, 1.0
	for _, layer := range o.layers {
		sum += float64(layer.Sample2D(float64(x*freq), float64(z*freq)) * amp)
		amp *= o.persistence
		freq *= o.lacunarity
	}
	return Clamp(sum/o.amplitude, -1, 1)
}

// Clamp limits v to [lo, hi]. NaN is passed through unchanged.
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
