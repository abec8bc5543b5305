package end

import (
	"math"

	"github.com/df-mc/endgen/world/generator/end/noise"
)

// saturationLimit is the largest coordinate, in half chunks, for which
// heights are computed. Beyond it every height saturates at the layout's
// minimum instead of overflowing.
const saturationLimit = 1 << 28

// Falloff computes the base height of the End from the distance to the
// origin. Heights are computed in float32 arithmetic with every intermediate
// rounded explicitly, so results are identical on every platform.
type Falloff struct {
	peak, scale float32
	min, max    float32
}

// NewFalloff returns the Falloff described by the layout passed.
func NewFalloff(l Layout) Falloff {
	return Falloff{peak: l.FalloffPeak, scale: l.FalloffScale, min: l.HeightMin, max: l.HeightMax}
}

// Height returns the height at (x, z), measured in half chunks (eight blocks).
// The result decreases monotonically with the distance to the origin.
func (f Falloff) Height(x, z int64) float32 {
	if saturated(x, z) {
		return f.min
	}
	d := sqrt32(float32(x*x + z*z))
	return noise.Clamp(f.peak-float32(d*f.scale), f.min, f.max)
}

// Weight maps Height linearly onto [0, 1]: 1 at the origin, 0 in the
// outer End.
func (f Falloff) Weight(x, z int64) float32 {
	return (f.Height(x, z) - f.min) / (f.max - f.min)
}

// Peak returns the height contributed by an island peak at offset (dx, dz)
// with the steepness passed.
func (f Falloff) Peak(dx, dz, steepness float32) float32 {
	d := sqrt32(float32(dx*dx) + float32(dz*dz))
	return noise.Clamp(f.peak-float32(d*steepness), f.min, f.max)
}

func saturated(x, z int64) bool {
	return x > saturationLimit || x < -saturationLimit || z > saturationLimit || z < -saturationLimit
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func abs32(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) &^ (1 << 31))
}
