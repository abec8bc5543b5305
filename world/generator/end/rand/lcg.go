package rand

// LCG describes a 48-bit linear congruential step `state*Multiplier + Addend`.
type LCG struct {
	Multiplier int64
	Addend     int64
}

// JavaLCG is the single step used by java.util.Random.
var JavaLCG = LCG{Multiplier: multiplier, Addend: addend}

// Next applies the step to state and returns the masked result.
func (l LCG) Next(state int64) int64 {
	return (state*l.Multiplier + l.Addend) & mask
}

// Combine returns an LCG equivalent to applying l steps times.
func (l LCG) Combine(steps int64) LCG {
	mul, add := uint64(1), uint64(0)
	im, ia := uint64(l.Multiplier), uint64(l.Addend)
	for k := uint64(steps); k != 0; k >>= 1 {
		if k&1 != 0 {
			mul *= im
			add = im*add + ia
		}
		ia = (im + 1) * ia
		im *= im
	}
	return LCG{Multiplier: int64(mul & mask), Addend: int64(add & mask)}
}
