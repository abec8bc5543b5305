// Package rand implements the 48-bit linear congruential generator used by
// Java's java.util.Random. The End generator depends on its exact output, so
// nothing in this package may consult math/rand or any other entropy source.
package rand

const (
	multiplier = 0x5DEECE66D
	addend     = 0xB
	mask       = 1<<48 - 1
)

// Random is a seeded pseudo-random source that produces the same sequence as
// java.util.Random for the same seed. A Random is not safe for concurrent use.
type Random struct {
	state int64
}

// NewRandom returns a Random seeded like `new Random(seed)`.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// NewRandomRaw returns a Random whose internal state is set to state without
// scrambling it first. Only the lower 48 bits are kept.
func NewRandomRaw(state int64) *Random {
	return &Random{state: state & mask}
}

// SetSeed resets the Random as if it was newly created with the seed passed.
func (r *Random) SetSeed(seed int64) {
	r.state = Scramble(seed)
}

// State returns the current 48-bit internal state.
func (r *Random) State() int64 {
	return r.state
}

// Scramble returns the internal state that java.util.Random derives from a
// user supplied seed.
func Scramble(seed int64) int64 {
	return (seed ^ multiplier) & mask
}

// next advances the generator by one step and returns the highest bits of
// the new state.
func (r *Random) next(bits uint) int32 {
	r.state = (r.state*multiplier + addend) & mask
	return int32(uint64(r.state) >> (48 - bits))
}

// Skip advances the generator by n steps in O(log n).
func (r *Random) Skip(n int64) {
	if n <= 0 {
		return
	}
	r.state = JavaLCG.Combine(n).Next(r.state)
}

// Int31 returns a non-negative pseudo-random 31-bit integer.
func (r *Random) Int31() int32 {
	return r.next(31)
}

// Int32 returns a pseudo-random 32-bit integer, like Random.nextInt().
func (r *Random) Int32() int32 {
	return r.next(32)
}

// Int64 returns a pseudo-random 64-bit integer, like Random.nextLong().
func (r *Random) Int64() int64 {
	hi := int64(r.next(32))
	lo := int64(r.next(32))
	return hi<<32 + lo
}

// Int31n returns a pseudo-random integer in [0, n), like Random.nextInt(n).
// It panics if n <= 0.
func (r *Random) Int31n(n int32) int32 {
	if n <= 0 {
		panic("rand: invalid argument to Int31n")
	}
	if n&-n == n {
		return int32((int64(n) * int64(r.next(31))) >> 31)
	}
	for {
		bits := r.next(31)
		val := bits % n
		// The sum deliberately overflows int32, mirroring the rejection test
		// of the reference generator.
		if bits-val+(n-1) >= 0 {
			return val
		}
	}
}

// Range returns a pseudo-random integer in [min, max].
func (r *Random) Range(min, max int32) int32 {
	if max <= min {
		return min
	}
	return min + r.Int31n(max-min+1)
}

// Float64 returns a pseudo-random number in [0.0, 1.0) with 53 bits of
// precision, like Random.nextDouble().
func (r *Random) Float64() float64 {
	hi := int64(r.next(26))
	lo := int64(r.next(27))
	return float64(hi<<27+lo) * 0x1p-53
}

// Float32 returns a pseudo-random number in [0.0, 1.0), like Random.nextFloat().
func (r *Random) Float32() float32 {
	return float32(r.next(24)) / (1 << 24)
}

// Bool returns a pseudo-random boolean, like Random.nextBoolean().
func (r *Random) Bool() bool {
	return r.next(1) != 0
}
