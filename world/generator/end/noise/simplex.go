// Package noise provides the seeded coherent noise used to place End islands.
package noise

import (
	"math"

	"github.com/df-mc/endgen/world/generator/end/rand"
)

var (
	sqrt3 = math.Sqrt(3)
	f2    = 0.5 * (sqrt3 - 1)
	g2    = (3 - sqrt3) / 6
)

var gradients = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

// Simplex is a seeded simplex noise generator. Its permutation and offsets are
// derived once in NewSimplex and are read-only afterwards, so a Simplex may be
// sampled from multiple goroutines.
type Simplex struct {
	xo, yo, zo float64
	p          [256]int32
}

// NewSimplex draws the offsets and the permutation table from r in the same
// order as the game does: three doubles followed by a 256 step shuffle.
func NewSimplex(r *rand.Random) *Simplex {
	s := &Simplex{
		xo: r.Float64() * 256,
		yo: r.Float64() * 256,
		zo: r.Float64() * 256,
	}
	for i := range s.p {
		s.p[i] = int32(i)
	}
	for i := int32(0); i < 256; i++ {
		j := r.Int31n(256-i) + i
		s.p[i], s.p[j] = s.p[j], s.p[i]
	}
	return s
}

// Offsets returns the three offsets drawn when the Simplex was created. The
// two dimensional sampler does not apply them.
func (s *Simplex) Offsets() (x, y, z float64) {
	return s.xo, s.yo, s.zo
}

// Permutation returns a copy of the permutation table.
func (s *Simplex) Permutation() [256]int32 {
	return s.p
}

func (s *Simplex) perm(i int) int {
	return int(s.p[i&255])
}

// Sample2D returns the noise value at (x, y). The offsets drawn in NewSimplex
// are not applied.
func (s *Simplex) Sample2D(x, y float64) float64 {
	skew := (x + y) * f2
	i := floor(x + skew)
	j := floor(y + skew)
	unskew := float64(i+j) * g2
	x0 := x - (float64(i) - unskew)
	y0 := y - (float64(j) - unskew)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}
	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + float64(2*g2)
	y2 := y0 - 1 + float64(2*g2)

	ii, jj := i&255, j&255
	gi0 := s.perm(ii+s.perm(jj)) % 12
	gi1 := s.perm(ii+i1+s.perm(jj+j1)) % 12
	gi2 := s.perm(ii+1+s.perm(jj+1)) % 12

	n0 := corner(gi0, x0, y0, 0, 0.5)
	n1 := corner(gi1, x1, y1, 0, 0.5)
	n2 := corner(gi2, x2, y2, 0, 0.5)
	return 70 * (n0 + n1 + n2)
}

// corner returns the contribution of one simplex corner. The explicit
// conversions keep every product rounded on its own so the compiler cannot
// fuse them into multiply-add instructions.
func corner(g int, x, y, z, radius float64) float64 {
	t := radius - float64(x*x) - float64(y*y) - float64(z*z)
	if t < 0 {
		return 0
	}
	t *= t
	grad := gradients[g]
	dot := float64(grad[0]*x) + float64(grad[1]*y) + float64(grad[2]*z)
	return t * t * dot
}

// floor matches the game's floor helper: truncate, then step down for
// negative fractions.
func floor(v float64) int {
	i := int(v)
	if v < float64(i) {
		return i - 1
	}
	return i
}
