// Package voronoi implements the fuzzed biome zoom that maps block positions
// onto the 4x4x4 cells biomes are stored in. Every cell corner is jittered by
// a hash of its position, so biome borders do not follow the cell grid.
package voronoi

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// Magnifier selects the biome cell for a block position. It holds only the
// hashed seed and may be shared between goroutines.
type Magnifier struct {
	seed int64
}

// New returns a Magnifier for the world seed passed. The seed is hashed the
// way the game obfuscates it before sending it to clients.
func New(worldSeed int64) Magnifier {
	return Magnifier{seed: HashSeed(worldSeed)}
}

// HashSeed returns the first eight bytes, little endian, of the SHA-256 hash
// of the little endian encoded seed.
func HashSeed(seed int64) int64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	sum := sha256.Sum256(buf[:])
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}

// Seed returns the hashed seed used for jittering.
func (m Magnifier) Seed() int64 {
	return m.seed
}

// Cell returns the coordinates of the biome cell (in units of four blocks)
// that the block at (x, y, z) samples its biome from.
func (m Magnifier) Cell(x, y, z int64) (cx, cy, cz int64) {
	bx, by, bz := x-2, y-2, z-2
	cellX, cellY, cellZ := bx>>2, by>>2, bz>>2
	frac := mgl64.Vec3{
		float64(bx&3) / 4,
		float64(by&3) / 4,
		float64(bz&3) / 4,
	}

	best := 0
	var bestDist float64
	for i := 0; i < 8; i++ {
		cornerX, cornerY, cornerZ := cellX, cellY, cellZ
		offset := frac
		if i&4 != 0 {
			cornerX++
			offset[0]--
		}
		if i&2 != 0 {
			cornerY++
			offset[1]--
		}
		if i&1 != 0 {
			cornerZ++
			offset[2]--
		}
		dist := m.cornerDistance(cornerX, cornerY, cornerZ, offset)
		// Strictly smaller only: on a tie the lower corner index wins.
		if i == 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}

	cx, cy, cz = cellX, cellY, cellZ
	if best&4 != 0 {
		cx++
	}
	if best&2 != 0 {
		cy++
	}
	if best&1 != 0 {
		cz++
	}
	return cx, cy, cz
}

// Jitter returns the pseudo-random displacement of the cell corner at
// (x, y, z). Every component lies in [-0.45, 0.45).
func (m Magnifier) Jitter(x, y, z int64) mgl64.Vec3 {
	h := next(m.seed, x)
	h = next(h, y)
	h = next(h, z)
	h = next(h, x)
	h = next(h, y)
	h = next(h, z)
	jx := fiddle(h)
	h = next(h, m.seed)
	jy := fiddle(h)
	h = next(h, m.seed)
	jz := fiddle(h)
	return mgl64.Vec3{jx, jy, jz}
}

// cornerDistance returns the squared distance between the jittered corner and
// the block, summed in z, y, x order with each square rounded separately.
func (m Magnifier) cornerDistance(x, y, z int64, offset mgl64.Vec3) float64 {
	j := m.Jitter(x, y, z)
	dx, dy, dz := offset[0]+j[0], offset[1]+j[1], offset[2]+j[2]
	return float64(dz*dz) + float64(dy*dy) + float64(dx*dx)
}

func next(seed, salt int64) int64 {
	return seed*(seed*lcgMultiplier+lcgIncrement) + salt
}

func fiddle(seed int64) float64 {
	d := float64((seed>>24)&1023) / 1024
	return (d - 0.5) * 0.9
}
