package end

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Island is an island peak placed by the noise field.
type Island struct {
	// Chunk is the chunk holding the peak.
	Chunk ChunkPos
	// Pos is the block position of the peak's centre on the horizontal plane.
	Pos mgl64.Vec2
	// Steepness is how fast the island height drops per half chunk away from
	// the centre. Lower values produce larger islands.
	Steepness float32
}

// Islands returns every island peak in the chunk rectangle spanned by a and
// b, both inclusive, ordered by X, then Z.
func (g *Generator) Islands(a, b ChunkPos) []Island {
	s := g.load()
	if s == nil {
		return nil
	}
	minX, maxX := min(a[0], b[0]), max(a[0], b[0])
	minZ, maxZ := min(a[1], b[1]), max(a[1], b[1])

	var islands []Island
	for x := int64(minX); x <= int64(maxX); x++ {
		for z := int64(minZ); z <= int64(maxZ); z++ {
			if saturated(x*2, z*2) || !s.islandAt(x, z) {
				continue
			}
			islands = append(islands, Island{
				Chunk:     ChunkPos{int32(x), int32(z)},
				Pos:       mgl64.Vec2{float64(x * 16), float64(z * 16)},
				Steepness: s.steepness(x, z),
			})
		}
	}
	return islands
}

// Distance returns the horizontal distance in blocks between the island's
// centre and the block position passed.
func (i Island) Distance(x, z float64) float64 {
	return mgl64.Vec2{x, z}.Sub(i.Pos).Len()
}
