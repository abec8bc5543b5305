// Package region samples rectangular areas of the End into biome maps and
// persists them. Sampling is spread over a bounded number of goroutines;
// maps are encoded as zstd compressed NBT and may be cached in LevelDB.
package region

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxArea is the largest number of columns a single Area may hold.
const MaxArea = 1 << 26

// ErrInvalidArea is returned for areas that are empty or exceed MaxArea.
var ErrInvalidArea = errors.New("region: invalid area")

// Area is a rectangle of block columns, bounds inclusive, sampled at the
// height Y.
type Area struct {
	MinX, MinZ int
	MaxX, MaxZ int
	Y          int
}

// NewArea returns the Area spanned by the two corners passed, sampled at y.
func NewArea(x0, z0, x1, z1, y int) Area {
	return Area{
		MinX: min(x0, x1), MinZ: min(z0, z1),
		MaxX: max(x0, x1), MaxZ: max(z0, z1),
		Y: y,
	}
}

// Width returns the number of columns along the X axis.
func (a Area) Width() int {
	return a.MaxX - a.MinX + 1
}

// Depth returns the number of columns along the Z axis.
func (a Area) Depth() int {
	return a.MaxZ - a.MinZ + 1
}

// Size returns the number of columns in the Area.
func (a Area) Size() int {
	return a.Width() * a.Depth()
}

// Validate returns ErrInvalidArea if the Area is empty or too large.
func (a Area) Validate() error {
	if a.MinX > a.MaxX || a.MinZ > a.MaxZ {
		return fmt.Errorf("%w: min (%d, %d) exceeds max (%d, %d)", ErrInvalidArea, a.MinX, a.MinZ, a.MaxX, a.MaxZ)
	}
	if w, d := a.Width(), a.Depth(); w <= 0 || d <= 0 || w > MaxArea || d > MaxArea || w*d > MaxArea {
		return fmt.Errorf("%w: %dx%d columns exceeds the limit of %d", ErrInvalidArea, w, d, MaxArea)
	}
	return nil
}

// Contains reports if the column (x, z) lies within the Area.
func (a Area) Contains(x, z int) bool {
	return x >= a.MinX && x <= a.MaxX && z >= a.MinZ && z <= a.MaxZ
}

// Centre returns the centre of the Area in block coordinates.
func (a Area) Centre() mgl64.Vec2 {
	return mgl64.Vec2{
		float64(a.MinX) + float64(a.Width())/2,
		float64(a.MinZ) + float64(a.Depth())/2,
	}
}

func (a Area) String() string {
	return fmt.Sprintf("(%d, %d)-(%d, %d)@%d", a.MinX, a.MinZ, a.MaxX, a.MaxZ, a.Y)
}
