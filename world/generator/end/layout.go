package end

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/mod/semver"
)

// LayoutVersion is the version tag of VanillaLayout. It changes whenever a
// constant of the vanilla layout changes, so stored region maps generated by
// an older layout are never mistaken for current ones.
const LayoutVersion = "v1.0.0"

// Layout holds every constant that shapes the generated End. All lengths
// are measured in chunks unless noted otherwise. A Layout is immutable once
// it has been passed to Config.New.
type Layout struct {
	// Version is a semantic version tag identifying the layout.
	Version string

	// RandomSkip is the number of steps the seeded random is advanced before
	// the noise tables are drawn from it.
	RandomSkip int64
	// Octaves is the number of noise octaves. The vanilla End uses one.
	Octaves int
	// Persistence is the amplitude factor between two consecutive octaves.
	Persistence float64
	// Lacunarity is the frequency factor between two consecutive octaves.
	Lacunarity float64

	// CoreRadius is the radius of the central island. Chunks within it are
	// always classified as biome.TheEnd.
	CoreRadius int64
	// IslandScanRadius is how many chunks around a column are scanned for
	// island peaks.
	IslandScanRadius int64
	// IslandExclusionRadius is the radius around the origin in which no
	// outer island peak is placed.
	IslandExclusionRadius int64
	// IslandThreshold is the noise value below which a chunk holds an island
	// peak.
	IslandThreshold float64
	// ElevationX, ElevationZ, ElevationModulus and ElevationBase derive the
	// steepness of an island peak from its position:
	// (|x|*ElevationX + |z|*ElevationZ) mod ElevationModulus + ElevationBase.
	ElevationX, ElevationZ, ElevationModulus, ElevationBase float32

	// FalloffPeak is the height at the origin, FalloffScale how fast the
	// height drops per half chunk of distance.
	FalloffPeak, FalloffScale float32
	// HeightMin and HeightMax bound every computed height.
	HeightMin, HeightMax float32

	// HighlandsAbove, MidlandsFrom and SmallIslandsBelow are the height bands
	// used to classify outer chunks. Heights equal to a boundary fall into
	// the lower-priority band.
	HighlandsAbove, MidlandsFrom, SmallIslandsBelow float32
}

// VanillaLayout returns the layout of the Java Edition End.
func VanillaLayout() Layout {
	return Layout{
		Version:               LayoutVersion,
		RandomSkip:            17292,
		Octaves:               1,
		Persistence:           0.5,
		Lacunarity:            2,
		CoreRadius:            64,
		IslandScanRadius:      12,
		IslandExclusionRadius: 64,
		IslandThreshold:       -0.8999999761581421,
		ElevationX:            3439,
		ElevationZ:            147,
		ElevationModulus:      13,
		ElevationBase:         9,
		FalloffPeak:           100,
		FalloffScale:          8,
		HeightMin:             -100,
		HeightMax:             80,
		HighlandsAbove:        40,
		MidlandsFrom:          0,
		SmallIslandsBelow:     -20,
	}
}

// Validate checks that the layout describes a usable generator.
func (l Layout) Validate() error {
	var errs []error
	if !semver.IsValid(l.Version) {
		errs = append(errs, fmt.Errorf("version %q is not a semantic version", l.Version))
	}
	if l.RandomSkip < 0 {
		errs = append(errs, errors.New("random skip must not be negative"))
	}
	if l.Octaves < 1 {
		errs = append(errs, fmt.Errorf("octave count must be at least 1, got %d", l.Octaves))
	}
	if l.Persistence <= 0 || l.Persistence > 1 {
		errs = append(errs, fmt.Errorf("persistence must be in (0, 1], got %v", l.Persistence))
	}
	if l.Lacunarity < 1 {
		errs = append(errs, fmt.Errorf("lacunarity must be at least 1, got %v", l.Lacunarity))
	}
	if l.CoreRadius < 0 || l.IslandExclusionRadius < 0 {
		errs = append(errs, errors.New("radii must not be negative"))
	}
	if l.IslandScanRadius < 0 || l.IslandScanRadius > 64 {
		errs = append(errs, fmt.Errorf("island scan radius must be in [0, 64], got %d", l.IslandScanRadius))
	}
	if l.IslandThreshold < -1 || l.IslandThreshold > 1 {
		errs = append(errs, fmt.Errorf("island threshold must be in [-1, 1], got %v", l.IslandThreshold))
	}
	if l.ElevationModulus <= 0 {
		errs = append(errs, errors.New("elevation modulus must be positive"))
	}
	if l.FalloffScale <= 0 {
		errs = append(errs, errors.New("falloff scale must be positive"))
	}
	if l.HeightMin >= l.HeightMax {
		errs = append(errs, fmt.Errorf("height bounds are empty: [%v, %v]", l.HeightMin, l.HeightMax))
	}
	if !(l.SmallIslandsBelow <= l.MidlandsFrom && l.MidlandsFrom <= l.HighlandsAbove) {
		errs = append(errs, fmt.Errorf("height bands out of order: %v <= %v <= %v", l.SmallIslandsBelow, l.MidlandsFrom, l.HighlandsAbove))
	}
	return errors.Join(errs...)
}

// Compatible reports if region data produced with a layout tagged version
// may be reused by l: both must share the same major and minor version.
func (l Layout) Compatible(version string) bool {
	if !semver.IsValid(version) || !semver.IsValid(l.Version) {
		return false
	}
	return semver.MajorMinor(version) == semver.MajorMinor(l.Version)
}

// Fingerprint returns an xxhash of every constant of the layout except its
// Version. Two layouts sharing a fingerprint generate the same End.
func (l Layout) Fingerprint() uint64 {
	b := make([]byte, 0, 128)
	for _, v := range []int64{l.RandomSkip, int64(l.Octaves), l.CoreRadius, l.IslandScanRadius, l.IslandExclusionRadius} {
		b = binary.LittleEndian.AppendUint64(b, uint64(v))
	}
	for _, v := range []float64{l.Persistence, l.Lacunarity, l.IslandThreshold} {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
	}
	for _, v := range []float32{
		l.ElevationX, l.ElevationZ, l.ElevationModulus, l.ElevationBase,
		l.FalloffPeak, l.FalloffScale, l.HeightMin, l.HeightMax,
		l.HighlandsAbove, l.MidlandsFrom, l.SmallIslandsBelow,
	} {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return xxhash.Sum64(b)
}
