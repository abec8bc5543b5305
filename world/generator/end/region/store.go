package region

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/df-mc/endgen/world/generator/end"
	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
	"golang.org/x/mod/semver"
)

// ErrNotFound is returned by Store.Get if no map was stored for the key.
var ErrNotFound = leveldb.ErrNotFound

// StoreConfig holds optional parameters for opening a Store.
type StoreConfig struct {
	// Log is the Logger used by the Store. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// ReadOnly opens the database without write access. Store.Load will still
	// sample missing maps but not save them.
	ReadOnly bool
}

// Store caches sampled maps in a LevelDB database. Maps are keyed by the
// major and minor layout version, the layout fingerprint, the seed and the
// area, so that maps of different layouts never collide.
type Store struct {
	db       *leveldb.DB
	log      *slog.Logger
	readOnly bool
}

// Open opens the LevelDB database at dir, creating it if it does not exist.
func (conf StoreConfig) Open(dir string) (*Store, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	db, err := leveldb.OpenFile(dir, &opt.Options{
		Compression: opt.NoCompression,
		ReadOnly:    conf.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("open region store %v: %w", dir, err)
	}
	conf.Log.Debug("Opened region store.", "dir", dir, "read-only", conf.ReadOnly)
	return &Store{db: db, log: conf.Log, readOnly: conf.ReadOnly}, nil
}

// OpenStore opens a Store at dir using the default StoreConfig.
func OpenStore(dir string) (*Store, error) {
	return StoreConfig{}.Open(dir)
}

// Key returns the database key a map of the area passed, sampled with the
// layout and seed passed, is stored under.
func Key(l end.Layout, seed int64, area Area) []byte {
	return storeKey(l.Version, l.Fingerprint(), seed, area)
}

func storeKey(version string, fingerprint uint64, seed int64, area Area) []byte {
	mm := semver.MajorMinor(version)
	key := make([]byte, 0, 4+len(mm)+1+7*8)
	key = append(key, "map:"...)
	key = append(key, mm...)
	key = append(key, ':')
	key = binary.LittleEndian.AppendUint64(key, fingerprint)
	key = binary.LittleEndian.AppendUint64(key, uint64(seed))
	for _, v := range []int{area.MinX, area.MinZ, area.MaxX, area.MaxZ, area.Y} {
		key = binary.LittleEndian.AppendUint64(key, uint64(int64(v)))
	}
	return key
}

// Get returns the map stored for the layout, seed and area passed. It
// returns an error wrapping ErrNotFound if no such map was stored.
func (s *Store) Get(l end.Layout, seed int64, area Area) (*Map, error) {
	b, err := s.db.Get(Key(l, seed, area), nil)
	if err != nil {
		return nil, fmt.Errorf("get map %v: %w", area, err)
	}
	m, err := UnmarshalMap(b)
	if err != nil {
		return nil, fmt.Errorf("get map %v: %w", area, err)
	}
	return m, nil
}

// Put stores the map passed, replacing any map previously stored under the
// same key.
func (s *Store) Put(m *Map) error {
	b, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	if err := s.db.Put(storeKey(m.Version, m.Layout, m.Seed, m.Area), b, nil); err != nil {
		return fmt.Errorf("put map %v: %w", m.Area, err)
	}
	return nil
}

// Delete removes the map stored for the layout, seed and area passed, if
// any.
func (s *Store) Delete(l end.Layout, seed int64, area Area) error {
	return s.db.Delete(Key(l, seed, area), nil)
}

// Load returns the map of area for src. Maps found in the Store are returned
// directly. Otherwise, or if the stored map is corrupt, the area is sampled
// and saved. cached reports if the map was read from the Store.
func (s *Store) Load(ctx context.Context, src Source, area Area, conf SampleConfig) (m *Map, cached bool, err error) {
	l := src.Layout()
	m, err = s.Get(l, src.Seed(), area)
	switch {
	case err == nil && l.Compatible(m.Version) && m.Layout == l.Fingerprint() && m.Seed == src.Seed():
		return m, true, nil
	case err == nil:
		s.log.Warn("Discarding region map of another layout.", "area", area, "version", m.Version, "want", l.Version, "layout", m.Layout, "want_layout", l.Fingerprint())
	case errors.Is(err, ErrNotFound):
		// Not sampled before.
	case errors.Is(err, ErrCorrupt):
		s.log.Warn("Discarding corrupt region map.", "area", area, "seed", src.Seed(), "err", err)
	default:
		return nil, false, err
	}

	if m, err = Sample(ctx, src, area, conf); err != nil {
		return nil, false, err
	}
	if s.readOnly {
		return m, false, nil
	}
	if err := s.Put(m); err != nil {
		return nil, false, err
	}
	return m, false, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
