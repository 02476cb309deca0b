// Package store persists WKB values in pebble and answers bounding box
// queries through an in-memory R-tree.
//
// Values are keyed by KSUIDs, so ids sort by insertion time. The R-tree is not
// persisted; Open rebuilds it by decoding every stored value.
//
//	s, err := store.Open("/var/lib/wkb")
//	id, err := s.Put(wkbBytes)
//	ids, err := s.Query(geom.NewEnvelope(0, 0, 10, 10))
//
// A Store is safe for concurrent use.
package store

import (
	"slices"
	"sync"

	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/index"
	"github.com/arloliu/wkb/internal/options"
	"github.com/arloliu/wkb/reader"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// keyPrefix namespaces geometry keys.
var keyPrefix = []byte("g/")

func geometryKey(id ksuid.KSUID) []byte {
	return append(slices.Clone(keyPrefix), id.Bytes()...)
}

func keyUpperBound() []byte {
	upper := slices.Clone(keyPrefix)
	upper[len(upper)-1]++

	return upper
}

// Store is a persistent WKB store.
type Store struct {
	mu        sync.RWMutex
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
	index     *index.Index[ksuid.KSUID]
	readers   sync.Pool
	closed    bool
}

// Open opens or creates the store in dir and rebuilds its spatial index.
func Open(dir string, opts ...Option) (*Store, error) {
	cfg := &Config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	// build one reader up front so bad reader options fail here
	first, err := reader.New(cfg.readerOpts...)
	if err != nil {
		return nil, err
	}
	readerOpts := append(slices.Clone(cfg.readerOpts), reader.WithOwnedCoordinates())

	db, err := pebble.Open(dir, &pebble.Options{FS: cfg.fs})
	if err != nil {
		return nil, errors.Wrapf(err, "open store %q", dir)
	}

	s := &Store{
		db:        db,
		writeOpts: pebble.NoSync,
		index:     index.New[ksuid.KSUID](),
	}
	if cfg.sync {
		s.writeOpts = pebble.Sync
	}
	s.readers.New = func() any {
		r, _ := reader.New(readerOpts...)
		return r
	}

	if err := s.rebuildIndex(first); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) rebuildIndex(r *reader.Reader) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: keyUpperBound(),
	})
	if err != nil {
		return errors.Wrap(err, "scan store")
	}

	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key()[len(keyPrefix):])
		if err != nil {
			_ = iter.Close()
			return errors.Wrapf(err, "bad key %x", iter.Key())
		}

		g, err := r.Read(iter.Value())
		if err != nil {
			_ = iter.Close()
			return errors.Wrapf(err, "decode stored value %s", id)
		}
		s.index.Insert(id, g)
	}

	return iter.Close()
}

func (s *Store) getReader() *reader.Reader {
	r, _ := s.readers.Get().(*reader.Reader)
	return r
}

// Put validates value and stores it under a new id.
//
// Only the bytes of the decoded record are kept.
func (s *Store) Put(value []byte) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := s.put(id, value, false); err != nil {
		return ksuid.Nil, err
	}

	return id, nil
}

// Update replaces the value stored under id. It fails with errs.ErrNotFound
// when id is not stored.
func (s *Store) Update(id ksuid.KSUID, value []byte) error {
	return s.put(id, value, true)
}

func (s *Store) put(id ksuid.KSUID, value []byte, mustExist bool) error {
	r := s.getReader()
	g, n, err := r.ReadPrefix(value)
	s.readers.Put(r)
	if err != nil {
		return errors.Wrap(err, "invalid WKB value")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errs.ErrStoreClosed
	}

	key := geometryKey(id)
	if mustExist {
		if err := s.exists(key, id); err != nil {
			return err
		}
	}

	if err := s.db.Set(key, value[:n], s.writeOpts); err != nil {
		return errors.Wrapf(err, "write %s", id)
	}
	s.index.Insert(id, g)

	return nil
}

func (s *Store) exists(key []byte, id ksuid.KSUID) error {
	_, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return errors.Wrapf(errs.ErrNotFound, "id %s", id)
		}

		return err
	}

	return closer.Close()
}

// Raw returns a copy of the WKB stored under id.
func (s *Store) Raw(id ksuid.KSUID) ([]byte, error) {
	var out []byte
	err := s.view(id, func(value []byte) error {
		out = slices.Clone(value)
		return nil
	})

	return out, err
}

// Get decodes the value stored under id. The geometry owns its coordinates.
func (s *Store) Get(id ksuid.KSUID) (geom.Geometry, error) {
	var g geom.Geometry
	err := s.view(id, func(value []byte) error {
		r := s.getReader()
		defer s.readers.Put(r)

		var err error
		g, err = r.Read(value)

		return err
	})

	return g, err
}

// view calls fn with the stored value, which is only valid during the call.
func (s *Store) view(id ksuid.KSUID, fn func(value []byte) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errs.ErrStoreClosed
	}

	value, closer, err := s.db.Get(geometryKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return errors.Wrapf(errs.ErrNotFound, "id %s", id)
		}

		return errors.Wrapf(err, "read %s", id)
	}
	defer closer.Close()

	return fn(value)
}

// Delete removes id. It fails with errs.ErrNotFound when id is not stored.
func (s *Store) Delete(id ksuid.KSUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errs.ErrStoreClosed
	}

	key := geometryKey(id)
	if err := s.exists(key, id); err != nil {
		return err
	}
	if err := s.db.Delete(key, s.writeOpts); err != nil {
		return errors.Wrapf(err, "delete %s", id)
	}
	s.index.Delete(id)

	return nil
}

// Query returns the ids of stored values whose envelopes intersect env, in
// insertion order. Empty geometries never match.
func (s *Store) Query(env geom.Envelope) ([]ksuid.KSUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errs.ErrStoreClosed
	}

	ids := s.index.Search(env)
	slices.SortFunc(ids, ksuid.Compare)

	return ids, nil
}

// Indexed returns the number of values in the spatial index.
func (s *Store) Indexed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.index.Len()
}

// Close closes the store. Later calls fail with errs.ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errs.ErrStoreClosed
	}
	s.closed = true

	return s.db.Close()
}

// ParseID parses the string form of an id.
func ParseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, errors.Wrapf(err, "invalid id %q", s)
	}

	return id, nil
}
