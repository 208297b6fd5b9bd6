package sink

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/pickd/reviewsynth/internal/outscraper"
)

var (
	placesBucket = []byte("places")
	metaBucket   = []byte("meta")
)

// Bolt archives place records into a single bbolt database, keyed by place
// ID, so test suites can load the whole corpus without re-parsing JSON files.
type Bolt struct {
	db *bolt.DB
}

// NewBolt opens (or creates) the archive at path.
func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(placesBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(metaBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create archive buckets: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Put stores the record under its place ID. name is accepted for interface
// parity but the archive keys by place ID.
func (b *Bolt) Put(name string, place outscraper.PlaceRecord) (int64, error) {
	data, err := json.Marshal(place)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", name, err)
	}
	err = b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(placesBucket).Put([]byte(place.PlaceID), data)
	})
	if err != nil {
		return 0, fmt.Errorf("archive %s: %w", name, err)
	}
	return int64(len(data)), nil
}

// Get loads a record by place ID. Returns ErrNotFound for unknown IDs.
func (b *Bolt) Get(placeID string) (outscraper.PlaceRecord, error) {
	var place outscraper.PlaceRecord
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(placesBucket).Get([]byte(placeID))
		if data == nil {
			return ErrNotFound
		}
		return json.Unmarshal(data, &place)
	})
	if err != nil {
		return outscraper.PlaceRecord{}, err
	}
	return place, nil
}

// ForEach iterates over every archived place record.
func (b *Bolt) ForEach(fn func(place outscraper.PlaceRecord) error) error {
	return b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(placesBucket).ForEach(func(k, v []byte) error {
			var place outscraper.PlaceRecord
			if err := json.Unmarshal(v, &place); err != nil {
				return fmt.Errorf("decode archived place %s: %w", k, err)
			}
			return fn(place)
		})
	})
}

// PutMeta records run-level metadata (run ID, generation time) alongside the
// places.
func (b *Bolt) PutMeta(key, value string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(metaBucket).Put([]byte(key), []byte(value))
	})
}

// GetMeta reads a run-level metadata value.
func (b *Bolt) GetMeta(key string) (string, error) {
	var value string
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(metaBucket).Get([]byte(key))
		if data == nil {
			return ErrNoMeta
		}
		value = string(data)
		return nil
	})
	return value, err
}

// Close closes the underlying database.
func (b *Bolt) Close() error {
	return b.db.Close()
}
