// Package sink delivers finished place records to their destinations.
// Implementations cover the flat-file output the fixtures are consumed as, a
// bbolt archive for programmatic access, and an in-memory sink for tests.
package sink

import (
	"errors"

	"github.com/pickd/reviewsynth/internal/outscraper"
)

// Sentinel errors for common sink conditions.
var (
	ErrNotFound = errors.New("place not found")
	ErrNoMeta   = errors.New("meta key not found")
)

// Sink receives one finished place record per restaurant. name is the
// restaurant's configured output name; Put returns the number of serialized
// bytes written.
type Sink interface {
	Put(name string, place outscraper.PlaceRecord) (int64, error)
	Close() error
}
