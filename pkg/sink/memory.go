package sink

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/pickd/reviewsynth/internal/outscraper"
)

// Memory keeps place records in a map (not persistent). Used by tests and
// anywhere the generated corpus is consumed in-process.
type Memory struct {
	mu     sync.RWMutex
	places map[string]outscraper.PlaceRecord
}

// NewMemory creates an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{places: make(map[string]outscraper.PlaceRecord)}
}

// Put stores the record under its output name. The reported size is the
// compact JSON encoding, to stay comparable with the file sinks.
func (m *Memory) Put(name string, place outscraper.PlaceRecord) (int64, error) {
	data, err := json.Marshal(place)
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.places[name] = place

	return int64(len(data)), nil
}

// Get returns the record stored under an output name.
func (m *Memory) Get(name string) (outscraper.PlaceRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	place, ok := m.places[name]
	return place, ok
}

// Names lists stored output names in sorted order.
func (m *Memory) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.places))
	for name := range m.places {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
