package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pickd/reviewsynth/internal/outscraper"
)

// Dir writes each place record as a pretty-printed JSON file in a single
// output directory. This is the reference fixture format.
type Dir struct {
	dir string
}

// NewDir creates the output directory if needed and returns a sink over it.
func NewDir(dir string) (*Dir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Dir{dir: dir}, nil
}

// Put serializes the place record to <dir>/<name> with create-or-truncate
// semantics. No atomic rename: fixture generation has no concurrent readers.
func (d *Dir) Put(name string, place outscraper.PlaceRecord) (int64, error) {
	data, err := json.MarshalIndent(place, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode %s: %w", name, err)
	}
	path := filepath.Join(d.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return int64(len(data)), nil
}

// Path returns the file path a given output name maps to.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.dir, name)
}

// Close is a no-op; Put flushes each file on write.
func (d *Dir) Close() error {
	return nil
}
