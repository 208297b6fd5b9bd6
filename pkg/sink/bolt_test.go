package sink

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pickd/reviewsynth/internal/outscraper"
)

func TestBoltSink(t *testing.T) {
	t.Run("PutAndGet", func(t *testing.T) {
		b, err := NewBolt(filepath.Join(t.TempDir(), "fixtures.db"))
		if err != nil {
			t.Fatalf("NewBolt failed: %v", err)
		}
		defer b.Close()

		if _, err := b.Put("test-bella.json", testPlace("place-1")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := b.Get("place-1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Name != "Bella Notte Italian" || len(got.ReviewsData) != 2 {
			t.Errorf("Got %+v, want the archived place", got)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		b, err := NewBolt(filepath.Join(t.TempDir(), "fixtures.db"))
		if err != nil {
			t.Fatalf("NewBolt failed: %v", err)
		}
		defer b.Close()

		if _, err := b.Get("nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get missing place: err = %v, want ErrNotFound", err)
		}
	})

	t.Run("ForEach", func(t *testing.T) {
		b, err := NewBolt(filepath.Join(t.TempDir(), "fixtures.db"))
		if err != nil {
			t.Fatalf("NewBolt failed: %v", err)
		}
		defer b.Close()

		b.Put("a.json", testPlace("place-a"))
		b.Put("b.json", testPlace("place-b"))

		seen := map[string]bool{}
		err = b.ForEach(func(place outscraper.PlaceRecord) error {
			seen[place.PlaceID] = true
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}
		if !seen["place-a"] || !seen["place-b"] {
			t.Errorf("ForEach visited %v, want both places", seen)
		}
	})

	t.Run("Meta", func(t *testing.T) {
		b, err := NewBolt(filepath.Join(t.TempDir(), "fixtures.db"))
		if err != nil {
			t.Fatalf("NewBolt failed: %v", err)
		}
		defer b.Close()

		if err := b.PutMeta("run_id", "run-123"); err != nil {
			t.Fatalf("PutMeta failed: %v", err)
		}
		got, err := b.GetMeta("run_id")
		if err != nil {
			t.Fatalf("GetMeta failed: %v", err)
		}
		if got != "run-123" {
			t.Errorf("GetMeta = %q, want run-123", got)
		}

		if _, err := b.GetMeta("missing"); !errors.Is(err, ErrNoMeta) {
			t.Errorf("GetMeta missing key: err = %v, want ErrNoMeta", err)
		}
	})

	t.Run("PersistsAcrossReopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixtures.db")

		b, err := NewBolt(path)
		if err != nil {
			t.Fatalf("NewBolt failed: %v", err)
		}
		b.Put("test-bella.json", testPlace("place-1"))
		b.Close()

		b2, err := NewBolt(path)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		defer b2.Close()

		if _, err := b2.Get("place-1"); err != nil {
			t.Errorf("Get after reopen failed: %v", err)
		}
	})
}
