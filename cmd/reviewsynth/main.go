// Command reviewsynth generates Outscraper-shaped restaurant review fixtures.
// All configuration is compiled in: the restaurant catalog, the content
// library, the output directory and the review count per place.
package main

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pickd/reviewsynth/internal/catalog"
	"github.com/pickd/reviewsynth/internal/logging"
	"github.com/pickd/reviewsynth/internal/pipeline"
	"github.com/pickd/reviewsynth/pkg/sink"
)

const (
	outputDir       = "demo-data/outscraper"
	archiveName     = "fixtures.db"
	reviewsPerPlace = 500
)

func main() {
	logger := logging.New("info", "console")
	defer logger.Sync()

	runID := uuid.New().String()

	dir, err := sink.NewDir(outputDir)
	if err != nil {
		logger.Fatal("output directory", zap.Error(err))
	}

	archive, err := sink.NewBolt(filepath.Join(outputDir, archiveName))
	if err != nil {
		logger.Fatal("fixture archive", zap.Error(err))
	}
	defer archive.Close()

	if err := archive.PutMeta("run_id", runID); err != nil {
		logger.Fatal("archive metadata", zap.Error(err))
	}
	if err := archive.PutMeta("generated_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		logger.Fatal("archive metadata", zap.Error(err))
	}

	// Runs are intentionally not reproducible; tests seed their own source.
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))

	err = pipeline.Run(pipeline.Config{
		Restaurants:  catalog.Restaurants,
		ReviewCount:  reviewsPerPlace,
		Sinks:        []sink.Sink{dir, archive},
		Rand:         rng,
		Logger:       logger,
		RunID:        runID,
		ShowProgress: true,
	})
	if err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}
