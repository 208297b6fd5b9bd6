// Package pipeline runs the single-pass generation loop: for each catalog
// entry, assemble a place record and hand it to every configured sink.
package pipeline

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/pickd/reviewsynth/internal/catalog"
	"github.com/pickd/reviewsynth/internal/content"
	"github.com/pickd/reviewsynth/internal/dataset"
	"github.com/pickd/reviewsynth/internal/synth"
	"github.com/pickd/reviewsynth/pkg/sink"
)

// Config carries everything a run needs. Restaurants are processed
// sequentially so the console summary keeps catalog order.
type Config struct {
	Restaurants []catalog.RestaurantSpec
	ReviewCount int
	Sinks       []sink.Sink
	Rand        *rand.Rand
	Logger      *zap.Logger
	RunID       string

	// Console receives the summary lines; defaults to stdout.
	Console io.Writer

	// ShowProgress draws a per-restaurant progress bar on stderr.
	ShowProgress bool
}

// Run generates and writes every restaurant's fixture. The first sink failure
// aborts the whole run.
func Run(cfg Config) error {
	console := cfg.Console
	if console == nil {
		console = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	syn := synth.New(content.Default())

	fmt.Fprintln(console, "Generating test restaurant data...")

	var totalBytes int64
	for _, spec := range cfg.Restaurants {
		fmt.Fprintf(console, "  Creating %s (%s)...\n", spec.Name, spec.Filename)

		var progress func()
		if cfg.ShowProgress {
			bar := progressbar.NewOptions(cfg.ReviewCount,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription(spec.Name),
				progressbar.OptionClearOnFinish(),
			)
			progress = func() { _ = bar.Add(1) }
		}

		place := dataset.Assemble(cfg.Rand, syn, spec, cfg.ReviewCount, progress)

		for _, s := range cfg.Sinks {
			n, err := s.Put(spec.Filename, place)
			if err != nil {
				return fmt.Errorf("write %s: %w", spec.Filename, err)
			}
			totalBytes += n
		}

		logger.Info("place written",
			zap.String("run_id", cfg.RunID),
			zap.String("place_id", place.PlaceID),
			zap.String("file", spec.Filename),
			zap.Int("reviews", len(place.ReviewsData)),
			zap.Float64("rating", place.Rating),
		)

		fmt.Fprintf(console, "    - %s reviews, avg rating: %.2f\n",
			humanize.Comma(int64(len(place.ReviewsData))), dataset.Mean(place.ReviewsData))
		fmt.Fprintf(console, "    - Issues targeted: %s\n", issueList(spec.Issues))
	}

	fmt.Fprintf(console, "\nDone! Created %d test restaurant files (%s written).\n",
		len(cfg.Restaurants), humanize.Bytes(uint64(totalBytes)))

	return nil
}

func issueList(issues []catalog.Issue) string {
	names := make([]string, len(issues))
	for i, issue := range issues {
		names[i] = string(issue)
	}
	return "[" + strings.Join(names, ", ") + "]"
}
