// Package synth turns a target star rating plus a restaurant's configured
// issues into a single Outscraper-shaped review record.
package synth

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/pickd/reviewsynth/internal/catalog"
	"github.com/pickd/reviewsynth/internal/content"
	"github.com/pickd/reviewsynth/internal/outscraper"
)

// Probabilities and offsets for the rating-band branches.
const (
	issueComplaintChance = 0.7
	extraComplaintChance = 0.4
	neutralDetailChance  = 0.5
	ownerReplyChance     = 0.3

	replyOffsetMinSeconds = 86400  // 1 day
	replyOffsetMaxSeconds = 604800 // 7 days

	timestampDaysBack = 365
)

var priceBrackets = []string{"R 100–200", "R 200–300", "R 300–400", "R 400–500"}

var noiseLevels = []string{"Quiet", "Moderate noise", "Lively"}

var waitTimes = []string{"No wait", "0–10 min", "10–20 min", "20–30 min", "More than 30 min"}

// Synthesizer produces review records from the shared content library. It is
// stateless apart from the run's reference time; the random source is passed
// per call so tests can seed it.
type Synthesizer struct {
	lib *content.Library
	now time.Time
}

// New builds a synthesizer over the given library, anchored at the current
// time.
func New(lib *content.Library) *Synthesizer {
	return &Synthesizer{lib: lib, now: time.Now()}
}

// NewAt anchors timestamp generation at a fixed reference time.
func NewAt(lib *content.Library, now time.Time) *Synthesizer {
	return &Synthesizer{lib: lib, now: now}
}

// Synthesize generates one review for the given star rating. Text content and
// sub-scores follow the rating band; owner replies and likes are attached
// probabilistically per band.
func (s *Synthesizer) Synthesize(rng *rand.Rand, rating int, spec catalog.RestaurantSpec) outscraper.ReviewRecord {
	dish := pick(rng, s.lib.DishesFor(spec.Category))
	text, scores := s.reviewText(rng, rating, spec, dish)

	author := pick(rng, s.lib.Names)
	timestamp := s.reviewTimestamp(rng)

	rec := outscraper.ReviewRecord{
		GoogleID:           spec.PlaceID,
		ReviewID:           reviewID(rng),
		ReviewPaginationID: reviewID(rng),
		AuthorLink:         fmt.Sprintf("https://www.google.com/maps/contrib/%s?hl=en", authorID(rng)),
		AuthorTitle:        author,
		AuthorID:           authorID(rng),
		AuthorImage:        fmt.Sprintf("https://lh3.googleusercontent.com/a-/ALV-%s=s120-c-rp-mo-ba4-br100", reviewID(rng)[:20]),
		AuthorReviewsCount: 1 + rng.IntN(200),
		AuthorRatingsCount: rng.IntN(51),
		ReviewText:         text,
		ReviewQuestions: outscraper.ReviewQuestions{
			PricePerPerson: pick(rng, priceBrackets),
			Food:           strconv.Itoa(scores.food),
			Service:        strconv.Itoa(scores.service),
			Atmosphere:     strconv.Itoa(scores.atmosphere),
			NoiseLevel:     pick(rng, noiseLevels),
			SpecialEvents:  "No special event",
			WaitTime:       pick(rng, waitTimes),
		},
		ReviewLink:        fmt.Sprintf("https://www.google.com/maps/reviews/data=!4m8!14m7!1m6!2m5!1s%s", reviewID(rng)[:30]),
		ReviewRating:      rating,
		ReviewTimestamp:   timestamp,
		ReviewDatetimeUTC: time.Unix(timestamp, 0).UTC().Format(outscraper.DatetimeLayout),
		ReviewsID:         reviewsID(rng),
	}

	if rating <= 2 && rng.Float64() < ownerReplyChance {
		reply := fmt.Sprintf("Thank you for your feedback, %s. We're sorry to hear about your experience and are working to improve.", author)
		replyTS := timestamp + replyOffsetMinSeconds + rng.Int64N(replyOffsetMaxSeconds-replyOffsetMinSeconds+1)
		rec.OwnerAnswer = &reply
		rec.OwnerAnswerTimestamp = &replyTS
	}

	if rating >= 4 {
		// Likes are null or a small count, only on positive reviews.
		if n := rng.IntN(5); n > 0 {
			likes := n - 1
			rec.ReviewLikes = &likes
		}
	}

	return rec
}

type subScores struct {
	food       int
	service    int
	atmosphere int
}

func (s *Synthesizer) reviewText(rng *rand.Rand, rating int, spec catalog.RestaurantSpec, dish string) (string, subScores) {
	switch {
	case rating >= 4:
		themes := sampleThemes(rng, 1+rng.IntN(3))
		parts := make([]string, 0, len(themes))
		for _, theme := range themes {
			parts = append(parts, content.Render(pick(rng, s.lib.Positive[theme]), dish))
		}
		return strings.Join(parts, " "), subScores{
			food:       pickInt(rng, 4, 5),
			service:    pickInt(rng, 4, 5),
			atmosphere: pickInt(rng, 4, 5),
		}

	case rating <= 2:
		var text string
		if len(spec.Issues) > 0 && rng.Float64() < issueComplaintChance {
			theme := pick(rng, spec.Issues)
			text = content.Render(pick(rng, s.lib.NegativeFor(theme)), dish)
			if rng.Float64() < extraComplaintChance {
				other := pick(rng, catalog.Issues)
				text += " " + content.Render(pick(rng, s.lib.NegativeFor(other)), dish)
			}
		} else {
			themes := sampleThemes(rng, 1+rng.IntN(2))
			parts := make([]string, 0, len(themes))
			for _, theme := range themes {
				parts = append(parts, content.Render(pick(rng, s.lib.NegativeFor(theme)), dish))
			}
			text = strings.Join(parts, " ")
		}
		return text, subScores{
			food:       pickInt(rng, 1, 2, 3),
			service:    pickInt(rng, 1, 2, 3),
			atmosphere: pickInt(rng, 1, 2, 3),
		}

	default:
		text := pick(rng, s.lib.Neutral)
		if rng.Float64() < neutralDetailChance {
			if len(spec.Issues) > 0 && rng.Float64() < 0.5 {
				theme := pick(rng, spec.Issues)
				text += " " + content.Render(pick(rng, s.lib.NegativeFor(theme)), dish)
			} else {
				text += fmt.Sprintf(" The %s was decent.", dish)
			}
		}
		return text, subScores{
			food:       pickInt(rng, 3, 4),
			service:    pickInt(rng, 2, 3, 4),
			atmosphere: pickInt(rng, 3, 4),
		}
	}
}

// reviewTimestamp is uniform over the past year with hour/minute jitter.
func (s *Synthesizer) reviewTimestamp(rng *rand.Rand) int64 {
	back := time.Duration(1+rng.IntN(timestampDaysBack))*24*time.Hour +
		time.Duration(rng.IntN(24))*time.Hour +
		time.Duration(rng.IntN(60))*time.Minute
	return s.now.Add(-back).Unix()
}

// sampleThemes returns k distinct themes in random order.
func sampleThemes(rng *rand.Rand, k int) []catalog.Issue {
	themes := make([]catalog.Issue, len(catalog.Issues))
	copy(themes, catalog.Issues)
	rng.Shuffle(len(themes), func(i, j int) {
		themes[i], themes[j] = themes[j], themes[i]
	})
	if k > len(themes) {
		k = len(themes)
	}
	return themes[:k]
}

func pick[T any](rng *rand.Rand, options []T) T {
	return options[rng.IntN(len(options))]
}

func pickInt(rng *rand.Rand, options ...int) int {
	return options[rng.IntN(len(options))]
}
