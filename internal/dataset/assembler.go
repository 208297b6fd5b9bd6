// Package dataset expands a restaurant's rating distribution into a full
// place record with synthesized reviews.
package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/pickd/reviewsynth/internal/catalog"
	"github.com/pickd/reviewsynth/internal/outscraper"
	"github.com/pickd/reviewsynth/internal/synth"
)

// Synthetic coordinates are drawn from a fixed bounding box so every fixture
// geocodes to a plausible spot.
const (
	latBase = -33.9
	lonBase = 18.4
	geoSpan = 0.2
)

// ExpandDistribution converts a star->percentage distribution into a shuffled
// list of exactly count ratings. Each bucket contributes
// floor(count*pct/100) entries; rounding shortfall is topped up with uniform
// ratings and overshoot is clamped after the shuffle so no bucket is
// preferentially dropped.
func ExpandDistribution(rng *rand.Rand, dist map[int]int, count int) []int {
	ratings := make([]int, 0, count)
	for star := 1; star <= 5; star++ {
		n := count * dist[star] / 100
		for i := 0; i < n; i++ {
			ratings = append(ratings, star)
		}
	}
	for len(ratings) < count {
		ratings = append(ratings, 1+rng.IntN(5))
	}
	rng.Shuffle(len(ratings), func(i, j int) {
		ratings[i], ratings[j] = ratings[j], ratings[i]
	})
	if len(ratings) > count {
		ratings = ratings[:count]
	}
	return ratings
}

// Assemble generates reviewCount reviews for the restaurant and wraps them in
// a place record. progress, if non-nil, is called once per generated review.
func Assemble(rng *rand.Rand, syn *synth.Synthesizer, spec catalog.RestaurantSpec, reviewCount int, progress func()) outscraper.PlaceRecord {
	ratings := ExpandDistribution(rng, spec.RatingDist, reviewCount)

	reviews := make([]outscraper.ReviewRecord, 0, len(ratings))
	sum := 0
	for _, rating := range ratings {
		sum += rating
		reviews = append(reviews, syn.Synthesize(rng, rating, spec))
		if progress != nil {
			progress()
		}
	}

	mean := float64(sum) / float64(len(ratings))
	noSpaceName := strings.ToLower(strings.ReplaceAll(spec.Name, " ", ""))

	return outscraper.PlaceRecord{
		Query:         spec.Name,
		Name:          spec.Name,
		NameForEmails: noSpaceName,
		PlaceID:       spec.PlaceID,
		GoogleID:      spec.PlaceID,
		Kgmid:         "/g/test_" + spec.PlaceID[len(spec.PlaceID)-10:],
		FullAddress:   spec.Address,
		Street:        street(spec.Address),
		PostalCode:    postalCode(spec.Address),
		CountryCode:   "ZA",
		Country:       "South Africa",
		City:          spec.City,
		Latitude:      round6(latBase + rng.Float64()*geoSpan),
		Longitude:     round6(lonBase + rng.Float64()*geoSpan),
		TimeZone:      "Africa/Johannesburg",
		Site:          fmt.Sprintf("https://www.%s.co.za", noSpaceName),
		Phone:         fmt.Sprintf("+27 %d %d %d", 10+rng.IntN(90), 100+rng.IntN(900), 1000+rng.IntN(9000)),
		Type:          spec.Category,
		Category:      spec.Category,
		Subtypes:      spec.Category,
		Rating:        math.Round(mean*10) / 10,
		Reviews:       reviewCount,
		ReviewsData:   reviews,
	}
}

// Mean returns the arithmetic mean of the reviews' star ratings, or 0 for an
// empty list.
func Mean(reviews []outscraper.ReviewRecord) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.ReviewRating
	}
	return float64(sum) / float64(len(reviews))
}

func street(address string) string {
	if i := strings.Index(address, ","); i >= 0 {
		return address[:i]
	}
	return address
}

func postalCode(address string) string {
	parts := strings.Split(address, ",")
	fields := strings.Fields(parts[len(parts)-1])
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
