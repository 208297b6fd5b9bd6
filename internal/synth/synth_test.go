package synth

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pickd/reviewsynth/internal/catalog"
	"github.com/pickd/reviewsynth/internal/content"
	"github.com/pickd/reviewsynth/internal/outscraper"
)

func testSpec() catalog.RestaurantSpec {
	return catalog.RestaurantSpec{
		Name:       "Bella Notte Italian",
		Filename:   "test-bella-notte-italian.json",
		PlaceID:    "ChIJtest_bella_notte_123",
		City:       "Cape Town",
		Address:    "123 Long Street, Cape Town, 8001",
		Category:   "Italian Restaurant",
		Issues:     []catalog.Issue{catalog.IssueService},
		RatingDist: map[int]int{5: 35, 4: 25, 3: 15, 2: 15, 1: 10},
	}
}

func score(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err, "sub-score %q is not an integer string", s)
	return n
}

func TestSynthesizeSubScoreBands(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	syn := New(content.Default())
	spec := testSpec()

	bands := []struct {
		rating     int
		food       []int
		service    []int
		atmosphere []int
	}{
		{5, []int{4, 5}, []int{4, 5}, []int{4, 5}},
		{4, []int{4, 5}, []int{4, 5}, []int{4, 5}},
		{3, []int{3, 4}, []int{2, 3, 4}, []int{3, 4}},
		{2, []int{1, 2, 3}, []int{1, 2, 3}, []int{1, 2, 3}},
		{1, []int{1, 2, 3}, []int{1, 2, 3}, []int{1, 2, 3}},
	}

	for _, band := range bands {
		for i := 0; i < 200; i++ {
			rec := syn.Synthesize(rng, band.rating, spec)
			assert.Equal(t, band.rating, rec.ReviewRating)
			assert.Contains(t, band.food, score(t, rec.ReviewQuestions.Food))
			assert.Contains(t, band.service, score(t, rec.ReviewQuestions.Service))
			assert.Contains(t, band.atmosphere, score(t, rec.ReviewQuestions.Atmosphere))
			assert.NotEmpty(t, rec.ReviewText)
		}
	}
}

func TestSynthesizeIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	syn := New(content.Default())
	spec := testSpec()

	for i := 0; i < 100; i++ {
		rec := syn.Synthesize(rng, 5, spec)

		assert.Equal(t, spec.PlaceID, rec.GoogleID)
		assert.True(t, strings.HasPrefix(rec.ReviewID, "Ci9DQUF"))
		assert.Len(t, rec.ReviewID, len("Ci9DQUF")+50)
		assert.Len(t, rec.AuthorID, 18)
		assert.Contains(t, content.Default().Names, rec.AuthorTitle)
		assert.True(t, strings.HasPrefix(rec.AuthorLink, "https://www.google.com/maps/contrib/"))
		assert.GreaterOrEqual(t, rec.AuthorReviewsCount, 1)
		assert.LessOrEqual(t, rec.AuthorReviewsCount, 200)
		assert.GreaterOrEqual(t, rec.AuthorRatingsCount, 0)
		assert.LessOrEqual(t, rec.AuthorRatingsCount, 50)
	}
}

func TestSynthesizeOwnerReply(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	syn := New(content.Default())
	spec := testSpec()

	replies := 0
	for i := 0; i < 500; i++ {
		rec := syn.Synthesize(rng, 1+rng.IntN(2), spec)
		if rec.OwnerAnswer == nil {
			assert.Nil(t, rec.OwnerAnswerTimestamp)
			continue
		}
		replies++
		require.NotNil(t, rec.OwnerAnswerTimestamp)
		assert.Greater(t, *rec.OwnerAnswerTimestamp, rec.ReviewTimestamp)
		assert.LessOrEqual(t, *rec.OwnerAnswerTimestamp, rec.ReviewTimestamp+replyOffsetMaxSeconds)
		assert.Contains(t, *rec.OwnerAnswer, rec.AuthorTitle)
	}
	// Replies are a strict subset of low-rated reviews: present, not universal.
	assert.Greater(t, replies, 0)
	assert.Less(t, replies, 500)

	// Never on positive or neutral reviews.
	for i := 0; i < 300; i++ {
		rec := syn.Synthesize(rng, 3+rng.IntN(3), spec)
		assert.Nil(t, rec.OwnerAnswer)
		assert.Nil(t, rec.OwnerAnswerTimestamp)
	}
}

func TestSynthesizeLikes(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	syn := New(content.Default())
	spec := testSpec()

	for i := 0; i < 300; i++ {
		rec := syn.Synthesize(rng, 4+rng.IntN(2), spec)
		if rec.ReviewLikes != nil {
			assert.GreaterOrEqual(t, *rec.ReviewLikes, 0)
			assert.LessOrEqual(t, *rec.ReviewLikes, 3)
		}
	}
	for i := 0; i < 300; i++ {
		rec := syn.Synthesize(rng, 1+rng.IntN(3), spec)
		assert.Nil(t, rec.ReviewLikes, "likes on a %d-star review", rec.ReviewRating)
	}
}

func TestSynthesizeDatetimeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	syn := NewAt(content.Default(), now)
	spec := testSpec()

	for i := 0; i < 300; i++ {
		rec := syn.Synthesize(rng, 1+rng.IntN(5), spec)

		parsed, err := time.Parse(outscraper.DatetimeLayout, rec.ReviewDatetimeUTC)
		require.NoError(t, err)
		assert.Equal(t, rec.ReviewTimestamp, parsed.Unix(), "datetime string does not decode back to the stored timestamp")

		// Uniform over the past year with sub-day jitter.
		assert.LessOrEqual(t, rec.ReviewTimestamp, now.Unix())
		assert.GreaterOrEqual(t, rec.ReviewTimestamp, now.Add(-(timestampDaysBack+1)*24*time.Hour).Unix())
	}
}

// Low-rated reviews for a restaurant with a declared issue should complain
// about that issue more than about anything else.
func TestSynthesizeIssueBias(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	lib := content.Default()
	syn := New(lib)
	spec := testSpec() // SERVICE is the declared issue

	counts := make(map[catalog.Issue]int)
	for i := 0; i < 600; i++ {
		rec := syn.Synthesize(rng, 1+rng.IntN(2), spec)
		dishes := lib.DishesFor(spec.Category)
		for _, theme := range catalog.Issues {
			for _, tpl := range lib.Negative[theme] {
				matched := false
				for _, dish := range dishes {
					if strings.Contains(rec.ReviewText, content.Render(tpl, dish)) {
						matched = true
						break
					}
				}
				if matched {
					counts[theme]++
					break
				}
			}
		}
	}

	for _, theme := range catalog.Issues {
		if theme == catalog.IssueService {
			continue
		}
		assert.Greater(t, counts[catalog.IssueService], counts[theme],
			"SERVICE complaints (%d) should outnumber %s complaints (%d)",
			counts[catalog.IssueService], theme, counts[theme])
	}
}

func TestSynthesizeNoIssuesDeclared(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	syn := New(content.Default())
	spec := testSpec()
	spec.Issues = nil

	for i := 0; i < 200; i++ {
		rec := syn.Synthesize(rng, 1, spec)
		assert.NotEmpty(t, rec.ReviewText)
	}
}
