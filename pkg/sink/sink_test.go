package sink

import (
	"github.com/pickd/reviewsynth/internal/outscraper"
)

func testPlace(placeID string) outscraper.PlaceRecord {
	return outscraper.PlaceRecord{
		Query:         "Bella Notte Italian",
		Name:          "Bella Notte Italian",
		NameForEmails: "bellanotteitalian",
		PlaceID:       placeID,
		GoogleID:      placeID,
		FullAddress:   "123 Long Street, Cape Town, 8001",
		City:          "Cape Town",
		CountryCode:   "ZA",
		Country:       "South Africa",
		Rating:        3.6,
		Reviews:       2,
		ReviewsData: []outscraper.ReviewRecord{
			{ReviewID: "Ci9DQUFa", ReviewRating: 4, ReviewText: "Lovely decor and great vibe. Very comfortable."},
			{ReviewID: "Ci9DQUFb", ReviewRating: 3, ReviewText: "It was fine. Just an ordinary meal out."},
		},
	}
}
