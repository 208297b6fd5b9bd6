// Package catalog holds the compiled-in list of fictitious restaurants the
// generator produces fixtures for.
package catalog

// Issue is a thematic weakness a restaurant is configured to receive
// complaints about.
type Issue string

const (
	IssueFood        Issue = "FOOD"
	IssueService     Issue = "SERVICE"
	IssueValue       Issue = "VALUE"
	IssueAmbiance    Issue = "AMBIANCE"
	IssueCleanliness Issue = "CLEANLINESS"
)

// Issues lists every issue tag in a fixed order. Theme sampling iterates this
// slice rather than a map so draws are reproducible under a seeded source.
var Issues = []Issue{
	IssueFood,
	IssueService,
	IssueValue,
	IssueAmbiance,
	IssueCleanliness,
}

// RestaurantSpec describes one business to generate data for.
type RestaurantSpec struct {
	Name     string
	Filename string
	PlaceID  string
	City     string
	Address  string
	Category string
	Issues   []Issue

	// RatingDist maps a star value (1-5) to its target percentage of the
	// review count. Trusted to sum near 100; shortfalls are topped up and
	// overshoot is clamped by the assembler.
	RatingDist map[int]int
}

// Restaurants is the static catalog. Each entry gets its own output file.
var Restaurants = []RestaurantSpec{
	{
		Name:       "Bella Notte Italian",
		Filename:   "test-bella-notte-italian.json",
		PlaceID:    "ChIJtest_bella_notte_123",
		City:       "Cape Town",
		Address:    "123 Long Street, Cape Town, 8001",
		Category:   "Italian Restaurant",
		Issues:     []Issue{IssueService},
		RatingDist: map[int]int{5: 35, 4: 25, 3: 15, 2: 15, 1: 10},
	},
	{
		Name:       "Big Mike's Burgers",
		Filename:   "test-big-mikes-burgers.json",
		PlaceID:    "ChIJtest_big_mikes_456",
		City:       "Johannesburg",
		Address:    "45 Main Road, Sandton, 2196",
		Category:   "Burger Restaurant",
		Issues:     []Issue{IssueCleanliness},
		RatingDist: map[int]int{5: 30, 4: 30, 3: 15, 2: 15, 1: 10},
	},
	{
		Name:       "Sakura Sushi House",
		Filename:   "test-sakura-sushi-house.json",
		PlaceID:    "ChIJtest_sakura_789",
		City:       "Durban",
		Address:    "78 Beach Road, Umhlanga, 4320",
		Category:   "Japanese Restaurant",
		Issues:     []Issue{IssueValue},
		RatingDist: map[int]int{5: 25, 4: 25, 3: 20, 2: 20, 1: 10},
	},
	{
		Name:       "The Rustic Tavern",
		Filename:   "test-rustic-tavern.json",
		PlaceID:    "ChIJtest_rustic_101",
		City:       "Stellenbosch",
		Address:    "12 Dorp Street, Stellenbosch, 7600",
		Category:   "Pub",
		Issues:     []Issue{IssueAmbiance},
		RatingDist: map[int]int{5: 30, 4: 25, 3: 20, 2: 15, 1: 10},
	},
	{
		Name:       "Spice Route Curry House",
		Filename:   "test-spice-route-curry.json",
		PlaceID:    "ChIJtest_spice_202",
		City:       "Pretoria",
		Address:    "234 Church Street, Pretoria, 0002",
		Category:   "Indian Restaurant",
		Issues:     []Issue{IssueService, IssueValue},
		RatingDist: map[int]int{5: 20, 4: 25, 3: 20, 2: 20, 1: 15},
	},
}
