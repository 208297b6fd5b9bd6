// Package outscraper declares the wire shape of an Outscraper Google Maps
// review export. Field names and types mirror the real API payload so that
// generated fixtures are drop-in replacements for scraped data.
package outscraper

// DatetimeLayout is the timestamp format Outscraper uses for the
// *_datetime_utc fields.
const DatetimeLayout = "01/02/2006 15:04:05"

// ReviewQuestions is the structured survey block Google attaches to dining
// reviews. Score fields are integers-as-strings in the export.
type ReviewQuestions struct {
	PricePerPerson string `json:"Price per person"`
	Food           string `json:"Food"`
	Service        string `json:"Service"`
	Atmosphere     string `json:"Atmosphere"`
	NoiseLevel     string `json:"Noise level"`
	SpecialEvents  string `json:"Special events"`
	WaitTime       string `json:"Wait time"`
}

// ReviewRecord is a single review row. Optional columns are pointers so they
// serialize as JSON null, matching the export.
type ReviewRecord struct {
	GoogleID                 string          `json:"google_id"`
	ReviewID                 string          `json:"review_id"`
	ReviewPaginationID       string          `json:"review_pagination_id"`
	AuthorLink               string          `json:"author_link"`
	AuthorTitle              string          `json:"author_title"`
	AuthorID                 string          `json:"author_id"`
	AuthorImage              string          `json:"author_image"`
	AuthorReviewsCount       int             `json:"author_reviews_count"`
	AuthorRatingsCount       int             `json:"author_ratings_count"`
	ReviewText               string          `json:"review_text"`
	ReviewImgURLs            []string        `json:"review_img_urls"`
	ReviewImgURL             *string         `json:"review_img_url"`
	ReviewQuestions          ReviewQuestions `json:"review_questions"`
	ReviewPhotoIDs           []string        `json:"review_photo_ids"`
	OwnerAnswer              *string         `json:"owner_answer"`
	OwnerAnswerTimestamp     *int64          `json:"owner_answer_timestamp"`
	OwnerAnswerDatetimeUTC   *string         `json:"owner_answer_timestamp_datetime_utc"`
	ReviewLink               string          `json:"review_link"`
	ReviewRating             int             `json:"review_rating"`
	ReviewTimestamp          int64           `json:"review_timestamp"`
	ReviewDatetimeUTC        string          `json:"review_datetime_utc"`
	ReviewLikes              *int            `json:"review_likes"`
	ReviewsID                string          `json:"reviews_id"`
}

// PlaceRecord is the per-place document: business metadata plus the full
// review list in generation order.
type PlaceRecord struct {
	Query         string         `json:"query"`
	Name          string         `json:"name"`
	NameForEmails string         `json:"name_for_emails"`
	PlaceID       string         `json:"place_id"`
	GoogleID      string         `json:"google_id"`
	Kgmid         string         `json:"kgmid"`
	FullAddress   string         `json:"full_address"`
	Borough       *string        `json:"borough"`
	Street        string         `json:"street"`
	PostalCode    string         `json:"postal_code"`
	AreaService   *string        `json:"area_service"`
	CountryCode   string         `json:"country_code"`
	Country       string         `json:"country"`
	City          string         `json:"city"`
	USState       *string        `json:"us_state"`
	State         *string        `json:"state"`
	PlusCode      *string        `json:"plus_code"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	H3            *string        `json:"h3"`
	TimeZone      string         `json:"time_zone"`
	Site          string         `json:"site"`
	Phone         string         `json:"phone"`
	Type          string         `json:"type"`
	Category      string         `json:"category"`
	Subtypes      string         `json:"subtypes"`
	Rating        float64        `json:"rating"`
	Reviews       int            `json:"reviews"`
	ReviewsData   []ReviewRecord `json:"reviews_data"`
}
