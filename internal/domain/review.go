package domain

// Review is a single public review pulled from Google Places.
type Review struct {
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Time       string `json:"time"`
}

// ReviewSummary aggregates the company rating with recent reviews.
type ReviewSummary struct {
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"total_reviews"`
	Reviews      []Review `json:"reviews"`
}
