package response_models

type FeedbackView struct {
	ID         int          `json:"id"`
	DocumentID string       `json:"document_id"`
	User       FeedbackUser `json:"user"`
	Rating     int          `json:"rating"`
	Comment    string       `json:"comment"`
	Date       string       `json:"date"` // MM-DD-YYYY
}

type FeedbackUser struct {
	Name       string `json:"name"`
	Initials   string `json:"initials"`
	ColorIndex int    `json:"color_index"`
}

// FeedbackStats summarizes a tour-scoped feedback collection. The histogram
// keys every star value 1..5 and its values always sum to Total.
type FeedbackStats struct {
	Total         int         `json:"total"`
	AverageRating float64     `json:"average_rating"`
	Histogram     map[int]int `json:"rating_distribution"`
}
