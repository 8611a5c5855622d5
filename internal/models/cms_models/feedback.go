package cms_models

import "time"

// TourRef is the populated back-reference from a feedback to its tour.
type TourRef struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId"`
}

// Feedback is the raw CMS feedback record: one star rating plus a comment.
type Feedback struct {
	ID         int       `json:"id"`
	DocumentID string    `json:"documentId"`
	Name       string    `json:"name"`
	RatingStar int       `json:"rating_star"`
	Comment    string    `json:"comment"`
	Tour       *TourRef  `json:"tour,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}
