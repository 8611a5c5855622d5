package request_models

type AddFeedbackRequest struct {
	Name       string `json:"name" binding:"required"`
	RatingStar int    `json:"rating_star" binding:"required"`
	Comment    string `json:"comment" binding:"required"`
	// Optional tour reference, numeric id or document-id.
	Tour string `json:"tour,omitempty"`
}

type UpdateFeedbackRequest struct {
	Name       string `json:"name,omitempty"`
	RatingStar int    `json:"rating_star,omitempty"`
	Comment    string `json:"comment,omitempty"`
}
