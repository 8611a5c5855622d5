package request_models

type GoogleSignInRequest struct {
	Credential string `json:"credential" binding:"required"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

type BookingInquiryRequest struct {
	TourName string  `json:"tour_name" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Guests   int     `json:"guests" binding:"required,min=1"`
	Price    float64 `json:"price"`
}
