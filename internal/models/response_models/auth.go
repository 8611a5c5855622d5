package response_models

type SessionUser struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

type SignInResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

type BookingLinkResponse struct {
	URL string `json:"url"`
}
