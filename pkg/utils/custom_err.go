package utils

import "errors"

var (
	ErrTourNotFound      = errors.New("tour not found")
	ErrFeedbackNotFound  = errors.New("feedback not found")
	ErrMalformedTour     = errors.New("malformed tour record")
	ErrCMSUnavailable    = errors.New("cms unavailable")
	ErrCMSRecordNotFound = errors.New("cms record not found")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidPriceRange = errors.New("invalid price range")
	ErrInvalidCredential = errors.New("invalid identity credential")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidGuestCount     = errors.New("guest count must be at least 1")
	ErrMissingBookingDetails = errors.New("tour name and date are required")

	ErrInvalidEmail      = errors.New("invalid email address")
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrNewsletterConfig  = errors.New("newsletter provider not configured")
	ErrDatabaseError     = errors.New("database error")
)
