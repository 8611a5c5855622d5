package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

// Context key and response header carrying the per-request trace id set by
// the trace middleware.
const (
	TraceIDKey    = "trace_id"
	TraceIDHeader = "X-Trace-ID"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get(TraceIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses. Every
// path is a single answer; nothing here retries.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTourNotFound):
		RespondError(c, http.StatusNotFound, "Tour not found")
	case errors.Is(err, ErrFeedbackNotFound):
		RespondError(c, http.StatusNotFound, "Feedback not found")
	case errors.Is(err, ErrMalformedTour):
		RespondError(c, http.StatusBadGateway, "Tour record is malformed")
	case errors.Is(err, ErrInvalidRating):
		RespondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
	case errors.Is(err, ErrInvalidPriceRange):
		RespondError(c, http.StatusBadRequest, "Price range minimum must not exceed maximum")
	case errors.Is(err, ErrInvalidGuestCount):
		RespondError(c, http.StatusBadRequest, "Guest count must be at least 1")
	case errors.Is(err, ErrMissingBookingDetails):
		RespondError(c, http.StatusBadRequest, "Tour name and date are required")
	case errors.Is(err, ErrInvalidEmail):
		RespondError(c, http.StatusBadRequest, "Invalid email address")
	case errors.Is(err, ErrAlreadySubscribed):
		RespondError(c, http.StatusBadRequest, "This email is already subscribed!")
	case errors.Is(err, ErrNewsletterConfig):
		log.Printf("Newsletter configuration error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Server configuration error")
	case errors.Is(err, ErrInvalidCredential):
		RespondError(c, http.StatusUnauthorized, "Invalid identity credential")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusUnauthorized, "Session expired or not found")
	case errors.Is(err, ErrCMSUnavailable):
		log.Printf("CMS error: %v", err)
		RespondError(c, http.StatusBadGateway, "Upstream data source unavailable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
