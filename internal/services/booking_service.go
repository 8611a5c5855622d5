package services

import (
	"fmt"
	"net/url"

	"honesttour/internal/models/request_models"
	"honesttour/pkg/utils"
)

type BookingServiceInterface interface {
	InquiryLink(req request_models.BookingInquiryRequest) (string, error)
	GenericInquiryLink() string
}

// BookingService builds WhatsApp deep links for booking inquiries. This is a
// one-way, unauthenticated hand-off; nothing is sent from here.
type BookingService struct {
	phone string
}

func NewBookingService(phone string) BookingServiceInterface {
	return &BookingService{phone: phone}
}

func (b *BookingService) InquiryLink(req request_models.BookingInquiryRequest) (string, error) {
	if req.Guests < 1 {
		return "", utils.ErrInvalidGuestCount
	}
	if req.TourName == "" || req.Date == "" {
		return "", utils.ErrMissingBookingDetails
	}

	message := fmt.Sprintf(
		"Hi! I'm interested in booking %s on %s for %d guests (price: $%.0f). Can you help me?",
		req.TourName, req.Date, req.Guests, req.Price,
	)
	return b.link(message), nil
}

func (b *BookingService) GenericInquiryLink() string {
	return b.link("Hi! I'm looking for travel recommendations. Can you help me?")
}

func (b *BookingService) link(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", b.phone, url.QueryEscape(message))
}
