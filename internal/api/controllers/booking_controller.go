package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"honesttour/internal/models/request_models"
	"honesttour/internal/models/response_models"
	"honesttour/internal/services"
	"honesttour/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// InquiryLink godoc
// @Summary Build a WhatsApp booking inquiry link
// @Description Deep link with tour name, date, guest count and price
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body request_models.BookingInquiryRequest true "Booking details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /bookings/whatsapp [post]
func (b *BookingController) InquiryLink(c *gin.Context) {
	var req request_models.BookingInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	link, err := b.bookingService.InquiryLink(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BookingLinkResponse{URL: link}, "Booking link created")
}

// GenericInquiryLink godoc
// @Summary Generic WhatsApp inquiry link
// @Tags Booking
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /bookings/whatsapp [get]
func (b *BookingController) GenericInquiryLink(c *gin.Context) {
	utils.RespondSuccess(c, response_models.BookingLinkResponse{URL: b.bookingService.GenericInquiryLink()}, "Booking link created")
}
