package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"honesttour/internal/models/request_models"
	"honesttour/internal/services"
	"honesttour/pkg/utils"
)

type NewsletterController struct {
	newsletterService services.NewsletterServiceInterface
}

func NewNewsletterController(newsletterService services.NewsletterServiceInterface) *NewsletterController {
	return &NewsletterController{newsletterService: newsletterService}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Forward an email address to the mailing-list provider
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body request_models.SubscribeRequest true "Email"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /newsletter/subscribe [post]
func (n *NewsletterController) Subscribe(c *gin.Context) {
	var req request_models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := n.newsletterService.Subscribe(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Successfully subscribed!")
}
