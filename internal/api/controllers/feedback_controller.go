package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"honesttour/internal/models/request_models"
	"honesttour/internal/services"
	"honesttour/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// ListFeedback godoc
// @Summary List feedback
// @Description Get feedback, newest first, optionally scoped to a tour
// @Tags Feedback
// @Produce json
// @Param tour query string false "Tour id or document-id"
// @Param sort query string false "CMS sort expression" default(createdAt:desc)
// @Success 200 {object} utils.APIResponse
// @Router /feedbacks [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	feedbacks, err := f.feedbackService.ListFeedback(c.Request.Context(), c.Query("tour"), c.Query("sort"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}

// TourFeedback godoc
// @Summary List feedback for a tour
// @Tags Feedback
// @Produce json
// @Param id path string true "Tour id or document-id"
// @Success 200 {object} utils.APIResponse
// @Router /tours/{id}/feedback [get]
func (f *FeedbackController) TourFeedback(c *gin.Context) {
	feedbacks, err := f.feedbackService.ListFeedback(c.Request.Context(), c.Param("id"), c.Query("sort"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}

// TourFeedbackStats godoc
// @Summary Feedback statistics for a tour
// @Description Total, average rating and 1-5 star histogram
// @Tags Feedback
// @Produce json
// @Param id path string true "Tour id or document-id"
// @Success 200 {object} utils.APIResponse
// @Router /tours/{id}/feedback/stats [get]
func (f *FeedbackController) TourFeedbackStats(c *gin.Context) {
	stats, err := f.feedbackService.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Feedback stats fetched successfully")
}

// AddFeedback godoc
// @Summary Submit feedback
// @Description Add a star rating and comment for a tour
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.AddFeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /feedbacks [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	var req request_models.AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	feedback, err := f.feedbackService.AddFeedback(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback added successfully")
}

// UpdateFeedback godoc
// @Summary Update feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback document-id"
// @Param request body request_models.UpdateFeedbackRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Router /feedbacks/{id} [put]
func (f *FeedbackController) UpdateFeedback(c *gin.Context) {
	var req request_models.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	feedback, err := f.feedbackService.UpdateFeedback(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback updated successfully")
}

// DeleteFeedback godoc
// @Summary Delete feedback
// @Tags Feedback
// @Param id path string true "Feedback document-id"
// @Success 200 {object} utils.APIResponse
// @Router /feedbacks/{id} [delete]
func (f *FeedbackController) DeleteFeedback(c *gin.Context) {
	if err := f.feedbackService.DeleteFeedback(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback deleted successfully")
}
