package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"honesttour/internal/models/request_models"
	"honesttour/internal/services"
	"honesttour/pkg/utils"
)

type ToursController struct {
	tourService services.TourServiceInterface
}

func NewToursController(tourService services.TourServiceInterface) *ToursController {
	return &ToursController{tourService: tourService}
}

// ListTours godoc
// @Summary List tours
// @Description List tours with optional search, category, location and price filters. Sort is forwarded to the data source.
// @Tags Tours
// @Produce json
// @Param search query string false "Free-text search"
// @Param category query string false "Category filter" default(all)
// @Param location query string false "Location filter" default(all)
// @Param min_price query number false "Minimum price" default(0)
// @Param max_price query number false "Maximum price" default(1000)
// @Param sort query string false "price:asc or price:desc"
// @Success 200 {object} utils.APIResponse
// @Router /tours [get]
func (t *ToursController) ListTours(c *gin.Context) {
	state := request_models.DefaultFilterState()
	state.Search = c.Query("search")
	state.Category = c.DefaultQuery("category", request_models.FilterAll)
	state.Location = c.DefaultQuery("location", request_models.FilterAll)

	var err error
	if state.MinPrice, err = parsePrice(c.DefaultQuery("min_price", "0"), request_models.DefaultMinPrice); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid min_price")
		return
	}
	if state.MaxPrice, err = parsePrice(c.DefaultQuery("max_price", "1000"), request_models.DefaultMaxPrice); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid max_price")
		return
	}

	sortOrder := c.Query("sort")
	switch sortOrder {
	case "", request_models.SortPriceAsc, request_models.SortPriceDesc:
	default:
		utils.RespondError(c, http.StatusBadRequest, "Invalid sort, use price:asc or price:desc")
		return
	}

	tours, err := t.tourService.ListTours(c.Request.Context(), state, sortOrder)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tours, "Tours fetched successfully")
}

// GetTour godoc
// @Summary Get a tour
// @Description Get a tour by numeric id or document-id
// @Tags Tours
// @Produce json
// @Param id path string true "Tour id or document-id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tours/{id} [get]
func (t *ToursController) GetTour(c *gin.Context) {
	tour, err := t.tourService.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tour, "Tour fetched successfully")
}

// FilterMetadata godoc
// @Summary Filter metadata
// @Description Categories, locations and price range of the current tour set
// @Tags Tours
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /tours/filters [get]
func (t *ToursController) FilterMetadata(c *gin.Context) {
	meta, err := t.tourService.FilterMetadata(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, meta, "Filter metadata fetched successfully")
}

func parsePrice(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, utils.ErrInvalidPriceRange
	}
	return v, nil
}
