package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"

	"honesttour/internal/fallback"
	"honesttour/internal/models/cms_models"
	"honesttour/internal/models/request_models"
	"honesttour/internal/models/response_models"
	"honesttour/internal/repositories"
	mem "honesttour/pkg/memcache"
	"honesttour/pkg/utils"
)

type TourServiceInterface interface {
	ListTours(ctx context.Context, state request_models.FilterState, sortOrder string) ([]response_models.TourView, error)
	GetTour(ctx context.Context, idOrDocumentID string) (*response_models.TourView, error)
	FilterMetadata(ctx context.Context) (response_models.FilterMetadata, error)
}

type TourService struct {
	tourRepo  repositories.TourRepositoryInterface
	cache     mem.TourListCache
	transform *tourTransformer
}

func NewTourService(tourRepo repositories.TourRepositoryInterface, cache mem.TourListCache, mediaOrigin string) TourServiceInterface {
	return &TourService{
		tourRepo:  tourRepo,
		cache:     cache,
		transform: newTourTransformer(mediaOrigin),
	}
}

// ListTours fetches the tour list (sort order is a CMS request parameter,
// so a sort change is a fresh fetch) and applies the filter state locally.
// Fetch failures fall back to the last-good cache, then the static dataset.
func (s *TourService) ListTours(ctx context.Context, state request_models.FilterState, sortOrder string) ([]response_models.TourView, error) {
	if state.MinPrice > state.MaxPrice {
		return nil, utils.ErrInvalidPriceRange
	}

	tours := s.loadTours(ctx, sortOrder)
	return applyFilters(tours, state), nil
}

// GetTour resolves a tour by numeric id or document-id. A record absent from
// both the live CMS and the fallback dataset is a distinct not-found, never
// a substituted default.
func (s *TourService) GetTour(ctx context.Context, idOrDocumentID string) (*response_models.TourView, error) {
	var (
		raw *cms_models.Tour
		err error
	)

	if id, convErr := strconv.Atoi(idOrDocumentID); convErr == nil {
		raw, err = s.tourRepo.GetTourByID(ctx, id)
	} else {
		raw, err = s.tourRepo.GetTourByDocumentID(ctx, idOrDocumentID)
	}

	if err != nil {
		if !errors.Is(err, utils.ErrCMSRecordNotFound) {
			log.Printf("Error fetching tour %s: %v", idOrDocumentID, err)
		}
		return s.fallbackTour(idOrDocumentID)
	}
	if raw == nil {
		return s.fallbackTour(idOrDocumentID)
	}

	view, err := s.transform.Transform(*raw)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *TourService) fallbackTour(idOrDocumentID string) (*response_models.TourView, error) {
	id, err := strconv.Atoi(idOrDocumentID)
	if err != nil {
		return nil, utils.ErrTourNotFound
	}
	for _, view := range fallback.Tours() {
		if view.ID == id {
			v := view
			return &v, nil
		}
	}
	return nil, utils.ErrTourNotFound
}

// FilterMetadata summarizes the current tour set for the filter UI.
func (s *TourService) FilterMetadata(ctx context.Context) (response_models.FilterMetadata, error) {
	tours := s.loadTours(ctx, "")

	categorySet := make(map[string]struct{})
	locationSet := make(map[string]struct{})
	priceRange := response_models.PriceRange{}

	for i, tour := range tours {
		categorySet[tour.Category] = struct{}{}
		locationSet[tour.Location] = struct{}{}
		if i == 0 || tour.Price < priceRange.Min {
			priceRange.Min = tour.Price
		}
		if tour.Price > priceRange.Max {
			priceRange.Max = tour.Price
		}
	}

	return response_models.FilterMetadata{
		Categories: sortedKeys(categorySet),
		Locations:  sortedKeys(locationSet),
		PriceRange: priceRange,
	}, nil
}

// loadTours is the shared fetch path: CMS, then last-good cache, then the
// static fallback dataset. It never fails; a broken upstream still yields a
// usable list (single attempt, no retry).
func (s *TourService) loadTours(ctx context.Context, sortOrder string) []response_models.TourView {
	gen := s.cache.Begin()

	raws, err := s.tourRepo.ListTours(ctx, sortOrder)
	if err != nil {
		log.Printf("Error fetching tours: %v", err)
		if cached, ok := s.cache.Get(); ok {
			return cached
		}
		return fallback.Tours()
	}

	views := make([]response_models.TourView, 0, len(raws))
	for _, raw := range raws {
		view, err := s.transform.Transform(raw)
		if err != nil {
			log.Printf("Skipping malformed tour record %d: %v", raw.ID, err)
			continue
		}
		views = append(views, view)
	}

	s.cache.Complete(gen, views)
	return views
}

// applyFilters ANDs the four filter predicates. Each predicate is pure and
// independent, so application order does not matter.
func applyFilters(tours []response_models.TourView, state request_models.FilterState) []response_models.TourView {
	out := make([]response_models.TourView, 0, len(tours))
	for _, tour := range tours {
		if matchesSearch(tour, state.Search) &&
			matchesCategory(tour, state.Category) &&
			matchesLocation(tour, state.Location) &&
			tour.Price >= state.MinPrice && tour.Price <= state.MaxPrice {
			out = append(out, tour)
		}
	}
	return out
}

func matchesSearch(tour response_models.TourView, search string) bool {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tour.Name), q) ||
		strings.Contains(strings.ToLower(tour.Location), q) ||
		strings.Contains(strings.ToLower(tour.Description), q)
}

func matchesCategory(tour response_models.TourView, category string) bool {
	if category == "" || strings.EqualFold(category, request_models.FilterAll) {
		return true
	}
	return tour.Category == category
}

func matchesLocation(tour response_models.TourView, location string) bool {
	if location == "" || strings.EqualFold(location, request_models.FilterAll) {
		return true
	}
	return strings.Contains(strings.ToLower(tour.Location), strings.ToLower(location))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
