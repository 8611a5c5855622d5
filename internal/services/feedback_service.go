package services

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"honesttour/internal/models/cms_models"
	"honesttour/internal/models/request_models"
	"honesttour/internal/models/response_models"
	"honesttour/internal/repositories"
	"honesttour/pkg/utils"
)

const avatarColorCount = 10

type FeedbackServiceInterface interface {
	ListFeedback(ctx context.Context, tourRef, sortOrder string) ([]response_models.FeedbackView, error)
	Stats(ctx context.Context, tourRef string) (response_models.FeedbackStats, error)
	AddFeedback(ctx context.Context, req request_models.AddFeedbackRequest) (*response_models.FeedbackView, error)
	UpdateFeedback(ctx context.Context, documentID string, req request_models.UpdateFeedbackRequest) (*response_models.FeedbackView, error)
	DeleteFeedback(ctx context.Context, documentID string) error
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

func (s *FeedbackService) ListFeedback(ctx context.Context, tourRef, sortOrder string) ([]response_models.FeedbackView, error) {
	feedbacks, err := s.fetchScoped(ctx, tourRef, sortOrder)
	if err != nil {
		return nil, err
	}

	views := make([]response_models.FeedbackView, 0, len(feedbacks))
	for _, fb := range feedbacks {
		views = append(views, transformFeedback(fb))
	}
	return views, nil
}

// Stats aggregates the tour-scoped feedback collection. Scoping happens
// here, before aggregation; ComputeStats itself never filters.
func (s *FeedbackService) Stats(ctx context.Context, tourRef string) (response_models.FeedbackStats, error) {
	feedbacks, err := s.fetchScoped(ctx, tourRef, "")
	if err != nil {
		return response_models.FeedbackStats{}, err
	}
	return ComputeStats(feedbacks), nil
}

func (s *FeedbackService) AddFeedback(ctx context.Context, req request_models.AddFeedbackRequest) (*response_models.FeedbackView, error) {
	if req.RatingStar < 1 || req.RatingStar > 5 {
		return nil, utils.ErrInvalidRating
	}

	created, err := s.feedbackRepo.CreateFeedback(ctx, repositories.FeedbackPayload{
		Name:       req.Name,
		RatingStar: req.RatingStar,
		Comment:    req.Comment,
		Tour:       req.Tour,
	})
	if err != nil {
		log.Printf("Error submitting feedback: %v", err)
		return nil, err
	}

	view := transformFeedback(*created)
	return &view, nil
}

func (s *FeedbackService) UpdateFeedback(ctx context.Context, documentID string, req request_models.UpdateFeedbackRequest) (*response_models.FeedbackView, error) {
	if req.RatingStar != 0 && (req.RatingStar < 1 || req.RatingStar > 5) {
		return nil, utils.ErrInvalidRating
	}

	updated, err := s.feedbackRepo.UpdateFeedback(ctx, documentID, repositories.FeedbackPayload{
		Name:       req.Name,
		RatingStar: req.RatingStar,
		Comment:    req.Comment,
	})
	if err != nil {
		return nil, mapFeedbackErr(err)
	}

	view := transformFeedback(*updated)
	return &view, nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, documentID string) error {
	if err := s.feedbackRepo.DeleteFeedback(ctx, documentID); err != nil {
		return mapFeedbackErr(err)
	}
	return nil
}

// fetchScoped lists feedback constrained to one tour. The CMS applies the
// filter on its side; it is re-applied locally in case the upstream schema
// lacks the relation.
func (s *FeedbackService) fetchScoped(ctx context.Context, tourRef, sortOrder string) ([]cms_models.Feedback, error) {
	feedbacks, err := s.feedbackRepo.ListFeedback(ctx, tourRef, sortOrder)
	if err != nil {
		return nil, err
	}
	return FilterByTour(feedbacks, tourRef), nil
}

// FilterByTour keeps the records whose tour back-reference matches ref,
// by numeric id or document-id. An empty ref keeps everything.
func FilterByTour(feedbacks []cms_models.Feedback, ref string) []cms_models.Feedback {
	if ref == "" {
		return feedbacks
	}

	out := make([]cms_models.Feedback, 0, len(feedbacks))
	for _, fb := range feedbacks {
		if fb.Tour == nil {
			continue
		}
		if fb.Tour.DocumentID == ref || strconv.Itoa(fb.Tour.ID) == ref {
			out = append(out, fb)
		}
	}
	return out
}

// ComputeStats summarizes a feedback collection: total, mean rounded to one
// decimal, and a 1..5 star histogram. Records with a rating outside 1..5 are
// excluded everywhere, so the histogram always sums to Total and the mean
// stays within [1,5]. An empty collection yields zeros with no division.
func ComputeStats(feedbacks []cms_models.Feedback) response_models.FeedbackStats {
	histogram := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	total := 0
	sum := 0
	for _, fb := range feedbacks {
		if fb.RatingStar < 1 || fb.RatingStar > 5 {
			continue
		}
		total++
		sum += fb.RatingStar
		histogram[fb.RatingStar]++
	}

	if total == 0 {
		return response_models.FeedbackStats{Total: 0, AverageRating: 0, Histogram: histogram}
	}

	return response_models.FeedbackStats{
		Total:         total,
		AverageRating: math.Round(float64(sum)/float64(total)*10) / 10,
		Histogram:     histogram,
	}
}

func transformFeedback(fb cms_models.Feedback) response_models.FeedbackView {
	initials := ""
	if runes := []rune(fb.Name); len(runes) > 0 {
		initials = strings.ToUpper(string(runes[0]))
	}

	date := ""
	if !fb.CreatedAt.IsZero() {
		date = fb.CreatedAt.Format("01-02-2006")
	}

	return response_models.FeedbackView{
		ID:         fb.ID,
		DocumentID: fb.DocumentID,
		User: response_models.FeedbackUser{
			Name:       fb.Name,
			Initials:   initials,
			ColorIndex: avatarColorIndex(fb.Name),
		},
		Rating:  fb.RatingStar,
		Comment: fb.Comment,
		Date:    date,
	}
}

// avatarColorIndex derives a stable color slot from the reviewer name so the
// same reviewer always renders with the same avatar color.
func avatarColorIndex(name string) int {
	sum := 0
	for _, r := range name {
		sum += int(r)
	}
	return sum % avatarColorCount
}

func mapFeedbackErr(err error) error {
	if errors.Is(err, utils.ErrCMSRecordNotFound) {
		return utils.ErrFeedbackNotFound
	}
	return err
}
