package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honesttour/internal/models/cms_models"
	"honesttour/internal/models/request_models"
	"honesttour/internal/repositories"
	"honesttour/pkg/utils"
)

type stubFeedbackRepo struct {
	feedbacks []cms_models.Feedback
	err       error

	created *repositories.FeedbackPayload
	deleted string
}

func (s *stubFeedbackRepo) ListFeedback(ctx context.Context, tourRef, sort string) ([]cms_models.Feedback, error) {
	return s.feedbacks, s.err
}

func (s *stubFeedbackRepo) CreateFeedback(ctx context.Context, payload repositories.FeedbackPayload) (*cms_models.Feedback, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &payload
	return &cms_models.Feedback{
		ID:         42,
		DocumentID: "doc-42",
		Name:       payload.Name,
		RatingStar: payload.RatingStar,
		Comment:    payload.Comment,
		CreatedAt:  time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}, nil
}

func (s *stubFeedbackRepo) UpdateFeedback(ctx context.Context, documentID string, payload repositories.FeedbackPayload) (*cms_models.Feedback, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &cms_models.Feedback{DocumentID: documentID, Name: payload.Name, RatingStar: payload.RatingStar, Comment: payload.Comment}, nil
}

func (s *stubFeedbackRepo) DeleteFeedback(ctx context.Context, documentID string) error {
	s.deleted = documentID
	return s.err
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.Histogram)
}

func TestComputeStatsAverageAndHistogram(t *testing.T) {
	stats := ComputeStats([]cms_models.Feedback{
		{RatingStar: 5},
		{RatingStar: 3},
	})

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 4.0, stats.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 1, 4: 0, 5: 1}, stats.Histogram)
}

func TestComputeStatsHistogramSumsToTotal(t *testing.T) {
	collections := [][]cms_models.Feedback{
		{},
		{{RatingStar: 1}},
		{{RatingStar: 5}, {RatingStar: 5}, {RatingStar: 2}},
		{{RatingStar: 1}, {RatingStar: 2}, {RatingStar: 3}, {RatingStar: 4}, {RatingStar: 5}},
		{{RatingStar: 4}, {RatingStar: 0}, {RatingStar: -3}, {RatingStar: 9}},
	}

	for _, feedbacks := range collections {
		stats := ComputeStats(feedbacks)

		sum := 0
		for k := 1; k <= 5; k++ {
			sum += stats.Histogram[k]
		}
		assert.Equal(t, stats.Total, sum)

		if stats.Total > 0 {
			assert.GreaterOrEqual(t, stats.AverageRating, 1.0)
			assert.LessOrEqual(t, stats.AverageRating, 5.0)
		}
	}
}

func TestComputeStatsExcludesOutOfRangeRatings(t *testing.T) {
	stats := ComputeStats([]cms_models.Feedback{
		{RatingStar: 5},
		{RatingStar: 0}, // unrated CMS row
		{RatingStar: 7},
	})

	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 5.0, stats.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 1}, stats.Histogram)
}

func TestComputeStatsRoundsToOneDecimal(t *testing.T) {
	// (5+4+4)/3 = 4.333... -> 4.3
	stats := ComputeStats([]cms_models.Feedback{
		{RatingStar: 5}, {RatingStar: 4}, {RatingStar: 4},
	})
	assert.Equal(t, 4.3, stats.AverageRating)
}

func TestFilterByTour(t *testing.T) {
	feedbacks := []cms_models.Feedback{
		{ID: 1, Tour: &cms_models.TourRef{ID: 7, DocumentID: "doc-7"}},
		{ID: 2, Tour: &cms_models.TourRef{ID: 8, DocumentID: "doc-8"}},
		{ID: 3, Tour: nil},
	}

	tests := []struct {
		name string
		ref  string
		want []int
	}{
		{name: "empty ref keeps everything", ref: "", want: []int{1, 2, 3}},
		{name: "numeric id", ref: "7", want: []int{1}},
		{name: "document id", ref: "doc-8", want: []int{2}},
		{name: "unknown ref", ref: "doc-9", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByTour(feedbacks, tt.ref)
			ids := make([]int, 0, len(got))
			for _, fb := range got {
				ids = append(ids, fb.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestAddFeedbackRejectsOutOfRangeRating(t *testing.T) {
	svc := NewFeedbackService(&stubFeedbackRepo{})

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.AddFeedback(context.Background(), request_models.AddFeedbackRequest{
			Name: "Anna", RatingStar: rating, Comment: "great",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidRating)
	}
}

func TestAddFeedbackForwardsPayload(t *testing.T) {
	repo := &stubFeedbackRepo{}
	svc := NewFeedbackService(repo)

	view, err := svc.AddFeedback(context.Background(), request_models.AddFeedbackRequest{
		Name: "Anna", RatingStar: 5, Comment: "great tour", Tour: "doc-7",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, "Anna", repo.created.Name)
	assert.Equal(t, 5, repo.created.RatingStar)
	assert.Equal(t, "doc-7", repo.created.Tour)
	assert.Equal(t, "A", view.User.Initials)
	assert.Equal(t, "06-15-2025", view.Date)
}

func TestStatsScopesBeforeAggregating(t *testing.T) {
	repo := &stubFeedbackRepo{feedbacks: []cms_models.Feedback{
		{ID: 1, RatingStar: 5, Tour: &cms_models.TourRef{ID: 7}},
		{ID: 2, RatingStar: 1, Tour: &cms_models.TourRef{ID: 8}},
	}}
	svc := NewFeedbackService(repo)

	stats, err := svc.Stats(context.Background(), "7")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 5.0, stats.AverageRating)
}

func TestAvatarColorIndexStable(t *testing.T) {
	assert.Equal(t, avatarColorIndex("Anna"), avatarColorIndex("Anna"))
	assert.GreaterOrEqual(t, avatarColorIndex("Robert Kim"), 0)
	assert.Less(t, avatarColorIndex("Robert Kim"), avatarColorCount)
}
