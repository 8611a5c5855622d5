package repositories

import (
	"context"
	"net/url"
	"strconv"

	"honesttour/internal/infra"
	"honesttour/internal/models/cms_models"
)

// FeedbackPayload is the writable subset of a feedback record, wrapped in
// the CMS's {"data": ...} envelope on the wire.
type FeedbackPayload struct {
	Name       string `json:"name,omitempty"`
	RatingStar int    `json:"rating_star,omitempty"`
	Comment    string `json:"comment,omitempty"`
	Tour       string `json:"tour,omitempty"`
}

type FeedbackRepositoryInterface interface {
	ListFeedback(ctx context.Context, tourRef, sort string) ([]cms_models.Feedback, error)
	CreateFeedback(ctx context.Context, payload FeedbackPayload) (*cms_models.Feedback, error)
	UpdateFeedback(ctx context.Context, documentID string, payload FeedbackPayload) (*cms_models.Feedback, error)
	DeleteFeedback(ctx context.Context, documentID string) error
}

type FeedbackRepository struct {
	cms *infra.CMSClient
}

func NewFeedbackRepository(cms *infra.CMSClient) *FeedbackRepository {
	return &FeedbackRepository{cms: cms}
}

// ListFeedback fetches feedback newest-first. tourRef scopes the query to a
// tour by numeric id or document-id; empty means all feedback.
func (r *FeedbackRepository) ListFeedback(ctx context.Context, tourRef, sort string) ([]cms_models.Feedback, error) {
	query := url.Values{}
	query.Set("populate", "*")
	if sort == "" {
		sort = "createdAt:desc"
	}
	query.Set("sort[0]", sort)

	if tourRef != "" {
		if id, err := strconv.Atoi(tourRef); err == nil {
			query.Set("filters[tour][id][$eq]", strconv.Itoa(id))
		} else {
			query.Set("filters[tour][documentId][$eq]", tourRef)
		}
	}

	var payload struct {
		Data []cms_models.Feedback `json:"data"`
		Meta *cms_models.Meta      `json:"meta"`
	}
	if err := r.cms.Get(ctx, "/feedbacks", query, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, payload FeedbackPayload) (*cms_models.Feedback, error) {
	body := struct {
		Data FeedbackPayload `json:"data"`
	}{Data: payload}

	var resp struct {
		Data *cms_models.Feedback `json:"data"`
	}
	if err := r.cms.Post(ctx, "/feedbacks", body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (r *FeedbackRepository) UpdateFeedback(ctx context.Context, documentID string, payload FeedbackPayload) (*cms_models.Feedback, error) {
	body := struct {
		Data FeedbackPayload `json:"data"`
	}{Data: payload}

	var resp struct {
		Data *cms_models.Feedback `json:"data"`
	}
	if err := r.cms.Put(ctx, "/feedbacks/"+url.PathEscape(documentID), body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (r *FeedbackRepository) DeleteFeedback(ctx context.Context, documentID string) error {
	return r.cms.Delete(ctx, "/feedbacks/"+url.PathEscape(documentID))
}
