package repositories

import (
	"context"
	"fmt"
	"net/url"

	"honesttour/internal/infra"
	"honesttour/internal/models/cms_models"
)

type TourRepositoryInterface interface {
	ListTours(ctx context.Context, sort string) ([]cms_models.Tour, error)
	GetTourByID(ctx context.Context, id int) (*cms_models.Tour, error)
	GetTourByDocumentID(ctx context.Context, documentID string) (*cms_models.Tour, error)
}

// TourRepository reads tour records from the remote CMS. Tours are never
// written locally; the CMS is the only writer.
type TourRepository struct {
	cms *infra.CMSClient
}

func NewTourRepository(cms *infra.CMSClient) *TourRepository {
	return &TourRepository{cms: cms}
}

func (r *TourRepository) ListTours(ctx context.Context, sort string) ([]cms_models.Tour, error) {
	query := url.Values{}
	query.Set("populate", "*")
	if sort != "" {
		query.Set("sort[0]", sort)
	}

	var payload struct {
		Data []cms_models.Tour `json:"data"`
		Meta *cms_models.Meta  `json:"meta"`
	}
	if err := r.cms.Get(ctx, "/tours", query, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (r *TourRepository) GetTourByID(ctx context.Context, id int) (*cms_models.Tour, error) {
	return r.getTour(ctx, fmt.Sprintf("/tours/%d", id))
}

func (r *TourRepository) GetTourByDocumentID(ctx context.Context, documentID string) (*cms_models.Tour, error) {
	return r.getTour(ctx, "/tours/"+url.PathEscape(documentID))
}

func (r *TourRepository) getTour(ctx context.Context, path string) (*cms_models.Tour, error) {
	query := url.Values{}
	query.Set("populate", "*")

	var payload struct {
		Data *cms_models.Tour `json:"data"`
	}
	if err := r.cms.Get(ctx, path, query, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}
