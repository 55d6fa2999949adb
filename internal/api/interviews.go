package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/gm2dev/interviewhub-client/internal/model"
)

// DefaultPageSize is used when a listing does not name a size.
const DefaultPageSize = 20

// Interviews is the typed client for the interview resource.
type Interviews struct {
	client *Client
}

// NewInterviews creates an interview resource client.
func NewInterviews(client *Client) *Interviews {
	return &Interviews{client: client}
}

// ListParams selects one page of interviews. Sort is an optional
// "field,direction" string passed through to the backend unvalidated.
type ListParams struct {
	Page int
	Size int
	Sort string
}

// List fetches one page of interviews. A zero ListParams means the
// first page of twenty with no sort parameter at all.
func (i *Interviews) List(ctx context.Context, params ListParams) (model.Page[model.Interview], error) {
	if params.Page < 0 {
		params.Page = 0
	}
	if params.Size <= 0 {
		params.Size = DefaultPageSize
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.Size))
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}

	var page model.Page[model.Interview]
	err := i.client.do(ctx, http.MethodGet, "/api/interviews", query, nil, &page)
	return page, err
}

// Get fetches one interview by id.
func (i *Interviews) Get(ctx context.Context, id uuid.UUID) (model.Interview, error) {
	var interview model.Interview
	err := i.client.do(ctx, http.MethodGet, "/api/interviews/"+id.String(), nil, nil, &interview)
	return interview, err
}

// Create schedules a new interview. The response carries the
// server-assigned id and SCHEDULED status.
func (i *Interviews) Create(ctx context.Context, req model.CreateInterviewRequest) (model.Interview, error) {
	var interview model.Interview
	err := i.client.do(ctx, http.MethodPost, "/api/interviews", nil, req, &interview)
	return interview, err
}

// Update replaces an interview in full; there are no partial patches.
func (i *Interviews) Update(ctx context.Context, id uuid.UUID, req model.UpdateInterviewRequest) (model.Interview, error) {
	var interview model.Interview
	err := i.client.do(ctx, http.MethodPut, "/api/interviews/"+id.String(), nil, req, &interview)
	return interview, err
}

// Remove cancels/deletes an interview. Terminal.
func (i *Interviews) Remove(ctx context.Context, id uuid.UUID) error {
	return i.client.do(ctx, http.MethodDelete, "/api/interviews/"+id.String(), nil, nil, nil)
}
