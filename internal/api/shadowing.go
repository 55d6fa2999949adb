package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gm2dev/interviewhub-client/internal/model"
)

// ShadowingRequests is the action-oriented client for the
// shadowing-request resource. Every operation is a state transition;
// the backend rejects transitions out of terminal states.
type ShadowingRequests struct {
	client *Client
}

// NewShadowingRequests creates a shadowing-request resource client.
func NewShadowingRequests(client *Client) *ShadowingRequests {
	return &ShadowingRequests{client: client}
}

// Request asks to shadow the given interview. The backend creates the
// request in PENDING with the calling identity as shadower.
func (s *ShadowingRequests) Request(ctx context.Context, interviewID uuid.UUID) (model.ShadowingRequest, error) {
	var req model.ShadowingRequest
	err := s.client.do(ctx, http.MethodPost,
		"/api/interviews/"+interviewID.String()+"/shadowing-requests", nil, struct{}{}, &req)
	return req, err
}

// Approve transitions a PENDING request to APPROVED.
func (s *ShadowingRequests) Approve(ctx context.Context, id uuid.UUID) (model.ShadowingRequest, error) {
	return s.transition(ctx, id, "approve", struct{}{})
}

// Reject transitions a PENDING request to REJECTED. The reason is
// trimmed; a reason that is blank after trimming returns
// model.ErrBlankReason and no request is issued.
func (s *ShadowingRequests) Reject(ctx context.Context, id uuid.UUID, reason string) (model.ShadowingRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return model.ShadowingRequest{}, model.ErrBlankReason
	}

	body := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	return s.transition(ctx, id, "reject", body)
}

// Cancel transitions a PENDING request to CANCELLED; the shadower's
// way of retracting their own request.
func (s *ShadowingRequests) Cancel(ctx context.Context, id uuid.UUID) (model.ShadowingRequest, error) {
	return s.transition(ctx, id, "cancel", struct{}{})
}

func (s *ShadowingRequests) transition(ctx context.Context, id uuid.UUID, action string, body any) (model.ShadowingRequest, error) {
	var req model.ShadowingRequest
	err := s.client.do(ctx, http.MethodPost,
		"/api/shadowing-requests/"+id.String()+"/"+action, nil, body, &req)
	return req, err
}
