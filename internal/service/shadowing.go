package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gm2dev/interviewhub-client/internal/authz"
	"github.com/gm2dev/interviewhub-client/internal/logger"
	"github.com/gm2dev/interviewhub-client/internal/model"
)

// ShadowingAPI is the shadowing-request client surface the workflow
// drives.
type ShadowingAPI interface {
	Request(ctx context.Context, interviewID uuid.UUID) (model.ShadowingRequest, error)
	Approve(ctx context.Context, id uuid.UUID) (model.ShadowingRequest, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (model.ShadowingRequest, error)
	Cancel(ctx context.Context, id uuid.UUID) (model.ShadowingRequest, error)
}

// Shadowing drives shadowing-request transitions, checking the local
// policy before each one. Local checks mirror the backend's rules for
// the UI only; the backend stays authoritative.
type Shadowing struct {
	api     ShadowingAPI
	session Session
	logger  *logger.Logger
}

// NewShadowing creates the shadowing workflow.
func NewShadowing(api ShadowingAPI, session Session, logger *logger.Logger) *Shadowing {
	return &Shadowing{api: api, session: session, logger: logger}
}

// Request asks to shadow the given interview.
func (s *Shadowing) Request(ctx context.Context, interview model.Interview) (model.ShadowingRequest, error) {
	subject, err := s.currentSubject()
	if err != nil {
		return model.ShadowingRequest{}, err
	}
	if !authz.CanRequestShadowing(subject, interview) {
		return model.ShadowingRequest{}, model.ErrNotPermitted
	}

	request, err := s.api.Request(ctx, interview.ID)
	if err != nil {
		return model.ShadowingRequest{}, fmt.Errorf("failed to request shadowing: %w", err)
	}

	s.logger.Info("shadowing requested", "interview_id", interview.ID, "request_id", request.ID)
	return request, nil
}

// Approve lets the interview owner accept a pending request.
func (s *Shadowing) Approve(ctx context.Context, request model.ShadowingRequest) (model.ShadowingRequest, error) {
	subject, err := s.currentSubject()
	if err != nil {
		return model.ShadowingRequest{}, err
	}
	if !authz.CanApprove(subject, request) {
		return model.ShadowingRequest{}, model.ErrNotPermitted
	}

	approved, err := s.api.Approve(ctx, request.ID)
	if err != nil {
		return model.ShadowingRequest{}, fmt.Errorf("failed to approve shadowing request: %w", err)
	}

	s.logger.Info("shadowing request approved", "request_id", approved.ID)
	return approved, nil
}

// Reject lets the interview owner decline a pending request with a
// reason. Reason trimming and the blank check happen in the resource
// client, before any request is issued.
func (s *Shadowing) Reject(ctx context.Context, request model.ShadowingRequest, reason string) (model.ShadowingRequest, error) {
	subject, err := s.currentSubject()
	if err != nil {
		return model.ShadowingRequest{}, err
	}
	if !authz.CanReject(subject, request) {
		return model.ShadowingRequest{}, model.ErrNotPermitted
	}

	rejected, err := s.api.Reject(ctx, request.ID, reason)
	if err != nil {
		return model.ShadowingRequest{}, fmt.Errorf("failed to reject shadowing request: %w", err)
	}

	s.logger.Info("shadowing request rejected", "request_id", rejected.ID)
	return rejected, nil
}

// CancelRequest lets the shadower retract their own pending request.
func (s *Shadowing) CancelRequest(ctx context.Context, request model.ShadowingRequest) (model.ShadowingRequest, error) {
	subject, err := s.currentSubject()
	if err != nil {
		return model.ShadowingRequest{}, err
	}
	if !authz.CanCancelRequest(subject, request) {
		return model.ShadowingRequest{}, model.ErrNotPermitted
	}

	cancelled, err := s.api.Cancel(ctx, request.ID)
	if err != nil {
		return model.ShadowingRequest{}, fmt.Errorf("failed to cancel shadowing request: %w", err)
	}

	s.logger.Info("shadowing request cancelled", "request_id", cancelled.ID)
	return cancelled, nil
}

func (s *Shadowing) currentSubject() (string, error) {
	if !s.session.IsAuthenticated() {
		return "", model.ErrUnauthenticated
	}
	subject, ok := s.session.Subject()
	if !ok {
		return "", model.ErrUnauthenticated
	}
	return subject, nil
}
