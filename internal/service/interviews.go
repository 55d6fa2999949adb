package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gm2dev/interviewhub-client/internal/authz"
	"github.com/gm2dev/interviewhub-client/internal/logger"
	"github.com/gm2dev/interviewhub-client/internal/model"
	"github.com/gm2dev/interviewhub-client/internal/schedule"
)

// Session exposes what workflows need from the session store.
type Session interface {
	Subject() (string, bool)
	IsAuthenticated() bool
}

// InterviewAPI is the interview resource client surface the workflow
// drives.
type InterviewAPI interface {
	Create(ctx context.Context, req model.CreateInterviewRequest) (model.Interview, error)
	Update(ctx context.Context, id uuid.UUID, req model.UpdateInterviewRequest) (model.Interview, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

// ScheduleForm is the user's input when scheduling or rescheduling an
// interview. StartLocal is wall-clock time to the minute
// ("2006-01-02T15:04") in the caller's location; the end instant is
// always recomputed from start plus duration, never carried over.
type ScheduleForm struct {
	TechStack       string
	CandidateName   string
	CandidateEmail  string
	StartLocal      string
	DurationMinutes int
}

func (f ScheduleForm) candidateInfo() map[string]any {
	info := make(map[string]any)
	if f.CandidateName != "" {
		info["name"] = f.CandidateName
	}
	if f.CandidateEmail != "" {
		info["email"] = f.CandidateEmail
	}
	if len(info) == 0 {
		return nil
	}
	return info
}

// Interviews turns scheduling forms into interview mutations. A
// cooperative guard refuses a second submission while one is pending.
type Interviews struct {
	api     InterviewAPI
	session Session
	logger  *logger.Logger
	submit  guard
}

// NewInterviews creates the interview scheduling workflow.
func NewInterviews(api InterviewAPI, session Session, logger *logger.Logger) *Interviews {
	return &Interviews{api: api, session: session, logger: logger}
}

// Schedule creates an interview owned by the current identity. The
// session must be live and carry a subject; a stale session routes to
// re-authentication instead of being attempted.
func (s *Interviews) Schedule(ctx context.Context, form ScheduleForm, loc *time.Location) (model.Interview, error) {
	if !s.submit.begin() {
		return model.Interview{}, model.ErrBusy
	}
	defer s.submit.end()

	interviewerID, err := s.currentInterviewer()
	if err != nil {
		return model.Interview{}, err
	}

	start, err := schedule.ParseLocal(form.StartLocal, loc)
	if err != nil {
		return model.Interview{}, err
	}

	created, err := s.api.Create(ctx, model.CreateInterviewRequest{
		InterviewerID: interviewerID,
		CandidateInfo: form.candidateInfo(),
		TechStack:     form.TechStack,
		StartTime:     start,
		EndTime:       schedule.EndTime(start, form.DurationMinutes),
	})
	if err != nil {
		return model.Interview{}, fmt.Errorf("failed to schedule interview: %w", err)
	}

	s.logger.Info("interview scheduled", "id", created.ID, "tech_stack", created.TechStack)
	return created, nil
}

// Reschedule replaces an interview from the edited form. Full
// replacement semantics: status is preserved, the end instant is
// recomputed.
func (s *Interviews) Reschedule(ctx context.Context, interview model.Interview, form ScheduleForm, loc *time.Location) (model.Interview, error) {
	if !s.submit.begin() {
		return model.Interview{}, model.ErrBusy
	}
	defer s.submit.end()

	subject, err := s.currentSubject()
	if err != nil {
		return model.Interview{}, err
	}
	if !authz.CanEdit(subject, interview) {
		return model.Interview{}, model.ErrNotPermitted
	}

	start, err := schedule.ParseLocal(form.StartLocal, loc)
	if err != nil {
		return model.Interview{}, err
	}

	updated, err := s.api.Update(ctx, interview.ID, model.UpdateInterviewRequest{
		CandidateInfo: form.candidateInfo(),
		TechStack:     form.TechStack,
		StartTime:     start,
		EndTime:       schedule.EndTime(start, form.DurationMinutes),
		Status:        interview.Status,
	})
	if err != nil {
		return model.Interview{}, fmt.Errorf("failed to reschedule interview: %w", err)
	}

	s.logger.Info("interview rescheduled", "id", updated.ID)
	return updated, nil
}

// Cancel removes an interview, owner only.
func (s *Interviews) Cancel(ctx context.Context, interview model.Interview) error {
	subject, err := s.currentSubject()
	if err != nil {
		return err
	}
	if !authz.CanCancelInterview(subject, interview) {
		return model.ErrNotPermitted
	}

	if err := s.api.Remove(ctx, interview.ID); err != nil {
		return fmt.Errorf("failed to cancel interview: %w", err)
	}

	s.logger.Info("interview cancelled", "id", interview.ID)
	return nil
}

// EditForm pre-fills a form from an existing interview: the start as
// wall-clock time in loc and the derived duration, falling back to
// the default when the span is not one of the offered options.
func (s *Interviews) EditForm(interview model.Interview, loc *time.Location) ScheduleForm {
	form := ScheduleForm{
		TechStack:       interview.TechStack,
		StartLocal:      schedule.FormatLocal(interview.StartTime, loc),
		DurationMinutes: schedule.PrefillDuration(interview.StartTime, interview.EndTime),
	}
	if name, ok := interview.CandidateInfo["name"].(string); ok {
		form.CandidateName = name
	}
	if email, ok := interview.CandidateInfo["email"].(string); ok {
		form.CandidateEmail = email
	}
	return form
}

func (s *Interviews) currentSubject() (string, error) {
	if !s.session.IsAuthenticated() {
		return "", model.ErrUnauthenticated
	}
	subject, ok := s.session.Subject()
	if !ok {
		return "", model.ErrUnauthenticated
	}
	return subject, nil
}

func (s *Interviews) currentInterviewer() (uuid.UUID, error) {
	subject, err := s.currentSubject()
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse identity subject: %w", err)
	}
	return id, nil
}
