package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gm2dev/interviewhub-client/internal/model"
	"github.com/gm2dev/interviewhub-client/internal/testutil"
)

type fakeShadowingAPI struct {
	requestFn func(context.Context, uuid.UUID) (model.ShadowingRequest, error)
	approveFn func(context.Context, uuid.UUID) (model.ShadowingRequest, error)
	rejectFn  func(context.Context, uuid.UUID, string) (model.ShadowingRequest, error)
	cancelFn  func(context.Context, uuid.UUID) (model.ShadowingRequest, error)
	calls     int
}

func (f *fakeShadowingAPI) Request(ctx context.Context, id uuid.UUID) (model.ShadowingRequest, error) {
	f.calls++
	return f.requestFn(ctx, id)
}

func (f *fakeShadowingAPI) Approve(ctx context.Context, id uuid.UUID) (model.ShadowingRequest, error) {
	f.calls++
	return f.approveFn(ctx, id)
}

func (f *fakeShadowingAPI) Reject(ctx context.Context, id uuid.UUID, reason string) (model.ShadowingRequest, error) {
	f.calls++
	return f.rejectFn(ctx, id, reason)
}

func (f *fakeShadowingAPI) Cancel(ctx context.Context, id uuid.UUID) (model.ShadowingRequest, error) {
	f.calls++
	return f.cancelFn(ctx, id)
}

func pendingRequest(ownerID, shadowerID uuid.UUID) model.ShadowingRequest {
	return model.ShadowingRequest{
		ID: uuid.New(),
		Interview: &model.Interview{
			ID:          uuid.New(),
			Interviewer: model.Profile{ID: ownerID},
			Status:      model.InterviewScheduled,
		},
		Shadower: model.Profile{ID: shadowerID},
		Status:   model.ShadowingPending,
	}
}

func TestShadowing_Request(t *testing.T) {
	ownerID := uuid.New()
	shadowerID := uuid.New()
	interview := model.Interview{
		ID:          uuid.New(),
		Interviewer: model.Profile{ID: ownerID},
		Status:      model.InterviewScheduled,
	}

	fake := &fakeShadowingAPI{
		requestFn: func(_ context.Context, id uuid.UUID) (model.ShadowingRequest, error) {
			assert.Equal(t, interview.ID, id)
			return model.ShadowingRequest{ID: uuid.New(), Status: model.ShadowingPending}, nil
		},
	}

	svc := NewShadowing(fake, ownerSession(shadowerID), testutil.MakeNoopLogger())
	request, err := svc.Request(context.Background(), interview)

	require.NoError(t, err)
	assert.Equal(t, model.ShadowingPending, request.Status)
}

func TestShadowing_Request_Denied(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name      string
		session   *fakeSession
		interview model.Interview
		wantErr   error
	}{
		{
			"owner cannot shadow own interview",
			ownerSession(ownerID),
			model.Interview{Interviewer: model.Profile{ID: ownerID}, Status: model.InterviewScheduled},
			model.ErrNotPermitted,
		},
		{
			"interview no longer scheduled",
			ownerSession(uuid.New()),
			model.Interview{Interviewer: model.Profile{ID: ownerID}, Status: model.InterviewCompleted},
			model.ErrNotPermitted,
		},
		{
			"stale session",
			&fakeSession{subject: uuid.NewString(), hasSub: true, authed: false},
			model.Interview{Interviewer: model.Profile{ID: ownerID}, Status: model.InterviewScheduled},
			model.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeShadowingAPI{}
			svc := NewShadowing(fake, tt.session, testutil.MakeNoopLogger())

			_, err := svc.Request(context.Background(), tt.interview)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, fake.calls)
		})
	}
}

func TestShadowing_Approve(t *testing.T) {
	ownerID := uuid.New()
	request := pendingRequest(ownerID, uuid.New())

	fake := &fakeShadowingAPI{
		approveFn: func(_ context.Context, id uuid.UUID) (model.ShadowingRequest, error) {
			assert.Equal(t, request.ID, id)
			approved := request
			approved.Status = model.ShadowingApproved
			return approved, nil
		},
	}

	svc := NewShadowing(fake, ownerSession(ownerID), testutil.MakeNoopLogger())
	approved, err := svc.Approve(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, model.ShadowingApproved, approved.Status)
}

func TestShadowing_Approve_Denied(t *testing.T) {
	ownerID := uuid.New()

	alreadyApproved := pendingRequest(ownerID, uuid.New())
	alreadyApproved.Status = model.ShadowingApproved

	tests := []struct {
		name    string
		session *fakeSession
		request model.ShadowingRequest
	}{
		{"not the owner", ownerSession(uuid.New()), pendingRequest(ownerID, uuid.New())},
		{"already approved is one-shot", ownerSession(ownerID), alreadyApproved},
		{"no back-reference", ownerSession(ownerID), model.ShadowingRequest{Status: model.ShadowingPending}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeShadowingAPI{}
			svc := NewShadowing(fake, tt.session, testutil.MakeNoopLogger())

			_, err := svc.Approve(context.Background(), tt.request)

			assert.ErrorIs(t, err, model.ErrNotPermitted)
			assert.Zero(t, fake.calls, "the action must not be offered, let alone sent")
		})
	}
}

func TestShadowing_Reject(t *testing.T) {
	ownerID := uuid.New()
	request := pendingRequest(ownerID, uuid.New())

	var gotReason string
	fake := &fakeShadowingAPI{
		rejectFn: func(_ context.Context, id uuid.UUID, reason string) (model.ShadowingRequest, error) {
			gotReason = reason
			rejected := request
			rejected.Status = model.ShadowingRejected
			rejected.Reason = reason
			return rejected, nil
		},
	}

	svc := NewShadowing(fake, ownerSession(ownerID), testutil.MakeNoopLogger())
	rejected, err := svc.Reject(context.Background(), request, "Not ready")

	require.NoError(t, err)
	assert.Equal(t, "Not ready", gotReason)
	assert.Equal(t, model.ShadowingRejected, rejected.Status)
}

func TestShadowing_Reject_NotOwner(t *testing.T) {
	fake := &fakeShadowingAPI{}
	svc := NewShadowing(fake, ownerSession(uuid.New()), testutil.MakeNoopLogger())

	_, err := svc.Reject(context.Background(), pendingRequest(uuid.New(), uuid.New()), "whatever")

	assert.ErrorIs(t, err, model.ErrNotPermitted)
	assert.Zero(t, fake.calls)
}

func TestShadowing_CancelRequest(t *testing.T) {
	ownerID := uuid.New()
	shadowerID := uuid.New()
	request := pendingRequest(ownerID, shadowerID)

	fake := &fakeShadowingAPI{
		cancelFn: func(_ context.Context, id uuid.UUID) (model.ShadowingRequest, error) {
			cancelled := request
			cancelled.Status = model.ShadowingCancelled
			return cancelled, nil
		},
	}

	svc := NewShadowing(fake, ownerSession(shadowerID), testutil.MakeNoopLogger())
	cancelled, err := svc.CancelRequest(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, model.ShadowingCancelled, cancelled.Status)

	// The interview owner is not the shadower and cannot retract it.
	owner := NewShadowing(fake, ownerSession(ownerID), testutil.MakeNoopLogger())
	_, err = owner.CancelRequest(context.Background(), request)
	assert.ErrorIs(t, err, model.ErrNotPermitted)
}
