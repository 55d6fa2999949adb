// Package authz decides which mutations the client may offer for the
// current identity. The subject comes from an unverified token claim,
// so everything here is a UI gate, not a security boundary: the
// backend re-checks each transition. An empty subject denies every
// ownership-gated action.
package authz

import (
	"github.com/gm2dev/interviewhub-client/internal/model"
)

// IsOwner reports whether subject identifies the interview's owner.
func IsOwner(subject string, interview model.Interview) bool {
	return subject != "" && subject == interview.Interviewer.ID.String()
}

// CanEdit gates the edit action on an interview.
func CanEdit(subject string, interview model.Interview) bool {
	return IsOwner(subject, interview)
}

// CanCancelInterview gates the cancel/delete action on an interview.
func CanCancelInterview(subject string, interview model.Interview) bool {
	return IsOwner(subject, interview)
}

// CanRequestShadowing reports whether subject may ask to shadow the
// interview: any identified non-owner, while it is still scheduled.
func CanRequestShadowing(subject string, interview model.Interview) bool {
	return subject != "" &&
		!IsOwner(subject, interview) &&
		interview.Status == model.InterviewScheduled
}

// CanApprove gates approving a shadowing request: the owner of its
// interview, and only while the request is still pending. Terminal
// states offer no transitions.
func CanApprove(subject string, request model.ShadowingRequest) bool {
	if request.Status != model.ShadowingPending || request.Interview == nil {
		return false
	}
	return IsOwner(subject, *request.Interview)
}

// CanReject gates rejecting a shadowing request; same rule as approve.
func CanReject(subject string, request model.ShadowingRequest) bool {
	return CanApprove(subject, request)
}

// CanCancelRequest gates a shadower retracting their own pending
// request. Interview ownership plays no part here.
func CanCancelRequest(subject string, request model.ShadowingRequest) bool {
	return request.Status == model.ShadowingPending &&
		subject != "" &&
		subject == request.Shadower.ID.String()
}
