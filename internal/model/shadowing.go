package model

import "github.com/google/uuid"

// ShadowingRequestStatus enumerates shadowing request states. The
// machine is one-way: PENDING may move to any of the other three, all
// of which are terminal.
type ShadowingRequestStatus string

const (
	// ShadowingPending is the initial state of every request.
	ShadowingPending ShadowingRequestStatus = "PENDING"
	// ShadowingApproved means the interview owner accepted the request.
	ShadowingApproved ShadowingRequestStatus = "APPROVED"
	// ShadowingRejected means the interview owner declined, with a reason.
	ShadowingRejected ShadowingRequestStatus = "REJECTED"
	// ShadowingCancelled means the shadower retracted the request.
	ShadowingCancelled ShadowingRequestStatus = "CANCELLED"
)

// Terminal reports whether no further transition is defined from s.
func (s ShadowingRequestStatus) Terminal() bool {
	return s == ShadowingApproved || s == ShadowingRejected || s == ShadowingCancelled
}

// ShadowingRequest represents one interviewer asking to observe
// another's interview. Interview is a back-reference and may be absent
// in embedded responses. Reason is set exactly when status is REJECTED.
type ShadowingRequest struct {
	ID        uuid.UUID              `json:"id"`
	Interview *Interview             `json:"interview,omitempty"`
	Shadower  Profile                `json:"shadower"`
	Status    ShadowingRequestStatus `json:"status"`
	Reason    string                 `json:"reason,omitempty"`
}
