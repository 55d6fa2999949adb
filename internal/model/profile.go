package model

import "github.com/google/uuid"

// Profile represents any user known to the backend, interviewer or
// shadower. Profiles are reference data: the client never constructs
// one except as an id when issuing a create request.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role,omitempty"`
	CalendarEmail string    `json:"calendarEmail,omitempty"`
}
