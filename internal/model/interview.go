package model

import (
	"time"

	"github.com/google/uuid"
)

// InterviewStatus enumerates interview lifecycle states.
type InterviewStatus string

const (
	// InterviewScheduled is the initial state assigned on creation.
	InterviewScheduled InterviewStatus = "SCHEDULED"
	// InterviewCompleted marks an interview that took place.
	InterviewCompleted InterviewStatus = "COMPLETED"
	// InterviewCancelled marks a cancelled interview.
	InterviewCancelled InterviewStatus = "CANCELLED"
)

// Interview represents a scheduled interview owned by its interviewer.
// EndTime is always strictly after StartTime.
type Interview struct {
	ID                uuid.UUID          `json:"id"`
	GoogleEventID     string             `json:"googleEventId,omitempty"`
	Interviewer       Profile            `json:"interviewer"`
	CandidateInfo     map[string]any     `json:"candidateInfo,omitempty"`
	TechStack         string             `json:"techStack"`
	StartTime         time.Time          `json:"startTime"`
	EndTime           time.Time          `json:"endTime"`
	Status            InterviewStatus    `json:"status"`
	ShadowingRequests []ShadowingRequest `json:"shadowingRequests,omitempty"`
}

// CreateInterviewRequest is the payload for creating an interview.
// The server assigns the id and defaults status to SCHEDULED.
type CreateInterviewRequest struct {
	InterviewerID uuid.UUID      `json:"interviewerId"`
	CandidateInfo map[string]any `json:"candidateInfo,omitempty"`
	TechStack     string         `json:"techStack"`
	StartTime     time.Time      `json:"startTime"`
	EndTime       time.Time      `json:"endTime"`
}

// UpdateInterviewRequest is the payload for a full-replacement update.
type UpdateInterviewRequest struct {
	CandidateInfo map[string]any  `json:"candidateInfo,omitempty"`
	TechStack     string          `json:"techStack"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       time.Time       `json:"endTime"`
	Status        InterviewStatus `json:"status"`
}
