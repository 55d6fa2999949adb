package model

import "errors"

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthenticated indicates the session is missing or expired.
	ErrUnauthenticated = errors.New("session is not authenticated")
	// ErrNotPermitted indicates the local policy denies the action.
	ErrNotPermitted = errors.New("action not permitted")
	// ErrBlankReason indicates a rejection reason that is empty after trimming.
	ErrBlankReason = errors.New("rejection reason is blank")
	// ErrBusy indicates a submission for the same action is still in flight.
	ErrBusy = errors.New("submission already in flight")
)
