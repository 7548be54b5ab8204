package schedule

import "errors"

// Sentinel errors for the schedule service
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidTransition = errors.New("invalid session status transition")
	ErrNotParticipant    = errors.New("user is not a session participant")
	ErrPastDue           = errors.New("assignment is past due")
)
