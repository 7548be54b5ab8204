package models

import (
	"time"

	"github.com/google/uuid"
)

// Session statuses
const (
	SessionStatusScheduled = "scheduled"
	SessionStatusConfirmed = "confirmed"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// Session represents a scheduled tutoring session
type Session struct {
	ID          uuid.UUID `json:"id" db:"id"`
	StudentID   uuid.UUID `json:"student_id" db:"student_id"`
	TeacherID   uuid.UUID `json:"teacher_id" db:"teacher_id"`
	Subject     string    `json:"subject" db:"subject"`
	StartTime   time.Time `json:"start_time" db:"start_time"`
	DurationMin int       `json:"duration_min" db:"duration_min"`
	Status      string    `json:"status" db:"status"`
	Paid        bool      `json:"paid" db:"paid"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// SessionRequest is the payload to book a session
type SessionRequest struct {
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
	Subject     string    `json:"subject" validate:"required"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	DurationMin int       `json:"duration_min" validate:"required"`
}

// SessionStatusRequest is the payload to move a session through its lifecycle
type SessionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
