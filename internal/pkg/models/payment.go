package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment represents one payment attempt from a student to a teacher
type Payment struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	SessionID    uuid.UUID  `json:"session_id" db:"session_id"`
	TeacherID    uuid.UUID  `json:"teacher_id" db:"teacher_id"`
	Amount       int64      `json:"amount" db:"amount"`
	TeacherShare int64      `json:"teacher_share" db:"teacher_share"`
	PlatformFee  int64      `json:"platform_fee" db:"platform_fee"`
	Currency     string     `json:"currency" db:"currency"`
	Status       string     `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// PaymentRequest is the payload to process a session payment
type PaymentRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	Amount    int64     `json:"amount" validate:"required"`
}

// PaymentEvent is published after a payment reaches a terminal state
type PaymentEvent struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	UserID        uuid.UUID `json:"user_id"`
	SessionID     uuid.UUID `json:"session_id"`
	TeacherID     uuid.UUID `json:"teacher_id"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}
