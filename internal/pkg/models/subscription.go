package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription plans
const (
	SubscriptionPlanWeekly  = "weekly"
	SubscriptionPlanMonthly = "monthly"
)

// Subscription statuses
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusExpired   = "expired"
)

// Subscription is a recurring billing agreement between a student and a teacher
type Subscription struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	TeacherID uuid.UUID `json:"teacher_id" db:"teacher_id"`
	Plan      string    `json:"plan" db:"plan"`
	Amount    int64     `json:"amount" db:"amount"`
	Status    string    `json:"status" db:"status"`
	AutoRenew bool      `json:"auto_renew" db:"auto_renew"`
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SubscriptionRequest is the payload to create a subscription
type SubscriptionRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	Plan      string    `json:"plan" validate:"required"`
	Amount    int64     `json:"amount" validate:"required"`
	AutoRenew bool      `json:"auto_renew"`
}
