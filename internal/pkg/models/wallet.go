package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypePayment    = "payment"
	TransactionTypeRefund     = "refund"
)

// Transaction statuses. Pending is the only non-terminal state.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// Delta directions for wallet mutations
const (
	DeltaAdd      = "add"
	DeltaSubtract = "subtract"
)

// Wallet represents the authoritative balance record for a user.
// Balance is stored in minor currency units and never goes below zero.
type Wallet struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Balance     int64     `json:"balance" db:"balance"`
	Currency    string    `json:"currency" db:"currency"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
}

// Transaction is an audit record of one balance-affecting event
type Transaction struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	SessionID   *uuid.UUID `json:"session_id,omitempty" db:"session_id"`
	TeacherID   *uuid.UUID `json:"teacher_id,omitempty" db:"teacher_id"`
	Type        string     `json:"type" db:"type"`
	Amount      int64      `json:"amount" db:"amount"`
	Status      string     `json:"status" db:"status"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// DepositRequest is the payload for wallet deposits
type DepositRequest struct {
	Amount      int64  `json:"amount" validate:"required"`
	Description string `json:"description,omitempty"`
}

// WithdrawRequest is the payload for wallet withdrawals
type WithdrawRequest struct {
	Amount      int64  `json:"amount" validate:"required"`
	Description string `json:"description,omitempty"`
}

// TransactionListRequest bounds a transaction history read
type TransactionListRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}
