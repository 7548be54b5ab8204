package wallet

import "errors"

// Domain errors surfaced by the wallet service. These are expected,
// recoverable conditions; callers map them to user-facing responses.
var (
	// ErrInsufficientFunds is returned when a subtract would drive the balance negative
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrPaymentFailed is returned when the settlement step declines or times out
	ErrPaymentFailed = errors.New("payment failed")

	// ErrNotFound is returned when a wallet, transaction or subscription does not exist
	ErrNotFound = errors.New("not found")

	// ErrTransactionFinal is returned when a status transition targets a transaction
	// that already reached a terminal state
	ErrTransactionFinal = errors.New("transaction already finalized")

	// ErrInvalidAmount is returned when an amount fails boundary validation
	ErrInvalidAmount = errors.New("invalid amount")
)
