package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

// WalletRepo defines the interface for wallet repository operations
type WalletRepo interface {
	// GetWallet returns the wallet for a user, or ErrNotFound
	GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)

	// ApplyDelta atomically mutates a wallet balance. The read-modify-write
	// runs inside a single database transaction holding a row lock, so
	// concurrent deltas against the same wallet serialize. A subtract that
	// would drive the balance negative fails with ErrInsufficientFunds and
	// leaves the wallet untouched. The wallet is created implicitly on the
	// first add.
	ApplyDelta(ctx context.Context, userID uuid.UUID, amount int64, direction string) (*models.Wallet, error)

	// CreateTransaction appends a new transaction record
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error

	// UpdateTransactionStatus moves a pending transaction to a terminal status.
	// Terminal transactions are never modified; attempting to do so returns
	// ErrTransactionFinal.
	UpdateTransactionStatus(ctx context.Context, transactionID uuid.UUID, status string) error

	// GetTransaction returns one transaction by id, or ErrNotFound
	GetTransaction(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)

	// ListTransactions returns a user's transactions, newest first
	ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Transaction, error)

	// CreatePayment creates a new payment record
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// UpdatePaymentStatus updates the status of a payment
	UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, status string) error

	// CreditTeacherEarnings atomically increments a teacher's earnings accumulator
	CreditTeacherEarnings(ctx context.Context, teacherID uuid.UUID, amount int64) error

	// CreateSubscription creates a new subscription record
	CreateSubscription(ctx context.Context, subscription *models.Subscription) error

	// CancelSubscription cancels an active subscription owned by the user.
	// Cancelling a missing or already-terminal subscription returns ErrNotFound.
	CancelSubscription(ctx context.Context, subscriptionID, userID uuid.UUID) error

	// ListSubscriptions returns a user's subscriptions, newest first
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]models.Subscription, error)
}
