package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

// WalletUseCase defines the interface for wallet use cases
type WalletUseCase interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	Deposit(ctx context.Context, userID uuid.UUID, req *models.DepositRequest) (*models.Wallet, error)
	Withdraw(ctx context.Context, userID uuid.UUID, req *models.WithdrawRequest) (*models.Wallet, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Transaction, error)

	ProcessPayment(ctx context.Context, userID uuid.UUID, req *models.PaymentRequest) (*models.Payment, error)

	CreateSubscription(ctx context.Context, userID uuid.UUID, req *models.SubscriptionRequest) (*models.Subscription, error)
	CancelSubscription(ctx context.Context, subscriptionID, userID uuid.UUID) error
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]models.Subscription, error)
}
