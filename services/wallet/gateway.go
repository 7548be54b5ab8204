package wallet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

// SettlementGW is the external settlement gateway. It is the sole point
// where money actually moves; any error (decline, network, timeout) means
// the settlement did not happen.
type SettlementGW interface {
	Settle(ctx context.Context, paymentID uuid.UUID, amount int64, currency string) error
}

// PaymentEventsGW publishes wallet and payment events for downstream services
type PaymentEventsGW interface {
	PublishPaymentCompleted(event *models.PaymentEvent) error
	PublishPaymentFailed(event *models.PaymentEvent) error
	PublishWalletDeposited(userID uuid.UUID, amount int64) error
	PublishWalletWithdrawn(userID uuid.UUID, amount int64) error
}

// Cache is a best-effort key-value cache for hot wallet reads
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
