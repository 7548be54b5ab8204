package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/constants"
	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/internal/pkg/nsq"
	"github.com/bimbelin/bimbelin/internal/pkg/retry"
	"github.com/bimbelin/bimbelin/services/wallet"
)

const publishTimeout = 10 * time.Second

// PaymentEventsGateway publishes wallet and payment events over NSQ.
// Publishes are retried with backoff; consumers are expected to handle
// at-least-once delivery.
type PaymentEventsGateway struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// WalletEvent describes a deposit or withdrawal for downstream consumers
type WalletEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPaymentEventsGateway creates an event gateway backed by an NSQ producer
func NewPaymentEventsGateway(producer *nsq.Producer, appLogger *logger.AppLogger) wallet.PaymentEventsGW {
	return &PaymentEventsGateway{
		producer: producer,
		retrier:  retry.New(retry.DefaultConfig(), appLogger),
	}
}

func (g *PaymentEventsGateway) publish(topic string, message interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(topic, message)
	})
}

// PublishPaymentCompleted announces a settled payment
func (g *PaymentEventsGateway) PublishPaymentCompleted(event *models.PaymentEvent) error {
	return g.publish(constants.TopicPaymentCompleted, event)
}

// PublishPaymentFailed announces a payment whose settlement failed
func (g *PaymentEventsGateway) PublishPaymentFailed(event *models.PaymentEvent) error {
	return g.publish(constants.TopicPaymentFailed, event)
}

// PublishWalletDeposited announces a completed deposit
func (g *PaymentEventsGateway) PublishWalletDeposited(userID uuid.UUID, amount int64) error {
	return g.publish(constants.TopicWalletDeposited, WalletEvent{
		UserID:    userID,
		Amount:    amount,
		Timestamp: time.Now(),
	})
}

// PublishWalletWithdrawn announces a completed withdrawal
func (g *PaymentEventsGateway) PublishWalletWithdrawn(userID uuid.UUID, amount int64) error {
	return g.publish(constants.TopicWalletWithdrawn, WalletEvent{
		UserID:    userID,
		Amount:    amount,
		Timestamp: time.Now(),
	})
}
