package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
)

// CreateSubscription starts a recurring plan between a student and a teacher.
// The first period is charged immediately through the payment flow.
func (uc *WalletUC) CreateSubscription(ctx context.Context, userID uuid.UUID, req *models.SubscriptionRequest) (*models.Subscription, error) {
	if req.Amount <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	var periodEnd time.Time
	now := time.Now()
	switch req.Plan {
	case models.SubscriptionPlanWeekly:
		periodEnd = now.AddDate(0, 0, 7)
	case models.SubscriptionPlanMonthly:
		periodEnd = now.AddDate(0, 1, 0)
	default:
		return nil, fmt.Errorf("unknown subscription plan: %s", req.Plan)
	}

	subscription := &models.Subscription{
		UserID:    userID,
		TeacherID: req.TeacherID,
		Plan:      req.Plan,
		Amount:    req.Amount,
		AutoRenew: req.AutoRenew,
		StartDate: now,
		EndDate:   periodEnd,
	}
	if err := uc.repo.CreateSubscription(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	// Charge the first period against the subscription itself
	payment, err := uc.ProcessPayment(ctx, userID, &models.PaymentRequest{
		SessionID: subscription.ID,
		TeacherID: req.TeacherID,
		Amount:    req.Amount,
	})
	if err != nil {
		if cancelErr := uc.repo.CancelSubscription(ctx, subscription.ID, userID); cancelErr != nil {
			uc.log.WithError(cancelErr).WithField("subscription_id", subscription.ID).
				Error("failed to cancel subscription after failed first charge")
		}
		return nil, err
	}

	uc.log.WithField("subscription_id", subscription.ID).
		WithField("payment_id", payment.ID).
		Info("subscription created")

	return subscription, nil
}

// CancelSubscription cancels an active subscription owned by the user
func (uc *WalletUC) CancelSubscription(ctx context.Context, subscriptionID, userID uuid.UUID) error {
	return uc.repo.CancelSubscription(ctx, subscriptionID, userID)
}

// ListSubscriptions returns the user's subscriptions, newest first
func (uc *WalletUC) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]models.Subscription, error) {
	return uc.repo.ListSubscriptions(ctx, userID)
}
