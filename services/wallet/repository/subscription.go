package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
)

// CreateSubscription creates a new subscription record
func (r *PostgresWalletRepo) CreateSubscription(ctx context.Context, subscription *models.Subscription) error {
	if subscription.ID == uuid.Nil {
		subscription.ID = uuid.New()
	}
	subscription.CreatedAt = time.Now()
	if subscription.Status == "" {
		subscription.Status = models.SubscriptionStatusActive
	}

	query := `
		INSERT INTO subscriptions (id, user_id, teacher_id, plan, amount,
			status, auto_renew, start_date, end_date, created_at
		) VALUES (:id, :user_id, :teacher_id, :plan, :amount,
			:status, :auto_renew, :start_date, :end_date, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, subscription)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// CancelSubscription cancels an active subscription owned by the user.
// The status guard makes cancellation one-way.
func (r *PostgresWalletRepo) CancelSubscription(ctx context.Context, subscriptionID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET status = $1, auto_renew = FALSE
		WHERE id = $2 AND user_id = $3 AND status = $4
	`, models.SubscriptionStatusCancelled, subscriptionID, userID, models.SubscriptionStatusActive)
	if err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return wallet.ErrNotFound
	}

	return nil
}

// ListSubscriptions returns a user's subscriptions, newest first
func (r *PostgresWalletRepo) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]models.Subscription, error) {
	query := `
		SELECT id, user_id, teacher_id, plan, amount, status,
			auto_renew, start_date, end_date, created_at
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	subscriptions := []models.Subscription{}
	err := r.db.SelectContext(ctx, &subscriptions, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return subscriptions, nil
}
