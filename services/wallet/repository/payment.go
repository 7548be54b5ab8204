package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

// CreatePayment creates a new payment record
func (r *PostgresWalletRepo) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.CreatedAt = time.Now()
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	if payment.Currency == "" {
		payment.Currency = r.cfg.Pricing.Currency
	}

	query := `
		INSERT INTO payments (id, user_id, session_id, teacher_id, amount,
			teacher_share, platform_fee, currency, status, created_at
		) VALUES (:id, :user_id, :session_id, :teacher_id, :amount,
			:teacher_share, :platform_fee, :currency, :status, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, payment)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// UpdatePaymentStatus updates the status of a payment
func (r *PostgresWalletRepo) UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, status string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE payments
		SET status = $1,
		    completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END
		WHERE id = $2
	`, status, paymentID)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("payment not found")
	}

	return nil
}

// CreditTeacherEarnings atomically increments a teacher's earnings accumulator
func (r *PostgresWalletRepo) CreditTeacherEarnings(ctx context.Context, teacherID uuid.UUID, amount int64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE teachers
		SET earnings = earnings + $1
		WHERE user_id = $2
	`, amount, teacherID)
	if err != nil {
		return fmt.Errorf("failed to credit teacher earnings: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("teacher not found")
	}

	return nil
}
