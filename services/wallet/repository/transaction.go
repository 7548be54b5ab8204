package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
)

// CreateTransaction appends a new transaction record
func (r *PostgresWalletRepo) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	now := time.Now()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now
	if transaction.Status == "" {
		transaction.Status = models.TransactionStatusPending
	}

	query := `
		INSERT INTO transactions (id, user_id, session_id, teacher_id,
			type, amount, status, description, created_at, updated_at
		) VALUES (:id, :user_id, :session_id, :teacher_id,
			:type, :amount, :status, :description, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, transaction)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// UpdateTransactionStatus moves a pending transaction to a terminal status.
// The guard on status makes the transition one-way: once a transaction is
// completed or failed the update matches zero rows.
func (r *PostgresWalletRepo) UpdateTransactionStatus(ctx context.Context, transactionID uuid.UUID, status string) error {
	if status != models.TransactionStatusCompleted && status != models.TransactionStatusFailed {
		return fmt.Errorf("invalid target transaction status: %s", status)
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, status, transactionID, models.TransactionStatusPending)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	// Nothing updated: either the transaction does not exist or it already
	// reached a terminal state.
	var current string
	err = r.db.GetContext(ctx, &current, `SELECT status FROM transactions WHERE id = $1`, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return wallet.ErrNotFound
		}
		return fmt.Errorf("failed to check transaction status: %w", err)
	}

	return wallet.ErrTransactionFinal
}

// GetTransaction returns one transaction by id
func (r *PostgresWalletRepo) GetTransaction(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, session_id, teacher_id, type, amount,
			status, description, created_at, updated_at
		FROM transactions
		WHERE id = $1
	`

	var t models.Transaction
	err := r.db.GetContext(ctx, &t, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wallet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &t, nil
}

// ListTransactions returns a user's transactions, newest first
func (r *PostgresWalletRepo) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, session_id, teacher_id, type, amount,
			status, description, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	transactions := []models.Transaction{}
	err := r.db.SelectContext(ctx, &transactions, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}
