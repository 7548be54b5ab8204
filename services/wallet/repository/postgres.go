package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
)

// PostgresWalletRepo implements the wallet.WalletRepo interface
type PostgresWalletRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(cfg *models.Config, db *sqlx.DB) wallet.WalletRepo {
	return &PostgresWalletRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetWallet retrieves the wallet for a user
func (r *PostgresWalletRepo) GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	query := `
		SELECT user_id, balance, currency, last_updated
		FROM wallets
		WHERE user_id = $1
	`

	var w models.Wallet
	err := r.db.GetContext(ctx, &w, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, wallet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return &w, nil
}

// ApplyDelta atomically mutates a wallet balance. The wallet row is locked
// for the duration of the transaction, so concurrent deltas against the same
// wallet serialize and no update is ever lost.
func (r *PostgresWalletRepo) ApplyDelta(ctx context.Context, userID uuid.UUID, amount int64, direction string) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	delta := amount
	switch direction {
	case models.DeltaAdd:
	case models.DeltaSubtract:
		delta = -amount
	default:
		return nil, fmt.Errorf("unknown delta direction: %s", direction)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var w models.Wallet
	err = tx.QueryRowxContext(ctx, `
		SELECT user_id, balance, currency, last_updated
		FROM wallets
		WHERE user_id = $1
		FOR UPDATE
	`, userID).StructScan(&w)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to lock wallet: %w", err)
		}
		// Wallet is created implicitly on the first deposit. A subtract
		// against a missing wallet is a subtract against zero.
		if direction == models.DeltaSubtract {
			return nil, wallet.ErrInsufficientFunds
		}
		err = tx.QueryRowxContext(ctx, `
			INSERT INTO wallets (user_id, balance, currency, last_updated)
			VALUES ($1, 0, $2, NOW())
			RETURNING user_id, balance, currency, last_updated
		`, userID, r.cfg.Pricing.Currency).StructScan(&w)
		if err != nil {
			return nil, fmt.Errorf("failed to create wallet: %w", err)
		}
	}

	newBalance := w.Balance + delta
	if newBalance < 0 {
		return nil, wallet.ErrInsufficientFunds
	}

	err = tx.QueryRowxContext(ctx, `
		UPDATE wallets
		SET balance = $1, last_updated = NOW()
		WHERE user_id = $2
		RETURNING user_id, balance, currency, last_updated
	`, newBalance, userID).StructScan(&w)
	if err != nil {
		return nil, fmt.Errorf("failed to update wallet balance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit wallet update: %w", err)
	}

	return &w, nil
}
