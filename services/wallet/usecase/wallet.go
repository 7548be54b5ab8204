package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/constants"
	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
)

const balanceCacheTTL = 30 * time.Second

// WalletUC implements the wallet.WalletUseCase interface
type WalletUC struct {
	cfg          *models.Config
	repo         wallet.WalletRepo
	settlementGW wallet.SettlementGW
	eventsGW     wallet.PaymentEventsGW
	cache        wallet.Cache
	log          *logger.AppLogger
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(
	cfg *models.Config,
	repo wallet.WalletRepo,
	settlementGW wallet.SettlementGW,
	eventsGW wallet.PaymentEventsGW,
	cache wallet.Cache,
	appLogger *logger.AppLogger,
) wallet.WalletUseCase {
	return &WalletUC{
		cfg:          cfg,
		repo:         repo,
		settlementGW: settlementGW,
		eventsGW:     eventsGW,
		cache:        cache,
		log:          appLogger,
	}
}

// GetBalance returns the wallet for a user, serving hot reads from cache
func (uc *WalletUC) GetBalance(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	cacheKey := fmt.Sprintf(constants.KeyWalletBalance, userID)

	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var w models.Wallet
		if err := json.Unmarshal([]byte(cached), &w); err == nil {
			return &w, nil
		}
	}

	w, err := uc.repo.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Cache writes are best effort
	if data, err := json.Marshal(w); err == nil {
		_ = uc.cache.Set(ctx, cacheKey, data, balanceCacheTTL)
	}

	return w, nil
}

// Deposit credits a user's wallet and records the transaction
func (uc *WalletUC) Deposit(ctx context.Context, userID uuid.UUID, req *models.DepositRequest) (*models.Wallet, error) {
	if req.Amount < uc.cfg.Pricing.MinDepositAmount {
		return nil, wallet.ErrInvalidAmount
	}

	description := req.Description
	if description == "" {
		description = "wallet deposit"
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        models.TransactionTypeDeposit,
		Amount:      req.Amount,
		Description: description,
	}
	if err := uc.repo.CreateTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}

	w, err := uc.repo.ApplyDelta(ctx, userID, req.Amount, models.DeltaAdd)
	if err != nil {
		uc.markFailed(ctx, transaction.ID)
		return nil, fmt.Errorf("failed to apply deposit: %w", err)
	}

	if err := uc.repo.UpdateTransactionStatus(ctx, transaction.ID, models.TransactionStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to complete deposit transaction: %w", err)
	}

	uc.invalidateBalance(ctx, userID)

	if err := uc.eventsGW.PublishWalletDeposited(userID, req.Amount); err != nil {
		uc.log.WithError(err).Warn("failed to publish deposit event")
	}

	return w, nil
}

// Withdraw debits a user's wallet and records the transaction
func (uc *WalletUC) Withdraw(ctx context.Context, userID uuid.UUID, req *models.WithdrawRequest) (*models.Wallet, error) {
	if req.Amount < uc.cfg.Pricing.MinWithdrawAmount {
		return nil, wallet.ErrInvalidAmount
	}

	description := req.Description
	if description == "" {
		description = "wallet withdrawal"
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Type:        models.TransactionTypeWithdrawal,
		Amount:      req.Amount,
		Description: description,
	}
	if err := uc.repo.CreateTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to record withdrawal: %w", err)
	}

	w, err := uc.repo.ApplyDelta(ctx, userID, req.Amount, models.DeltaSubtract)
	if err != nil {
		uc.markFailed(ctx, transaction.ID)
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			return nil, wallet.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("failed to apply withdrawal: %w", err)
	}

	if err := uc.repo.UpdateTransactionStatus(ctx, transaction.ID, models.TransactionStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to complete withdrawal transaction: %w", err)
	}

	uc.invalidateBalance(ctx, userID)

	if err := uc.eventsGW.PublishWalletWithdrawn(userID, req.Amount); err != nil {
		uc.log.WithError(err).Warn("failed to publish withdrawal event")
	}

	return w, nil
}

// ListTransactions returns a user's transaction history, newest first
func (uc *WalletUC) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	return uc.repo.ListTransactions(ctx, userID, limit, offset)
}

// markFailed terminalizes a transaction after a failed mutation. The original
// failure is what the caller sees; a failure here only gets logged.
func (uc *WalletUC) markFailed(ctx context.Context, transactionID uuid.UUID) {
	if err := uc.repo.UpdateTransactionStatus(ctx, transactionID, models.TransactionStatusFailed); err != nil {
		uc.log.WithError(err).WithField("transaction_id", transactionID).
			Error("failed to mark transaction failed")
	}
}

func (uc *WalletUC) invalidateBalance(ctx context.Context, userID uuid.UUID) {
	cacheKey := fmt.Sprintf(constants.KeyWalletBalance, userID)
	if err := uc.cache.Delete(ctx, cacheKey); err != nil {
		uc.log.WithError(err).Warn("failed to invalidate balance cache")
	}
}
