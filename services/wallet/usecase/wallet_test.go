package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
)

func TestGetBalance_CacheHit(t *testing.T) {
	uc, m := setupWalletUC(t)

	userID := uuid.New()
	cached, _ := json.Marshal(&models.Wallet{UserID: userID, Balance: 7500, Currency: "IDR"})

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(string(cached), nil)

	w, err := uc.GetBalance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), w.Balance)
}

func TestGetBalance_CacheMiss(t *testing.T) {
	uc, m := setupWalletUC(t)

	userID := uuid.New()

	m.cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errors.New("redis: nil"))
	m.repo.EXPECT().GetWallet(gomock.Any(), userID).
		Return(&models.Wallet{UserID: userID, Balance: 12000, Currency: "IDR"}, nil)
	m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	w, err := uc.GetBalance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), w.Balance)
}

func TestDeposit_Success(t *testing.T) {
	uc, m := setupWalletUC(t)

	userID := uuid.New()

	m.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, transaction *models.Transaction) error {
			transaction.ID = uuid.New()
			assert.Equal(t, models.TransactionTypeDeposit, transaction.Type)
			return nil
		})
	m.repo.EXPECT().
		ApplyDelta(gomock.Any(), userID, int64(25000), models.DeltaAdd).
		Return(&models.Wallet{UserID: userID, Balance: 25000}, nil)
	m.repo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), gomock.Any(), models.TransactionStatusCompleted).
		Return(nil)
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().PublishWalletDeposited(userID, int64(25000)).Return(nil)

	w, err := uc.Deposit(context.Background(), userID, &models.DepositRequest{Amount: 25000})
	require.NoError(t, err)
	assert.Equal(t, int64(25000), w.Balance)
}

func TestDeposit_BelowMinimum(t *testing.T) {
	uc, _ := setupWalletUC(t)

	_, err := uc.Deposit(context.Background(), uuid.New(), &models.DepositRequest{Amount: 500})
	assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
}

func TestWithdraw_Success(t *testing.T) {
	uc, m := setupWalletUC(t)

	userID := uuid.New()

	m.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, transaction *models.Transaction) error {
			transaction.ID = uuid.New()
			assert.Equal(t, models.TransactionTypeWithdrawal, transaction.Type)
			return nil
		})
	m.repo.EXPECT().
		ApplyDelta(gomock.Any(), userID, int64(10000), models.DeltaSubtract).
		Return(&models.Wallet{UserID: userID, Balance: 5000}, nil)
	m.repo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), gomock.Any(), models.TransactionStatusCompleted).
		Return(nil)
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().PublishWalletWithdrawn(userID, int64(10000)).Return(nil)

	w, err := uc.Withdraw(context.Background(), userID, &models.WithdrawRequest{Amount: 10000})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), w.Balance)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	uc, m := setupWalletUC(t)

	userID := uuid.New()

	m.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, transaction *models.Transaction) error {
			transaction.ID = uuid.New()
			return nil
		})
	m.repo.EXPECT().
		ApplyDelta(gomock.Any(), userID, int64(10000), models.DeltaSubtract).
		Return(nil, wallet.ErrInsufficientFunds)
	m.repo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), gomock.Any(), models.TransactionStatusFailed).
		Return(nil)

	_, err := uc.Withdraw(context.Background(), userID, &models.WithdrawRequest{Amount: 10000})
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
}

func TestListTransactions_ClampsLimit(t *testing.T) {
	uc, m := setupWalletUC(t)

	userID := uuid.New()

	m.repo.EXPECT().
		ListTransactions(gomock.Any(), userID, 100, 0).
		Return([]models.Transaction{}, nil)

	_, err := uc.ListTransactions(context.Background(), userID, 500, -3)
	require.NoError(t, err)
}
