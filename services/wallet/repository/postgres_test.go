package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
)

func setupWalletRepoTest(t *testing.T) (*PostgresWalletRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &PostgresWalletRepo{
		cfg: &models.Config{
			Pricing: models.PricingConfig{Currency: "IDR"},
		},
		db: sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func walletRows(userID uuid.UUID, balance int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "balance", "currency", "last_updated"}).
		AddRow(userID, balance, "IDR", time.Now())
}

func TestGetWallet(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("^SELECT (.+) FROM wallets WHERE user_id").
			WithArgs(userID).
			WillReturnRows(walletRows(userID, 10000))

		w, err := repo.GetWallet(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, w.UserID)
		assert.Equal(t, int64(10000), w.Balance)
		assert.Equal(t, "IDR", w.Currency)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("^SELECT (.+) FROM wallets WHERE user_id").
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		w, err := repo.GetWallet(context.Background(), userID)
		assert.ErrorIs(t, err, wallet.ErrNotFound)
		assert.Nil(t, w)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDeltaAdd(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnRows(walletRows(userID, 100))
	mock.ExpectQuery("^UPDATE wallets SET balance").
		WithArgs(int64(150), userID).
		WillReturnRows(walletRows(userID, 150))
	mock.ExpectCommit()

	w, err := repo.ApplyDelta(context.Background(), userID, 50, models.DeltaAdd)
	require.NoError(t, err)
	assert.Equal(t, int64(150), w.Balance)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDeltaSubtract(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnRows(walletRows(userID, 100))
	mock.ExpectQuery("^UPDATE wallets SET balance").
		WithArgs(int64(40), userID).
		WillReturnRows(walletRows(userID, 40))
	mock.ExpectCommit()

	w, err := repo.ApplyDelta(context.Background(), userID, 60, models.DeltaSubtract)
	require.NoError(t, err)
	assert.Equal(t, int64(40), w.Balance)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDeltaInsufficientFunds(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	// Balance 100, subtract 150: the operation aborts with no balance write
	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnRows(walletRows(userID, 100))
	mock.ExpectRollback()

	w, err := repo.ApplyDelta(context.Background(), userID, 150, models.DeltaSubtract)
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
	assert.Nil(t, w)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDeltaCreatesWalletOnFirstDeposit(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("^INSERT INTO wallets").
		WithArgs(userID, "IDR").
		WillReturnRows(walletRows(userID, 0))
	mock.ExpectQuery("^UPDATE wallets SET balance").
		WithArgs(int64(500), userID).
		WillReturnRows(walletRows(userID, 500))
	mock.ExpectCommit()

	w, err := repo.ApplyDelta(context.Background(), userID, 500, models.DeltaAdd)
	require.NoError(t, err)
	assert.Equal(t, int64(500), w.Balance)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDeltaSubtractMissingWallet(t *testing.T) {
	repo, mock, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM wallets WHERE user_id (.+) FOR UPDATE").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	w, err := repo.ApplyDelta(context.Background(), userID, 100, models.DeltaSubtract)
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
	assert.Nil(t, w)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDeltaInvalidAmount(t *testing.T) {
	repo, _, cleanup := setupWalletRepoTest(t)
	defer cleanup()

	_, err := repo.ApplyDelta(context.Background(), uuid.New(), 0, models.DeltaAdd)
	assert.ErrorIs(t, err, wallet.ErrInvalidAmount)

	_, err = repo.ApplyDelta(context.Background(), uuid.New(), -10, models.DeltaSubtract)
	assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
}
