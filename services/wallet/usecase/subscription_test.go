package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
)

func TestCreateSubscription_Success(t *testing.T) {
	uc, m := setupWalletUC(t)

	userID := uuid.New()
	teacherID := uuid.New()
	req := &models.SubscriptionRequest{
		TeacherID: teacherID,
		Plan:      models.SubscriptionPlanMonthly,
		Amount:    200000,
		AutoRenew: true,
	}

	m.repo.EXPECT().
		CreateSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, subscription *models.Subscription) error {
			subscription.ID = uuid.New()
			subscription.Status = models.SubscriptionStatusActive
			assert.True(t, subscription.EndDate.After(subscription.StartDate))
			return nil
		})

	// First period charged through the payment flow
	m.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, transaction *models.Transaction) error {
			transaction.ID = uuid.New()
			return nil
		})
	m.repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, payment *models.Payment) error {
			payment.ID = uuid.New()
			assert.Equal(t, int64(160000), payment.TeacherShare)
			return nil
		})
	m.repo.EXPECT().
		ApplyDelta(gomock.Any(), userID, int64(200000), models.DeltaSubtract).
		Return(&models.Wallet{UserID: userID, Balance: 0}, nil)
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	m.settlement.EXPECT().
		Settle(gomock.Any(), gomock.Any(), int64(200000), "IDR").
		Return(nil)
	m.repo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), gomock.Any(), models.TransactionStatusCompleted).
		Return(nil)
	m.repo.EXPECT().
		UpdatePaymentStatus(gomock.Any(), gomock.Any(), models.PaymentStatusCompleted).
		Return(nil)
	m.repo.EXPECT().
		CreditTeacherEarnings(gomock.Any(), teacherID, int64(160000)).
		Return(nil)
	m.events.EXPECT().PublishPaymentCompleted(gomock.Any()).Return(nil)

	subscription, err := uc.CreateSubscription(context.Background(), userID, req)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionStatusActive, subscription.Status)
	assert.Equal(t, models.SubscriptionPlanMonthly, subscription.Plan)
}

func TestCreateSubscription_FirstChargeFails(t *testing.T) {
	uc, m := setupWalletUC(t)

	userID := uuid.New()
	req := &models.SubscriptionRequest{
		TeacherID: uuid.New(),
		Plan:      models.SubscriptionPlanWeekly,
		Amount:    50000,
	}

	var subscriptionID uuid.UUID
	m.repo.EXPECT().
		CreateSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, subscription *models.Subscription) error {
			subscription.ID = uuid.New()
			subscriptionID = subscription.ID
			return nil
		})
	m.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, transaction *models.Transaction) error {
			transaction.ID = uuid.New()
			return nil
		})
	m.repo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, payment *models.Payment) error {
			payment.ID = uuid.New()
			return nil
		})
	m.repo.EXPECT().
		ApplyDelta(gomock.Any(), userID, int64(50000), models.DeltaSubtract).
		Return(nil, wallet.ErrInsufficientFunds)
	m.repo.EXPECT().
		UpdateTransactionStatus(gomock.Any(), gomock.Any(), models.TransactionStatusFailed).
		Return(nil)
	m.repo.EXPECT().
		UpdatePaymentStatus(gomock.Any(), gomock.Any(), models.PaymentStatusFailed).
		Return(nil)

	// Subscription gets rolled back when the first charge fails
	m.repo.EXPECT().
		CancelSubscription(gomock.Any(), gomock.Any(), userID).
		DoAndReturn(func(ctx context.Context, id, uid uuid.UUID) error {
			assert.Equal(t, subscriptionID, id)
			return nil
		})

	subscription, err := uc.CreateSubscription(context.Background(), userID, req)
	assert.ErrorIs(t, err, wallet.ErrInsufficientFunds)
	assert.Nil(t, subscription)
}

func TestCreateSubscription_UnknownPlan(t *testing.T) {
	uc, _ := setupWalletUC(t)

	_, err := uc.CreateSubscription(context.Background(), uuid.New(), &models.SubscriptionRequest{
		TeacherID: uuid.New(),
		Plan:      "daily",
		Amount:    1000,
	})
	assert.Error(t, err)
}
