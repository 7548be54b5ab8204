package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
)

// ProcessPayment charges a student's wallet for a tutoring session and splits
// the amount between the teacher and the platform. The wallet debit happens
// before the settlement call; if settlement fails the debit is compensated
// with a refund so the student ends up whole.
func (uc *WalletUC) ProcessPayment(ctx context.Context, userID uuid.UUID, req *models.PaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, wallet.ErrInvalidAmount
	}

	teacherShare := int64(float64(req.Amount) * uc.cfg.Pricing.TeacherShare)
	platformFee := req.Amount - teacherShare

	sessionID := req.SessionID
	teacherID := req.TeacherID

	transaction := &models.Transaction{
		UserID:      userID,
		SessionID:   &sessionID,
		TeacherID:   &teacherID,
		Type:        models.TransactionTypePayment,
		Amount:      req.Amount,
		Description: fmt.Sprintf("payment for session %s", req.SessionID),
	}
	if err := uc.repo.CreateTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to record payment transaction: %w", err)
	}

	payment := &models.Payment{
		UserID:       userID,
		SessionID:    req.SessionID,
		TeacherID:    req.TeacherID,
		Amount:       req.Amount,
		TeacherShare: teacherShare,
		PlatformFee:  platformFee,
		Currency:     uc.cfg.Pricing.Currency,
	}
	if err := uc.repo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	// Debit first so settlement never runs against funds the student lacks
	if _, err := uc.repo.ApplyDelta(ctx, userID, req.Amount, models.DeltaSubtract); err != nil {
		uc.failPayment(ctx, payment, transaction.ID)
		if errors.Is(err, wallet.ErrInsufficientFunds) {
			return nil, wallet.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("failed to debit wallet: %w", err)
	}
	uc.invalidateBalance(ctx, userID)

	settleCtx, cancel := context.WithTimeout(ctx,
		time.Duration(uc.cfg.Settlement.TimeoutSeconds)*time.Second)
	defer cancel()

	if err := uc.settlementGW.Settle(settleCtx, payment.ID, req.Amount, payment.Currency); err != nil {
		uc.log.WithFields(logrus.Fields{
			"payment_id": payment.ID,
			"user_id":    userID,
			"amount":     req.Amount,
		}).WithError(err).Error("settlement failed, refunding wallet debit")

		uc.refundDebit(ctx, userID, payment, req.Amount)
		uc.failPayment(ctx, payment, transaction.ID)
		uc.publishPaymentEvent(payment, transaction.ID, models.PaymentStatusFailed)
		return nil, wallet.ErrPaymentFailed
	}

	if err := uc.repo.UpdateTransactionStatus(ctx, transaction.ID, models.TransactionStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to complete payment transaction: %w", err)
	}
	if err := uc.repo.UpdatePaymentStatus(ctx, payment.ID, models.PaymentStatusCompleted); err != nil {
		return nil, fmt.Errorf("failed to complete payment: %w", err)
	}

	if err := uc.repo.CreditTeacherEarnings(ctx, req.TeacherID, teacherShare); err != nil {
		// The student paid and settlement cleared; the earnings credit must
		// not undo that. Log it for reconciliation instead.
		uc.log.WithFields(logrus.Fields{
			"payment_id": payment.ID,
			"teacher_id": req.TeacherID,
			"amount":     teacherShare,
		}).WithError(err).Error("failed to credit teacher earnings")
	}

	payment.Status = models.PaymentStatusCompleted
	now := time.Now()
	payment.CompletedAt = &now

	uc.publishPaymentEvent(payment, transaction.ID, models.PaymentStatusCompleted)

	return payment, nil
}

// refundDebit restores funds taken by a payment whose settlement failed.
// The refund is recorded as its own completed transaction.
func (uc *WalletUC) refundDebit(ctx context.Context, userID uuid.UUID, payment *models.Payment, amount int64) {
	if _, err := uc.repo.ApplyDelta(ctx, userID, amount, models.DeltaAdd); err != nil {
		uc.log.WithFields(logrus.Fields{
			"payment_id": payment.ID,
			"user_id":    userID,
			"amount":     amount,
		}).WithError(err).Error("failed to refund wallet debit")
		return
	}
	uc.invalidateBalance(ctx, userID)

	sessionID := payment.SessionID
	teacherID := payment.TeacherID
	refund := &models.Transaction{
		UserID:      userID,
		SessionID:   &sessionID,
		TeacherID:   &teacherID,
		Type:        models.TransactionTypeRefund,
		Amount:      amount,
		Description: fmt.Sprintf("refund for failed payment %s", payment.ID),
	}
	if err := uc.repo.CreateTransaction(ctx, refund); err != nil {
		uc.log.WithError(err).Error("failed to record refund transaction")
		return
	}
	if err := uc.repo.UpdateTransactionStatus(ctx, refund.ID, models.TransactionStatusCompleted); err != nil {
		uc.log.WithError(err).Error("failed to complete refund transaction")
	}
}

func (uc *WalletUC) failPayment(ctx context.Context, payment *models.Payment, transactionID uuid.UUID) {
	uc.markFailed(ctx, transactionID)
	if err := uc.repo.UpdatePaymentStatus(ctx, payment.ID, models.PaymentStatusFailed); err != nil {
		uc.log.WithError(err).WithField("payment_id", payment.ID).
			Error("failed to mark payment failed")
	}
	payment.Status = models.PaymentStatusFailed
}

func (uc *WalletUC) publishPaymentEvent(payment *models.Payment, transactionID uuid.UUID, status string) {
	event := &models.PaymentEvent{
		PaymentID:     payment.ID,
		TransactionID: transactionID,
		UserID:        payment.UserID,
		SessionID:     payment.SessionID,
		TeacherID:     payment.TeacherID,
		Amount:        payment.Amount,
		Status:        status,
		Timestamp:     time.Now(),
	}

	var err error
	if status == models.PaymentStatusCompleted {
		err = uc.eventsGW.PublishPaymentCompleted(event)
	} else {
		err = uc.eventsGW.PublishPaymentFailed(event)
	}
	if err != nil {
		uc.log.WithError(err).WithField("payment_id", payment.ID).
			Warn("failed to publish payment event")
	}
}
