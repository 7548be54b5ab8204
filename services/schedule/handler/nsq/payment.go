package nsq

import (
	"context"
	"time"

	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/internal/pkg/nsq"
	"github.com/bimbelin/bimbelin/services/schedule"
)

const handleTimeout = 10 * time.Second

// PaymentEventHandler consumes payment events and updates session state
type PaymentEventHandler struct {
	scheduleUC schedule.ScheduleUC
	log        *logger.AppLogger
}

// NewPaymentEventHandler creates a payment event handler
func NewPaymentEventHandler(scheduleUC schedule.ScheduleUC, appLogger *logger.AppLogger) *PaymentEventHandler {
	return &PaymentEventHandler{
		scheduleUC: scheduleUC,
		log:        appLogger,
	}
}

// HandlePaymentCompleted processes one payment.completed message. Returning
// an error requeues the message.
func (h *PaymentEventHandler) HandlePaymentCompleted(messageBody []byte) error {
	var event models.PaymentEvent
	if err := nsq.UnmarshalMessage(messageBody, &event); err != nil {
		// A malformed message will never parse; drop it instead of requeueing
		h.log.WithError(err).Error("dropping malformed payment event")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if err := h.scheduleUC.HandlePaymentCompleted(ctx, &event); err != nil {
		h.log.WithError(err).WithField("payment_id", event.PaymentID).
			Error("failed to handle payment event, requeueing")
		return err
	}

	return nil
}
