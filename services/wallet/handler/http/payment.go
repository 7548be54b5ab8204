package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/middleware"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/internal/utils"
	"github.com/bimbelin/bimbelin/services/wallet"
)

// ProcessPayment handles session payment requests
func (h *WalletHandler) ProcessPayment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	payment, err := h.walletUC.ProcessPayment(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidAmount):
			return utils.BadRequestResponse(c, "Invalid payment amount")
		case errors.Is(err, wallet.ErrInsufficientFunds):
			return utils.UnprocessableEntityResponse(c, "Insufficient funds")
		case errors.Is(err, wallet.ErrPaymentFailed):
			return utils.UnprocessableEntityResponse(c, "Payment could not be settled")
		default:
			h.log.WithError(err).Error("failed to process payment")
			return utils.InternalServerErrorResponse(c, "Failed to process payment")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment processed successfully", payment)
}
