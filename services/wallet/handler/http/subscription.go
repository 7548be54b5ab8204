package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/middleware"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/internal/utils"
	"github.com/bimbelin/bimbelin/services/wallet"
)

// CreateSubscription handles subscription creation requests
func (h *WalletHandler) CreateSubscription(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	subscription, err := h.walletUC.CreateSubscription(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidAmount):
			return utils.BadRequestResponse(c, "Invalid subscription amount")
		case errors.Is(err, wallet.ErrInsufficientFunds):
			return utils.UnprocessableEntityResponse(c, "Insufficient funds")
		case errors.Is(err, wallet.ErrPaymentFailed):
			return utils.UnprocessableEntityResponse(c, "First subscription charge failed")
		default:
			h.log.WithError(err).Error("failed to create subscription")
			return utils.InternalServerErrorResponse(c, "Failed to create subscription")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Subscription created successfully", subscription)
}

// CancelSubscription handles subscription cancellation requests
func (h *WalletHandler) CancelSubscription(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid subscription ID")
	}

	if err := h.walletUC.CancelSubscription(c.Request().Context(), subscriptionID, userID); err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			return utils.NotFoundResponse(c, "Active subscription not found")
		}
		h.log.WithError(err).Error("failed to cancel subscription")
		return utils.InternalServerErrorResponse(c, "Failed to cancel subscription")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscription cancelled successfully", nil)
}

// ListSubscriptions handles subscription listing requests
func (h *WalletHandler) ListSubscriptions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	subscriptions, err := h.walletUC.ListSubscriptions(c.Request().Context(), userID)
	if err != nil {
		h.log.WithError(err).Error("failed to list subscriptions")
		return utils.InternalServerErrorResponse(c, "Failed to retrieve subscriptions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Subscriptions retrieved successfully", subscriptions)
}
