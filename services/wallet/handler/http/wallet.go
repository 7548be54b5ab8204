package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/middleware"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/internal/utils"
	"github.com/bimbelin/bimbelin/services/wallet"
)

// WalletHandler handles HTTP requests for wallet operations
type WalletHandler struct {
	walletUC wallet.WalletUseCase
	log      *logger.AppLogger
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUseCase, appLogger *logger.AppLogger) *WalletHandler {
	return &WalletHandler{
		walletUC: walletUC,
		log:      appLogger,
	}
}

// GetBalance handles balance retrieval requests
func (h *WalletHandler) GetBalance(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	w, err := h.walletUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			return utils.NotFoundResponse(c, "Wallet not found")
		}
		h.log.WithError(err).Error("failed to get balance")
		return utils.InternalServerErrorResponse(c, "Failed to retrieve balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved successfully", w)
}

// Deposit handles wallet deposit requests
func (h *WalletHandler) Deposit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DepositRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	w, err := h.walletUC.Deposit(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidAmount) {
			return utils.BadRequestResponse(c, "Deposit amount is below the minimum")
		}
		h.log.WithError(err).Error("failed to process deposit")
		return utils.InternalServerErrorResponse(c, "Failed to process deposit")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Deposit completed successfully", w)
}

// Withdraw handles wallet withdrawal requests
func (h *WalletHandler) Withdraw(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	w, err := h.walletUC.Withdraw(c.Request().Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidAmount):
			return utils.BadRequestResponse(c, "Withdrawal amount is below the minimum")
		case errors.Is(err, wallet.ErrInsufficientFunds):
			return utils.UnprocessableEntityResponse(c, "Insufficient funds")
		default:
			h.log.WithError(err).Error("failed to process withdrawal")
			return utils.InternalServerErrorResponse(c, "Failed to process withdrawal")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal completed successfully", w)
}

// ListTransactions handles transaction history requests
func (h *WalletHandler) ListTransactions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	transactions, err := h.walletUC.ListTransactions(c.Request().Context(), userID, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("failed to list transactions")
		return utils.InternalServerErrorResponse(c, "Failed to retrieve transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}
