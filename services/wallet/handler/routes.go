package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/middleware"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet/handler/http"
)

// Handler coordinates the wallet service HTTP handlers
type Handler struct {
	walletHandler *http.WalletHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(walletHandler *http.WalletHandler, cfg *models.Config) *Handler {
	return &Handler{
		walletHandler: walletHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers all wallet routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	walletGroup := e.Group("/wallet", auth)
	walletGroup.GET("/balance", h.walletHandler.GetBalance)
	walletGroup.POST("/deposit", h.walletHandler.Deposit)
	walletGroup.POST("/withdraw", h.walletHandler.Withdraw)
	walletGroup.GET("/transactions", h.walletHandler.ListTransactions)

	paymentGroup := e.Group("/payments", auth)
	paymentGroup.POST("", h.walletHandler.ProcessPayment)

	subscriptionGroup := e.Group("/subscriptions", auth)
	subscriptionGroup.POST("", h.walletHandler.CreateSubscription)
	subscriptionGroup.GET("", h.walletHandler.ListSubscriptions)
	subscriptionGroup.DELETE("/:id", h.walletHandler.CancelSubscription)
}
