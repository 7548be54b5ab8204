package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/circuitbreaker"
	httpclient "github.com/bimbelin/bimbelin/internal/pkg/http"
	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
)

// SettlementGateway talks to the external settlement provider over HTTP.
// Calls go through a circuit breaker so a struggling provider does not
// pile up in-flight charges.
type SettlementGateway struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
	log     *logger.AppLogger
}

type chargeRequest struct {
	PaymentID uuid.UUID `json:"payment_id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
}

type chargeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewSettlementGateway creates a settlement gateway from configuration
func NewSettlementGateway(cfg models.SettlementConfig, appLogger *logger.AppLogger) wallet.SettlementGW {
	client := httpclient.NewClient(cfg.URL, time.Duration(cfg.TimeoutSeconds)*time.Second)
	if cfg.APIKey != "" {
		client = client.WithAPIKey(cfg.APIKey)
	}

	return &SettlementGateway{
		client:  client,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("settlement"), appLogger),
		log:     appLogger,
	}
}

// Settle submits a charge to the settlement provider. Any non-success
// outcome, including a decline, is an error to the caller.
func (g *SettlementGateway) Settle(ctx context.Context, paymentID uuid.UUID, amount int64, currency string) error {
	return g.breaker.Execute(ctx, func(ctx context.Context) error {
		req := chargeRequest{
			PaymentID: paymentID,
			Amount:    amount,
			Currency:  currency,
		}

		var resp chargeResponse
		status, err := g.client.PostJSON(ctx, "/v1/charges", req, &resp)
		if err != nil {
			return fmt.Errorf("settlement request failed: %w", err)
		}
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return fmt.Errorf("settlement returned status %d: %s", status, resp.Message)
		}
		if resp.Status != "approved" {
			return fmt.Errorf("settlement declined: %s", resp.Message)
		}

		return nil
	})
}
