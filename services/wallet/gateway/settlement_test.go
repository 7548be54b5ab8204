package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

func newTestLogger(t *testing.T) *logger.AppLogger {
	l, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)
	return l
}

func TestSettlementGateway(t *testing.T) {
	paymentID := uuid.New()

	t.Run("Approved", func(t *testing.T) {
		var got chargeRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/charges", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(chargeResponse{Status: "approved"})
		}))
		defer server.Close()

		gw := NewSettlementGateway(models.SettlementConfig{
			URL:            server.URL,
			APIKey:         "secret",
			TimeoutSeconds: 5,
		}, newTestLogger(t))

		err := gw.Settle(context.Background(), paymentID, 50000, "IDR")
		require.NoError(t, err)
		assert.Equal(t, paymentID, got.PaymentID)
		assert.Equal(t, int64(50000), got.Amount)
		assert.Equal(t, "IDR", got.Currency)
	})

	t.Run("Declined", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(chargeResponse{Status: "declined", Message: "card expired"})
		}))
		defer server.Close()

		gw := NewSettlementGateway(models.SettlementConfig{
			URL:            server.URL,
			TimeoutSeconds: 5,
		}, newTestLogger(t))

		err := gw.Settle(context.Background(), paymentID, 50000, "IDR")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "declined")
	})

	t.Run("Server Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(chargeResponse{Status: "error", Message: "upstream unavailable"})
		}))
		defer server.Close()

		gw := NewSettlementGateway(models.SettlementConfig{
			URL:            server.URL,
			TimeoutSeconds: 5,
		}, newTestLogger(t))

		err := gw.Settle(context.Background(), paymentID, 50000, "IDR")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("Breaker Opens After Repeated Failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(chargeResponse{Status: "error"})
		}))
		defer server.Close()

		gw := NewSettlementGateway(models.SettlementConfig{
			URL:            server.URL,
			TimeoutSeconds: 5,
		}, newTestLogger(t))

		for i := 0; i < 5; i++ {
			err := gw.Settle(context.Background(), uuid.New(), 1000, "IDR")
			require.Error(t, err)
		}

		// Sixth call is rejected without reaching the server
		err := gw.Settle(context.Background(), uuid.New(), 1000, "IDR")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "circuit breaker is open")
	})
}
