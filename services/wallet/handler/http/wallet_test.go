package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/wallet"
	"github.com/bimbelin/bimbelin/services/wallet/mocks"
)

func setupHandlerTest(t *testing.T) (*WalletHandler, *mocks.MockWalletUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockWalletUseCase(ctrl)

	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	return NewWalletHandler(mockUC, appLogger), mockUC
}

func newContext(t *testing.T, method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}

func TestGetBalanceHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			GetBalance(gomock.Any(), userID).
			Return(&models.Wallet{UserID: userID, Balance: 50000, Currency: "IDR"}, nil)

		c, rec := newContext(t, http.MethodGet, "/wallet/balance", "", userID)
		require.NoError(t, h.GetBalance(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool          `json:"success"`
			Data    models.Wallet `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(50000), resp.Data.Balance)
	})

	t.Run("Wallet Not Found", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			GetBalance(gomock.Any(), userID).
			Return(nil, wallet.ErrNotFound)

		c, rec := newContext(t, http.MethodGet, "/wallet/balance", "", userID)
		require.NoError(t, h.GetBalance(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Missing Auth Context", func(t *testing.T) {
		h, _ := setupHandlerTest(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/wallet/balance", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, h.GetBalance(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDepositHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			Deposit(gomock.Any(), userID, gomock.Any()).
			Return(&models.Wallet{UserID: userID, Balance: 25000}, nil)

		c, rec := newContext(t, http.MethodPost, "/wallet/deposit", `{"amount":25000}`, userID)
		require.NoError(t, h.Deposit(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Below Minimum", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			Deposit(gomock.Any(), userID, gomock.Any()).
			Return(nil, wallet.ErrInvalidAmount)

		c, rec := newContext(t, http.MethodPost, "/wallet/deposit", `{"amount":1}`, userID)
		require.NoError(t, h.Deposit(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWithdrawHandler_InsufficientFunds(t *testing.T) {
	userID := uuid.New()
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		Withdraw(gomock.Any(), userID, gomock.Any()).
		Return(nil, wallet.ErrInsufficientFunds)

	c, rec := newContext(t, http.MethodPost, "/wallet/withdraw", `{"amount":999999}`, userID)
	require.NoError(t, h.Withdraw(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestProcessPaymentHandler(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.New()
	teacherID := uuid.New()
	body := `{"session_id":"` + sessionID.String() + `","teacher_id":"` + teacherID.String() + `","amount":50000}`

	t.Run("Success", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			ProcessPayment(gomock.Any(), userID, gomock.Any()).
			Return(&models.Payment{
				ID:        uuid.New(),
				UserID:    userID,
				SessionID: sessionID,
				TeacherID: teacherID,
				Amount:    50000,
				Status:    models.PaymentStatusCompleted,
			}, nil)

		c, rec := newContext(t, http.MethodPost, "/payments", body, userID)
		require.NoError(t, h.ProcessPayment(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Settlement Failed", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			ProcessPayment(gomock.Any(), userID, gomock.Any()).
			Return(nil, wallet.ErrPaymentFailed)

		c, rec := newContext(t, http.MethodPost, "/payments", body, userID)
		require.NoError(t, h.ProcessPayment(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestCancelSubscriptionHandler(t *testing.T) {
	userID := uuid.New()
	subscriptionID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			CancelSubscription(gomock.Any(), subscriptionID, userID).
			Return(nil)

		c, rec := newContext(t, http.MethodDelete, "/subscriptions/"+subscriptionID.String(), "", userID)
		c.SetParamNames("id")
		c.SetParamValues(subscriptionID.String())

		require.NoError(t, h.CancelSubscription(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		h, mockUC := setupHandlerTest(t)

		mockUC.EXPECT().
			CancelSubscription(gomock.Any(), subscriptionID, userID).
			Return(wallet.ErrNotFound)

		c, rec := newContext(t, http.MethodDelete, "/subscriptions/"+subscriptionID.String(), "", userID)
		c.SetParamNames("id")
		c.SetParamValues(subscriptionID.String())

		require.NoError(t, h.CancelSubscription(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		h, _ := setupHandlerTest(t)

		c, rec := newContext(t, http.MethodDelete, "/subscriptions/not-a-uuid", "", userID)
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, h.CancelSubscription(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
