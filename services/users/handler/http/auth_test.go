package http

import (
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
	"github.com/bimbelin/bimbelin/services/users"
	"github.com/bimbelin/bimbelin/services/users/mocks"
)

func setupAuthHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockUserUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockUserUC(ctrl)

	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	return NewAuthHandler(mockUC, appLogger), mockUC
}

func postJSON(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterHandler(t *testing.T) {
	body := `{"email":"budi@example.com","password":"rahasia-sekali","fullname":"Budi","role":"student"}`

	t.Run("Success", func(t *testing.T) {
		h, mockUC := setupAuthHandlerTest(t)

		mockUC.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(&models.AuthResponse{
				UserID: uuid.New(),
				Role:   models.RoleStudent,
				Token:  "a.b.c",
			}, nil)

		c, rec := postJSON("/auth/register", body)
		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Email Taken", func(t *testing.T) {
		h, mockUC := setupAuthHandlerTest(t)

		mockUC.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, users.ErrEmailTaken)

		c, rec := postJSON("/auth/register", body)
		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	body := `{"email":"budi@example.com","password":"rahasia-sekali"}`

	t.Run("Success", func(t *testing.T) {
		h, mockUC := setupAuthHandlerTest(t)

		mockUC.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&models.AuthResponse{UserID: uuid.New(), Token: "a.b.c"}, nil)

		c, rec := postJSON("/auth/login", body)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		h, mockUC := setupAuthHandlerTest(t)

		mockUC.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, users.ErrInvalidCredentials)

		c, rec := postJSON("/auth/login", body)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
