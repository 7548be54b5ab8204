package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

func TestPanicRecoveryMiddleware(t *testing.T) {
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	e := echo.New()
	e.Use(PanicRecoveryMiddleware(appLogger))
	e.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}

func TestPanicRecoveryMiddlewarePassthrough(t *testing.T) {
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	e := echo.New()
	e.Use(PanicRecoveryMiddleware(appLogger))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
