package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/bimbelin/bimbelin/internal/pkg/logger"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with stack traces
func PanicRecoveryMiddleware(appLogger *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, appLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, appLogger *logger.AppLogger) {
	stack := debug.Stack()

	appLogger.WithFields(logrus.Fields{
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"client_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		"panic":      fmt.Sprintf("%v", r),
		"stacktrace": string(stack),
	}).Error("panic recovered")

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
		})
	}
}
