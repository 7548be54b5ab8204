package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/bimbelin/bimbelin/internal/pkg/jwt"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

func setupJWTTest(t *testing.T, cfg models.JWTConfig) *echo.Echo {
	t.Helper()

	e := echo.New()
	protected := e.Group("", JWTAuthMiddleware(cfg))
	protected.GET("/protected", func(c echo.Context) error {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		return c.String(http.StatusOK, userID.String())
	})
	protected.GET("/teacher-only", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RequireRole(models.RoleTeacher))

	return e
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "bimbelin-test"}
	e := setupJWTTest(t, cfg)

	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, "student@example.com", models.RoleStudent, cfg)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "Missing Header",
			path:       "/protected",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Malformed Header",
			path:       "/protected",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Invalid Token",
			path:       "/protected",
			authHeader: "Bearer not-a-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Valid Token",
			path:       "/protected",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Role Rejected",
			path:       "/teacher-only",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK && tc.path == "/protected" {
				assert.Equal(t, userID.String(), rec.Body.String())
			}
		})
	}
}
