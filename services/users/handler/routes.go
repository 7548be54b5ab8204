package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/middleware"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/users/handler/http"
)

// Handler coordinates the users service HTTP handlers
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler, userHandler *http.UserHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all user routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	e.POST("/auth/register", h.authHandler.Register)
	e.POST("/auth/login", h.authHandler.Login)

	profileGroup := e.Group("/profile", auth)
	profileGroup.GET("", h.userHandler.GetProfile)
	profileGroup.PUT("", h.userHandler.UpdateProfile)

	parentGroup := e.Group("/parent", auth, middleware.RequireRole(models.RoleParent))
	parentGroup.POST("/children/:student_id", h.userHandler.LinkChild)
	parentGroup.GET("/children", h.userHandler.ListChildren)

	teacherGroup := e.Group("/teacher", auth, middleware.RequireRole(models.RoleTeacher))
	teacherGroup.GET("/earnings", h.userHandler.GetEarnings)

	e.GET("/teachers/nearby", h.userHandler.NearbyTeachers, auth)
}
