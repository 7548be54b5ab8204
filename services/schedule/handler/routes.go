package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/middleware"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/schedule/handler/http"
)

// Handler coordinates the schedule service HTTP handlers
type Handler struct {
	scheduleHandler *http.ScheduleHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(scheduleHandler *http.ScheduleHandler, cfg *models.Config) *Handler {
	return &Handler{
		scheduleHandler: scheduleHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers all schedule routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	sessionGroup := e.Group("/sessions", auth)
	sessionGroup.POST("", h.scheduleHandler.BookSession, middleware.RequireRole(models.RoleStudent))
	sessionGroup.GET("", h.scheduleHandler.ListSessions)
	sessionGroup.GET("/:id", h.scheduleHandler.GetSession)
	sessionGroup.PUT("/:id/status", h.scheduleHandler.ChangeSessionStatus)

	assignmentGroup := e.Group("/assignments", auth)
	assignmentGroup.POST("", h.scheduleHandler.CreateAssignment, middleware.RequireRole(models.RoleTeacher))
	assignmentGroup.POST("/:id/submissions", h.scheduleHandler.SubmitAssignment, middleware.RequireRole(models.RoleStudent))
	assignmentGroup.POST("/:id/results", h.scheduleHandler.RecordResult, middleware.RequireRole(models.RoleTeacher))

	progressGroup := e.Group("/progress", auth)
	progressGroup.GET("/:student_id", h.scheduleHandler.GetStudentProgress)
}
