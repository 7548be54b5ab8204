package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/middleware"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/internal/utils"
	"github.com/bimbelin/bimbelin/services/schedule"
)

// ScheduleHandler handles HTTP requests for schedule operations
type ScheduleHandler struct {
	scheduleUC schedule.ScheduleUC
	log        *logger.AppLogger
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleUC schedule.ScheduleUC, appLogger *logger.AppLogger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: scheduleUC,
		log:        appLogger,
	}
}

// BookSession handles session booking requests
func (h *ScheduleHandler) BookSession(c echo.Context) error {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SessionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	session, err := h.scheduleUC.BookSession(c.Request().Context(), studentID, &req)
	if err != nil {
		h.log.WithError(err).Warn("session booking rejected")
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Session booked successfully", session)
}

// GetSession handles session detail requests
func (h *ScheduleHandler) GetSession(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	session, err := h.scheduleUC.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return utils.NotFoundResponse(c, "Session not found")
		}
		h.log.WithError(err).Error("failed to get session")
		return utils.InternalServerErrorResponse(c, "Failed to retrieve session")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session retrieved successfully", session)
}

// ChangeSessionStatus handles session lifecycle requests
func (h *ScheduleHandler) ChangeSessionStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid session ID")
	}

	var req models.SessionStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	session, err := h.scheduleUC.ChangeSessionStatus(c.Request().Context(), sessionID, userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNotFound):
			return utils.NotFoundResponse(c, "Session not found")
		case errors.Is(err, schedule.ErrNotParticipant):
			return utils.ForbiddenResponse(c, "Only session participants can change its status")
		case errors.Is(err, schedule.ErrInvalidTransition):
			return utils.ConflictResponse(c, "Invalid status transition")
		default:
			h.log.WithError(err).Error("failed to change session status")
			return utils.InternalServerErrorResponse(c, "Failed to change session status")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session status updated successfully", session)
}

// ListSessions handles session listing requests
func (h *ScheduleHandler) ListSessions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	sessions, err := h.scheduleUC.ListSessions(c.Request().Context(), userID, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("failed to list sessions")
		return utils.InternalServerErrorResponse(c, "Failed to retrieve sessions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sessions retrieved successfully", sessions)
}
