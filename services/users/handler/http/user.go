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
	"github.com/bimbelin/bimbelin/services/users"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC users.UserUC
	log    *logger.AppLogger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC, appLogger *logger.AppLogger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		log:    appLogger,
	}
}

// GetProfile handles profile retrieval for the authenticated user
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		h.log.WithError(err).Error("failed to get profile")
		return utils.InternalServerErrorResponse(c, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile handles profile update requests
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		h.log.WithError(err).Error("failed to update profile")
		return utils.InternalServerErrorResponse(c, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// LinkChild handles parent-student link requests
func (h *UserHandler) LinkChild(c echo.Context) error {
	parentID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	studentID, err := uuid.Parse(c.Param("student_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student ID")
	}

	if err := h.userUC.LinkChild(c.Request().Context(), parentID, studentID); err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			return utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, users.ErrInvalidRole):
			return utils.BadRequestResponse(c, "Only parents can link student accounts")
		case errors.Is(err, users.ErrLinkExists):
			return utils.ConflictResponse(c, "Link already exists")
		default:
			h.log.WithError(err).Error("failed to link child")
			return utils.InternalServerErrorResponse(c, "Failed to link child")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Child linked successfully", nil)
}

// ListChildren handles listing a parent's linked students
func (h *UserHandler) ListChildren(c echo.Context) error {
	parentID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	children, err := h.userUC.ListChildren(c.Request().Context(), parentID)
	if err != nil {
		h.log.WithError(err).Error("failed to list children")
		return utils.InternalServerErrorResponse(c, "Failed to retrieve children")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Children retrieved successfully", children)
}

// GetEarnings handles teacher earnings retrieval
func (h *UserHandler) GetEarnings(c echo.Context) error {
	teacherID, ok := middleware.GetUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	teacher, err := h.userUC.GetTeacherEarnings(c.Request().Context(), teacherID)
	if err != nil {
		if errors.Is(err, users.ErrNotTeacher) {
			return utils.ForbiddenResponse(c, "Earnings are only available to teachers")
		}
		h.log.WithError(err).Error("failed to get earnings")
		return utils.InternalServerErrorResponse(c, "Failed to retrieve earnings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Earnings retrieved successfully", teacher)
}

// NearbyTeachers handles teacher discovery requests
func (h *UserHandler) NearbyTeachers(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}
	radiusKm, _ := strconv.ParseFloat(c.QueryParam("radius_km"), 64)

	teachers, err := h.userUC.NearbyTeachers(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		h.log.WithError(err).Error("failed to search nearby teachers")
		return utils.InternalServerErrorResponse(c, "Failed to search teachers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Teachers retrieved successfully", teachers)
}
