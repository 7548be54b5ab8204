package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/internal/utils"
	"github.com/bimbelin/bimbelin/services/users"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	userUC users.UserUC
	log    *logger.AppLogger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC, appLogger *logger.AppLogger) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
		log:    appLogger,
	}
}

// Register handles user registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Register(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			return utils.ConflictResponse(c, "Email already registered")
		case errors.Is(err, users.ErrInvalidRole):
			return utils.BadRequestResponse(c, "Invalid role")
		default:
			h.log.WithError(err).Warn("registration rejected")
			return utils.BadRequestResponse(c, err.Error())
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registration successful", resp)
}

// Login handles user login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		}
		h.log.WithError(err).Error("login failed")
		return utils.InternalServerErrorResponse(c, "Login failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
