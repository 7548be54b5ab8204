package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bimbelin/bimbelin/internal/pkg/jwt"
	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/users"
)

// UserUC implements the users.UserUC interface
type UserUC struct {
	cfg          *models.Config
	repo         users.UserRepo
	locationRepo users.TeacherLocationRepo
	log          *logger.AppLogger
}

// NewUserUC creates a new user use case
func NewUserUC(
	cfg *models.Config,
	repo users.UserRepo,
	locationRepo users.TeacherLocationRepo,
	appLogger *logger.AppLogger,
) users.UserUC {
	return &UserUC{
		cfg:          cfg,
		repo:         repo,
		locationRepo: locationRepo,
		log:          appLogger,
	}
}

var validRoles = map[string]bool{
	models.RoleStudent: true,
	models.RoleTeacher: true,
	models.RoleParent:  true,
}

// Register creates a new user account and returns an auth token
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if !validRoles[req.Role] {
		return nil, users.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         req.Role,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.log.WithField("user_id", user.ID).WithField("role", user.Role).Info("user registered")

	return &models.AuthResponse{
		UserID:    user.ID,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Login authenticates a user and returns an auth token
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, users.ErrInvalidCredentials
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		Role:      user.Role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
