package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

// UserUC defines the interface for user use cases
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)

	LinkChild(ctx context.Context, parentID, studentID uuid.UUID) error
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]models.User, error)

	GetTeacherEarnings(ctx context.Context, teacherID uuid.UUID) (*models.Teacher, error)
	NearbyTeachers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTeacher, error)
}
