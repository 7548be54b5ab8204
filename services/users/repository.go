package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

// UserRepo defines the interface for user repository operations
type UserRepo interface {
	// CreateUser inserts a new user; a duplicate email returns ErrEmailTaken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID returns one user by id, or ErrNotFound. Teachers come back
	// with their teacher profile attached.
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// GetUserByEmail returns one user by email, or ErrNotFound
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateUser persists mutable profile fields
	UpdateUser(ctx context.Context, user *models.User) error

	// UpsertTeacherProfile creates or updates a teacher profile
	UpsertTeacherProfile(ctx context.Context, teacher *models.Teacher) error

	// GetTeacherProfile returns a teacher profile, or ErrNotTeacher
	GetTeacherProfile(ctx context.Context, userID uuid.UUID) (*models.Teacher, error)

	// CreateParentLink associates a parent with a student
	CreateParentLink(ctx context.Context, parentID, studentID uuid.UUID) error

	// ListChildren returns the students linked to a parent
	ListChildren(ctx context.Context, parentID uuid.UUID) ([]models.User, error)

	// IsParentOf reports whether a parent link exists
	IsParentOf(ctx context.Context, parentID, studentID uuid.UUID) (bool, error)
}

// TeacherLocationRepo maintains the geo index used for nearby teacher search
type TeacherLocationRepo interface {
	// UpdateLocation stores a teacher's position in the geo index
	UpdateLocation(ctx context.Context, teacherID uuid.UUID, latitude, longitude float64) error

	// RemoveLocation drops a teacher from the geo index
	RemoveLocation(ctx context.Context, teacherID uuid.UUID) error

	// FindNearby returns teacher IDs within radiusKm of a point with their
	// distances, nearest first
	FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) (map[uuid.UUID]float64, []uuid.UUID, error)
}
