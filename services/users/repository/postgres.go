package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bimbelin/bimbelin/internal/pkg/database"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/users"
)

// PostgresUserRepo implements the users.UserRepo interface
type PostgresUserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, client *database.PostgresClient) *PostgresUserRepo {
	return &PostgresUserRepo{
		cfg: cfg,
		db:  client.GetDB(),
	}
}

// CreateUser inserts a new user record
func (r *PostgresUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true

	query := `
		INSERT INTO users (id, email, password_hash, fullname, role,
			phone_number, photo_url, is_active, created_at, updated_at
		) VALUES (:id, :email, :password_hash, :fullname, :role,
			:phone_number, :photo_url, :is_active, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by id, attaching the teacher profile for teachers
func (r *PostgresUserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, email, password_hash, fullname, role, phone_number,
			photo_url, is_active, created_at, updated_at
		FROM users WHERE id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == models.RoleTeacher {
		teacher, err := r.GetTeacherProfile(ctx, userID)
		if err != nil && !errors.Is(err, users.ErrNotTeacher) {
			return nil, err
		}
		user.TeacherInfo = teacher
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, email, password_hash, fullname, role, phone_number,
			photo_url, is_active, created_at, updated_at
		FROM users WHERE email = $1
	`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// UpdateUser persists mutable profile fields
func (r *PostgresUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, `
		UPDATE users
		SET fullname = :fullname, phone_number = :phone_number,
			photo_url = :photo_url, updated_at = :updated_at
		WHERE id = :id
	`, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return users.ErrNotFound
	}

	return nil
}

// UpsertTeacherProfile creates or updates a teacher profile
func (r *PostgresUserRepo) UpsertTeacherProfile(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (user_id, subjects, bio, hourly_rate, latitude, longitude, geohash)
		VALUES (:user_id, :subjects, :bio, :hourly_rate, :latitude, :longitude, :geohash)
		ON CONFLICT (user_id) DO UPDATE SET
			subjects = EXCLUDED.subjects,
			bio = EXCLUDED.bio,
			hourly_rate = EXCLUDED.hourly_rate,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			geohash = EXCLUDED.geohash
	`
	_, err := r.db.NamedExecContext(ctx, query, teacher)
	if err != nil {
		return fmt.Errorf("failed to upsert teacher profile: %w", err)
	}

	return nil
}

// GetTeacherProfile retrieves a teacher profile
func (r *PostgresUserRepo) GetTeacherProfile(ctx context.Context, userID uuid.UUID) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.GetContext(ctx, &teacher, `
		SELECT user_id, subjects, bio, hourly_rate, earnings, rating, latitude, longitude, geohash
		FROM teachers WHERE user_id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrNotTeacher
		}
		return nil, fmt.Errorf("failed to get teacher profile: %w", err)
	}

	return &teacher, nil
}

// CreateParentLink associates a parent with a student
func (r *PostgresUserRepo) CreateParentLink(ctx context.Context, parentID, studentID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO parent_links (parent_id, student_id, created_at)
		VALUES ($1, $2, NOW())
	`, parentID, studentID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return users.ErrLinkExists
		}
		return fmt.Errorf("failed to create parent link: %w", err)
	}

	return nil
}

// ListChildren returns the students linked to a parent
func (r *PostgresUserRepo) ListChildren(ctx context.Context, parentID uuid.UUID) ([]models.User, error) {
	children := []models.User{}
	err := r.db.SelectContext(ctx, &children, `
		SELECT u.id, u.email, u.password_hash, u.fullname, u.role,
			u.phone_number, u.photo_url, u.is_active, u.created_at, u.updated_at
		FROM users u
		JOIN parent_links pl ON pl.student_id = u.id
		WHERE pl.parent_id = $1
		ORDER BY u.fullname
	`, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	return children, nil
}

// IsParentOf reports whether a parent link exists
func (r *PostgresUserRepo) IsParentOf(ctx context.Context, parentID, studentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM parent_links WHERE parent_id = $1 AND student_id = $2
		)
	`, parentID, studentID)
	if err != nil {
		return false, fmt.Errorf("failed to check parent link: %w", err)
	}

	return exists, nil
}
