package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bimbelin/bimbelin/internal/pkg/database"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/schedule"
)

// PostgresScheduleRepo implements the schedule.ScheduleRepo interface
type PostgresScheduleRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(cfg *models.Config, client *database.PostgresClient) *PostgresScheduleRepo {
	return &PostgresScheduleRepo{
		cfg: cfg,
		db:  client.GetDB(),
	}
}

// CreateSession books a new session in scheduled status
func (r *PostgresScheduleRepo) CreateSession(ctx context.Context, session *models.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	session.Status = models.SessionStatusScheduled

	query := `
		INSERT INTO sessions (id, student_id, teacher_id, subject, start_time,
			duration_min, status, paid, created_at, updated_at
		) VALUES (:id, :student_id, :teacher_id, :subject, :start_time,
			:duration_min, :status, :paid, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by id
func (r *PostgresScheduleRepo) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	var session models.Session
	err := r.db.GetContext(ctx, &session, `
		SELECT id, student_id, teacher_id, subject, start_time,
			duration_min, status, paid, created_at, updated_at
		FROM sessions WHERE id = $1
	`, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, schedule.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// UpdateSessionStatus moves a session between statuses with a guard on the
// expected current status
func (r *PostgresScheduleRepo) UpdateSessionStatus(ctx context.Context, sessionID uuid.UUID, from, to string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE sessions
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, to, sessionID, from)
	if err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Distinguish a missing session from a stale status
		var current string
		if err := r.db.GetContext(ctx, &current, `SELECT status FROM sessions WHERE id = $1`, sessionID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return schedule.ErrNotFound
			}
			return fmt.Errorf("failed to check session status: %w", err)
		}
		return schedule.ErrInvalidTransition
	}

	return nil
}

// MarkSessionPaid flags a session as paid
func (r *PostgresScheduleRepo) MarkSessionPaid(ctx context.Context, sessionID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE sessions SET paid = TRUE, updated_at = NOW() WHERE id = $1
	`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to mark session paid: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return schedule.ErrNotFound
	}

	return nil
}

// ListSessions returns sessions where the user participates, soonest first
func (r *PostgresScheduleRepo) ListSessions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Session, error) {
	sessions := []models.Session{}
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT id, student_id, teacher_id, subject, start_time,
			duration_min, status, paid, created_at, updated_at
		FROM sessions
		WHERE student_id = $1 OR teacher_id = $1
		ORDER BY start_time ASC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}
