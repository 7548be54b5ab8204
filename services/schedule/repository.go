package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

// ScheduleRepo defines the interface for schedule repository operations
type ScheduleRepo interface {
	// CreateSession books a new session in scheduled status
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession returns one session by id, or ErrNotFound
	GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)

	// UpdateSessionStatus moves a session between statuses. The update is
	// guarded by the expected current status; a mismatch returns
	// ErrInvalidTransition.
	UpdateSessionStatus(ctx context.Context, sessionID uuid.UUID, from, to string) error

	// MarkSessionPaid flags a session as paid
	MarkSessionPaid(ctx context.Context, sessionID uuid.UUID) error

	// ListSessions returns sessions where the user is student or teacher,
	// soonest first
	ListSessions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Session, error)

	// CreateAssignment records a new assignment
	CreateAssignment(ctx context.Context, assignment *models.Assignment) error

	// GetAssignment returns one assignment by id, or ErrNotFound
	GetAssignment(ctx context.Context, assignmentID uuid.UUID) (*models.Assignment, error)

	// UpsertSubmission stores a student's submission for an assignment.
	// Each (assignment, student) pair owns its row, so two students
	// submitting for the same assignment never conflict.
	UpsertSubmission(ctx context.Context, submission *models.AssignmentSubmission) error

	// UpsertResult stores a student's graded result for an assessment
	UpsertResult(ctx context.Context, result *models.AssessmentResult) error

	// GetStudentProgress aggregates a student's standing with one teacher
	GetStudentProgress(ctx context.Context, studentID, teacherID uuid.UUID) (*models.StudentProgress, error)
}

// SessionCache is a best-effort cache for session detail reads
type SessionCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}
