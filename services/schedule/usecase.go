package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

// ScheduleUC defines the interface for schedule use cases
type ScheduleUC interface {
	BookSession(ctx context.Context, studentID uuid.UUID, req *models.SessionRequest) (*models.Session, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)
	ChangeSessionStatus(ctx context.Context, sessionID, userID uuid.UUID, status string) (*models.Session, error)
	ListSessions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Session, error)

	// HandlePaymentCompleted marks the paid session after a settled payment
	HandlePaymentCompleted(ctx context.Context, event *models.PaymentEvent) error

	CreateAssignment(ctx context.Context, teacherID uuid.UUID, assignment *models.Assignment) (*models.Assignment, error)
	SubmitAssignment(ctx context.Context, assignmentID, studentID uuid.UUID, req *models.SubmissionRequest) (*models.AssignmentSubmission, error)
	RecordResult(ctx context.Context, assessmentID uuid.UUID, req *models.ResultRequest) (*models.AssessmentResult, error)
	GetStudentProgress(ctx context.Context, studentID, teacherID uuid.UUID) (*models.StudentProgress, error)
}
