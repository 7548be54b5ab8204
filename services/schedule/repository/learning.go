package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/schedule"
)

// CreateAssignment records a new assignment
func (r *PostgresScheduleRepo) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	if assignment.ID == uuid.Nil {
		assignment.ID = uuid.New()
	}
	assignment.CreatedAt = time.Now()

	query := `
		INSERT INTO assignments (id, teacher_id, subject, title, due_date, created_at)
		VALUES (:id, :teacher_id, :subject, :title, :due_date, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, assignment)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	return nil
}

// GetAssignment retrieves an assignment by id
func (r *PostgresScheduleRepo) GetAssignment(ctx context.Context, assignmentID uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.GetContext(ctx, &assignment, `
		SELECT id, teacher_id, subject, title, due_date, created_at
		FROM assignments WHERE id = $1
	`, assignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, schedule.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return &assignment, nil
}

// UpsertSubmission stores a student's submission. The (assignment, student)
// primary key gives each student an independent row.
func (r *PostgresScheduleRepo) UpsertSubmission(ctx context.Context, submission *models.AssignmentSubmission) error {
	submission.SubmittedAt = time.Now()

	query := `
		INSERT INTO assignment_submissions (assignment_id, student_id, content, attachment_id, submitted_at)
		VALUES (:assignment_id, :student_id, :content, :attachment_id, :submitted_at)
		ON CONFLICT (assignment_id, student_id) DO UPDATE SET
			content = EXCLUDED.content,
			attachment_id = EXCLUDED.attachment_id,
			submitted_at = EXCLUDED.submitted_at
	`
	_, err := r.db.NamedExecContext(ctx, query, submission)
	if err != nil {
		return fmt.Errorf("failed to upsert submission: %w", err)
	}

	return nil
}

// UpsertResult stores a student's graded result
func (r *PostgresScheduleRepo) UpsertResult(ctx context.Context, result *models.AssessmentResult) error {
	result.GradedAt = time.Now()

	query := `
		INSERT INTO assessment_results (assessment_id, student_id, score, max_score, graded_at)
		VALUES (:assessment_id, :student_id, :score, :max_score, :graded_at)
		ON CONFLICT (assessment_id, student_id) DO UPDATE SET
			score = EXCLUDED.score,
			max_score = EXCLUDED.max_score,
			graded_at = EXCLUDED.graded_at
	`
	_, err := r.db.NamedExecContext(ctx, query, result)
	if err != nil {
		return fmt.Errorf("failed to upsert result: %w", err)
	}

	return nil
}

// GetStudentProgress aggregates a student's standing with one teacher
func (r *PostgresScheduleRepo) GetStudentProgress(ctx context.Context, studentID, teacherID uuid.UUID) (*models.StudentProgress, error) {
	progress := &models.StudentProgress{
		StudentID: studentID,
		TeacherID: teacherID,
	}

	err := r.db.GetContext(ctx, &progress.TotalAssignments, `
		SELECT COUNT(*) FROM assignments WHERE teacher_id = $1
	`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	err = r.db.GetContext(ctx, &progress.SubmittedCount, `
		SELECT COUNT(*)
		FROM assignment_submissions s
		JOIN assignments a ON a.id = s.assignment_id
		WHERE s.student_id = $1 AND a.teacher_id = $2
	`, studentID, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to count submissions: %w", err)
	}

	var avg sql.NullFloat64
	err = r.db.GetContext(ctx, &avg, `
		SELECT AVG(score / NULLIF(max_score, 0) * 100)
		FROM assessment_results r
		JOIN assignments a ON a.id = r.assessment_id
		WHERE r.student_id = $1 AND a.teacher_id = $2
	`, studentID, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to average scores: %w", err)
	}
	if avg.Valid {
		progress.AverageScorePercent = avg.Float64
	}

	err = r.db.GetContext(ctx, &progress.CompletedSessions, `
		SELECT COUNT(*) FROM sessions
		WHERE student_id = $1 AND teacher_id = $2 AND status = $3
	`, studentID, teacherID, models.SessionStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed sessions: %w", err)
	}

	if progress.TotalAssignments > 0 {
		progress.ProgressPercent = float64(progress.SubmittedCount) / float64(progress.TotalAssignments) * 100
	}

	return progress, nil
}
