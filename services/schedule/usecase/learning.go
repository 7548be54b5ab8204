package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/schedule"
)

// CreateAssignment records a new assignment handed out by a teacher
func (uc *ScheduleUC) CreateAssignment(ctx context.Context, teacherID uuid.UUID, assignment *models.Assignment) (*models.Assignment, error) {
	if assignment.Title == "" {
		return nil, fmt.Errorf("assignment title is required")
	}

	assignment.TeacherID = teacherID
	if err := uc.repo.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

// SubmitAssignment stores a student's submission. Resubmission before the
// due date overwrites the previous attempt.
func (uc *ScheduleUC) SubmitAssignment(ctx context.Context, assignmentID, studentID uuid.UUID, req *models.SubmissionRequest) (*models.AssignmentSubmission, error) {
	assignment, err := uc.repo.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	if !assignment.DueDate.IsZero() && time.Now().After(assignment.DueDate) {
		return nil, schedule.ErrPastDue
	}

	submission := &models.AssignmentSubmission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      req.Content,
		AttachmentID: req.AttachmentID,
	}
	if err := uc.repo.UpsertSubmission(ctx, submission); err != nil {
		return nil, err
	}

	return submission, nil
}

// RecordResult stores a student's graded assessment result
func (uc *ScheduleUC) RecordResult(ctx context.Context, assessmentID uuid.UUID, req *models.ResultRequest) (*models.AssessmentResult, error) {
	if req.MaxScore <= 0 {
		return nil, fmt.Errorf("max score must be positive")
	}
	if req.Score < 0 || req.Score > req.MaxScore {
		return nil, fmt.Errorf("score must be between 0 and max score")
	}

	result := &models.AssessmentResult{
		AssessmentID: assessmentID,
		StudentID:    req.StudentID,
		Score:        req.Score,
		MaxScore:     req.MaxScore,
	}
	if err := uc.repo.UpsertResult(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// GetStudentProgress aggregates a student's standing with one teacher
func (uc *ScheduleUC) GetStudentProgress(ctx context.Context, studentID, teacherID uuid.UUID) (*models.StudentProgress, error) {
	return uc.repo.GetStudentProgress(ctx, studentID, teacherID)
}
