package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is a task a teacher hands out to students
type Assignment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TeacherID uuid.UUID `json:"teacher_id" db:"teacher_id"`
	Subject   string    `json:"subject" db:"subject"`
	Title     string    `json:"title" db:"title"`
	DueDate   time.Time `json:"due_date" db:"due_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AssignmentSubmission is one student's submission for an assignment.
// Submissions live in their own keyed rows, one per (assignment, student),
// so concurrent submissions never contend on a shared parent record.
type AssignmentSubmission struct {
	AssignmentID uuid.UUID `json:"assignment_id" db:"assignment_id"`
	StudentID    uuid.UUID `json:"student_id" db:"student_id"`
	Content      string    `json:"content" db:"content"`
	AttachmentID string    `json:"attachment_id,omitempty" db:"attachment_id"`
	SubmittedAt  time.Time `json:"submitted_at" db:"submitted_at"`
}

// AssessmentResult is one student's graded result, keyed by (assessment, student)
type AssessmentResult struct {
	AssessmentID uuid.UUID `json:"assessment_id" db:"assessment_id"`
	StudentID    uuid.UUID `json:"student_id" db:"student_id"`
	Score        float64   `json:"score" db:"score"`
	MaxScore     float64   `json:"max_score" db:"max_score"`
	GradedAt     time.Time `json:"graded_at" db:"graded_at"`
}

// StudentProgress aggregates a student's standing with one teacher
type StudentProgress struct {
	StudentID           uuid.UUID `json:"student_id"`
	TeacherID           uuid.UUID `json:"teacher_id"`
	TotalAssignments    int       `json:"total_assignments"`
	SubmittedCount      int       `json:"submitted_count"`
	ProgressPercent     float64   `json:"progress_percent"`
	AverageScorePercent float64   `json:"average_score_percent"`
	CompletedSessions   int       `json:"completed_sessions"`
}

// SubmissionRequest is the payload to submit an assignment
type SubmissionRequest struct {
	Content      string `json:"content" validate:"required"`
	AttachmentID string `json:"attachment_id,omitempty"`
}

// ResultRequest is the payload to record an assessment result
type ResultRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Score     float64   `json:"score"`
	MaxScore  float64   `json:"max_score" validate:"required"`
}
