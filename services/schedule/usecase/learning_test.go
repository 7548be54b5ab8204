package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/schedule"
)

func TestSubmitAssignment(t *testing.T) {
	assignmentID := uuid.New()
	studentID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		uc, mockRepo, _ := setupScheduleUC(t)

		mockRepo.EXPECT().GetAssignment(gomock.Any(), assignmentID).
			Return(&models.Assignment{
				ID:      assignmentID,
				DueDate: time.Now().Add(48 * time.Hour),
			}, nil)
		mockRepo.EXPECT().
			UpsertSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, submission *models.AssignmentSubmission) error {
				assert.Equal(t, assignmentID, submission.AssignmentID)
				assert.Equal(t, studentID, submission.StudentID)
				return nil
			})

		submission, err := uc.SubmitAssignment(context.Background(), assignmentID, studentID, &models.SubmissionRequest{
			Content: "jawaban saya",
		})
		require.NoError(t, err)
		assert.Equal(t, "jawaban saya", submission.Content)
	})

	t.Run("Past Due", func(t *testing.T) {
		uc, mockRepo, _ := setupScheduleUC(t)

		mockRepo.EXPECT().GetAssignment(gomock.Any(), assignmentID).
			Return(&models.Assignment{
				ID:      assignmentID,
				DueDate: time.Now().Add(-time.Hour),
			}, nil)

		_, err := uc.SubmitAssignment(context.Background(), assignmentID, studentID, &models.SubmissionRequest{
			Content: "terlambat",
		})
		assert.ErrorIs(t, err, schedule.ErrPastDue)
	})

	t.Run("Assignment Missing", func(t *testing.T) {
		uc, mockRepo, _ := setupScheduleUC(t)

		mockRepo.EXPECT().GetAssignment(gomock.Any(), assignmentID).
			Return(nil, schedule.ErrNotFound)

		_, err := uc.SubmitAssignment(context.Background(), assignmentID, studentID, &models.SubmissionRequest{
			Content: "x",
		})
		assert.ErrorIs(t, err, schedule.ErrNotFound)
	})
}

func TestRecordResult(t *testing.T) {
	assessmentID := uuid.New()
	studentID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		uc, mockRepo, _ := setupScheduleUC(t)

		mockRepo.EXPECT().
			UpsertResult(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, result *models.AssessmentResult) error {
				assert.Equal(t, 85.0, result.Score)
				return nil
			})

		result, err := uc.RecordResult(context.Background(), assessmentID, &models.ResultRequest{
			StudentID: studentID,
			Score:     85,
			MaxScore:  100,
		})
		require.NoError(t, err)
		assert.Equal(t, studentID, result.StudentID)
	})

	t.Run("Score Out Of Range", func(t *testing.T) {
		uc, _, _ := setupScheduleUC(t)

		_, err := uc.RecordResult(context.Background(), assessmentID, &models.ResultRequest{
			StudentID: studentID,
			Score:     120,
			MaxScore:  100,
		})
		assert.Error(t, err)
	})

	t.Run("Zero Max Score", func(t *testing.T) {
		uc, _, _ := setupScheduleUC(t)

		_, err := uc.RecordResult(context.Background(), assessmentID, &models.ResultRequest{
			StudentID: studentID,
			Score:     0,
			MaxScore:  0,
		})
		assert.Error(t, err)
	})
}

func TestGetStudentProgress(t *testing.T) {
	uc, mockRepo, _ := setupScheduleUC(t)

	studentID := uuid.New()
	teacherID := uuid.New()

	mockRepo.EXPECT().
		GetStudentProgress(gomock.Any(), studentID, teacherID).
		Return(&models.StudentProgress{
			StudentID:           studentID,
			TeacherID:           teacherID,
			TotalAssignments:    10,
			SubmittedCount:      7,
			ProgressPercent:     70,
			AverageScorePercent: 82.5,
			CompletedSessions:   4,
		}, nil)

	progress, err := uc.GetStudentProgress(context.Background(), studentID, teacherID)
	require.NoError(t, err)
	assert.Equal(t, 70.0, progress.ProgressPercent)
	assert.Equal(t, 4, progress.CompletedSessions)
}
