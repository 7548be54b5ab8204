package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/schedule"
	"github.com/bimbelin/bimbelin/services/schedule/mocks"
)

func setupScheduleUC(t *testing.T) (schedule.ScheduleUC, *mocks.MockScheduleRepo, *mocks.MockSessionCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockScheduleRepo(ctrl)
	mockCache := mocks.NewMockSessionCache(ctrl)

	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	uc := NewScheduleUC(&models.Config{}, mockRepo, mockCache, appLogger)
	return uc, mockRepo, mockCache
}

func TestBookSession(t *testing.T) {
	studentID := uuid.New()
	teacherID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		uc, mockRepo, _ := setupScheduleUC(t)

		mockRepo.EXPECT().
			CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, session *models.Session) error {
				session.ID = uuid.New()
				assert.Equal(t, studentID, session.StudentID)
				return nil
			})

		session, err := uc.BookSession(context.Background(), studentID, &models.SessionRequest{
			TeacherID:   teacherID,
			Subject:     "math",
			StartTime:   time.Now().Add(24 * time.Hour),
			DurationMin: 60,
		})
		require.NoError(t, err)
		assert.Equal(t, teacherID, session.TeacherID)
	})

	t.Run("Past Start Time", func(t *testing.T) {
		uc, _, _ := setupScheduleUC(t)

		_, err := uc.BookSession(context.Background(), studentID, &models.SessionRequest{
			TeacherID:   teacherID,
			Subject:     "math",
			StartTime:   time.Now().Add(-time.Hour),
			DurationMin: 60,
		})
		assert.Error(t, err)
	})

	t.Run("Zero Duration", func(t *testing.T) {
		uc, _, _ := setupScheduleUC(t)

		_, err := uc.BookSession(context.Background(), studentID, &models.SessionRequest{
			TeacherID: teacherID,
			StartTime: time.Now().Add(time.Hour),
		})
		assert.Error(t, err)
	})
}

func TestChangeSessionStatus(t *testing.T) {
	sessionID := uuid.New()
	studentID := uuid.New()
	teacherID := uuid.New()

	base := func() *models.Session {
		return &models.Session{
			ID:        sessionID,
			StudentID: studentID,
			TeacherID: teacherID,
			Status:    models.SessionStatusScheduled,
		}
	}

	t.Run("Teacher Confirms", func(t *testing.T) {
		uc, mockRepo, mockCache := setupScheduleUC(t)

		mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(base(), nil)
		mockRepo.EXPECT().
			UpdateSessionStatus(gomock.Any(), sessionID, models.SessionStatusScheduled, models.SessionStatusConfirmed).
			Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		session, err := uc.ChangeSessionStatus(context.Background(), sessionID, teacherID, models.SessionStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, models.SessionStatusConfirmed, session.Status)
	})

	t.Run("Scheduled Cannot Complete", func(t *testing.T) {
		uc, mockRepo, _ := setupScheduleUC(t)

		mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(base(), nil)

		_, err := uc.ChangeSessionStatus(context.Background(), sessionID, teacherID, models.SessionStatusCompleted)
		assert.ErrorIs(t, err, schedule.ErrInvalidTransition)
	})

	t.Run("Cancelled Is Terminal", func(t *testing.T) {
		uc, mockRepo, _ := setupScheduleUC(t)

		cancelled := base()
		cancelled.Status = models.SessionStatusCancelled
		mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(cancelled, nil)

		_, err := uc.ChangeSessionStatus(context.Background(), sessionID, studentID, models.SessionStatusConfirmed)
		assert.ErrorIs(t, err, schedule.ErrInvalidTransition)
	})

	t.Run("Outsider Rejected", func(t *testing.T) {
		uc, mockRepo, _ := setupScheduleUC(t)

		mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).Return(base(), nil)

		_, err := uc.ChangeSessionStatus(context.Background(), sessionID, uuid.New(), models.SessionStatusCancelled)
		assert.ErrorIs(t, err, schedule.ErrNotParticipant)
	})
}

func TestHandlePaymentCompleted(t *testing.T) {
	t.Run("Marks Session Paid", func(t *testing.T) {
		uc, mockRepo, mockCache := setupScheduleUC(t)

		sessionID := uuid.New()
		mockRepo.EXPECT().MarkSessionPaid(gomock.Any(), sessionID).Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := uc.HandlePaymentCompleted(context.Background(), &models.PaymentEvent{
			PaymentID: uuid.New(),
			SessionID: sessionID,
			Status:    models.PaymentStatusCompleted,
		})
		assert.NoError(t, err)
	})

	t.Run("Unknown Session Acknowledged", func(t *testing.T) {
		uc, mockRepo, _ := setupScheduleUC(t)

		sessionID := uuid.New()
		mockRepo.EXPECT().MarkSessionPaid(gomock.Any(), sessionID).Return(schedule.ErrNotFound)

		// Subscription charges use the subscription id as reference; no
		// session row exists and the event must not requeue forever.
		err := uc.HandlePaymentCompleted(context.Background(), &models.PaymentEvent{
			SessionID: sessionID,
		})
		assert.NoError(t, err)
	})

	t.Run("No Session Reference", func(t *testing.T) {
		uc, _, _ := setupScheduleUC(t)

		err := uc.HandlePaymentCompleted(context.Background(), &models.PaymentEvent{})
		assert.NoError(t, err)
	})
}

func TestGetSession_Cache(t *testing.T) {
	uc, mockRepo, mockCache := setupScheduleUC(t)

	sessionID := uuid.New()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", nil)
	mockRepo.EXPECT().GetSession(gomock.Any(), sessionID).
		Return(&models.Session{ID: sessionID, Subject: "physics"}, nil)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	session, err := uc.GetSession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "physics", session.Subject)
}
