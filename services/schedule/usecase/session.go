package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bimbelin/bimbelin/internal/pkg/constants"
	"github.com/bimbelin/bimbelin/internal/pkg/logger"
	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/schedule"
)

const sessionCacheTTL = time.Minute

// Allowed session lifecycle transitions. Completed and cancelled are terminal.
var sessionTransitions = map[string][]string{
	models.SessionStatusScheduled: {models.SessionStatusConfirmed, models.SessionStatusCancelled},
	models.SessionStatusConfirmed: {models.SessionStatusCompleted, models.SessionStatusCancelled},
}

// ScheduleUC implements the schedule.ScheduleUC interface
type ScheduleUC struct {
	cfg   *models.Config
	repo  schedule.ScheduleRepo
	cache schedule.SessionCache
	log   *logger.AppLogger
}

// NewScheduleUC creates a new schedule use case
func NewScheduleUC(
	cfg *models.Config,
	repo schedule.ScheduleRepo,
	cache schedule.SessionCache,
	appLogger *logger.AppLogger,
) schedule.ScheduleUC {
	return &ScheduleUC{
		cfg:   cfg,
		repo:  repo,
		cache: cache,
		log:   appLogger,
	}
}

// BookSession books a new tutoring session
func (uc *ScheduleUC) BookSession(ctx context.Context, studentID uuid.UUID, req *models.SessionRequest) (*models.Session, error) {
	if req.DurationMin <= 0 {
		return nil, fmt.Errorf("session duration must be positive")
	}
	if req.StartTime.Before(time.Now()) {
		return nil, fmt.Errorf("session start time must be in the future")
	}

	session := &models.Session{
		StudentID:   studentID,
		TeacherID:   req.TeacherID,
		Subject:     req.Subject,
		StartTime:   req.StartTime,
		DurationMin: req.DurationMin,
	}
	if err := uc.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"student_id": studentID,
		"teacher_id": req.TeacherID,
	}).Info("session booked")

	return session, nil
}

// GetSession returns session detail, serving hot reads from cache
func (uc *ScheduleUC) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	cacheKey := fmt.Sprintf(constants.KeySessionDetail, sessionID)

	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var session models.Session
		if err := json.Unmarshal([]byte(cached), &session); err == nil {
			return &session, nil
		}
	}

	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(session); err == nil {
		_ = uc.cache.Set(ctx, cacheKey, data, sessionCacheTTL)
	}

	return session, nil
}

// ChangeSessionStatus moves a session through its lifecycle. Only the session
// participants may change it, and only along allowed transitions.
func (uc *ScheduleUC) ChangeSessionStatus(ctx context.Context, sessionID, userID uuid.UUID, status string) (*models.Session, error) {
	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.StudentID != userID && session.TeacherID != userID {
		return nil, schedule.ErrNotParticipant
	}

	if !transitionAllowed(session.Status, status) {
		return nil, schedule.ErrInvalidTransition
	}

	if err := uc.repo.UpdateSessionStatus(ctx, sessionID, session.Status, status); err != nil {
		return nil, err
	}

	uc.invalidateSession(ctx, sessionID)

	session.Status = status
	return session, nil
}

// ListSessions returns a user's sessions, soonest first
func (uc *ScheduleUC) ListSessions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Session, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	return uc.repo.ListSessions(ctx, userID, limit, offset)
}

// HandlePaymentCompleted marks the paid session after a settled payment.
// Subscription charges reference the subscription rather than a session;
// those are acknowledged without a session update.
func (uc *ScheduleUC) HandlePaymentCompleted(ctx context.Context, event *models.PaymentEvent) error {
	if event.SessionID == uuid.Nil {
		return nil
	}

	err := uc.repo.MarkSessionPaid(ctx, event.SessionID)
	if err != nil {
		if err == schedule.ErrNotFound {
			uc.log.WithField("session_id", event.SessionID).
				Debug("payment event for unknown session, ignoring")
			return nil
		}
		return err
	}

	uc.invalidateSession(ctx, event.SessionID)

	uc.log.WithFields(logrus.Fields{
		"session_id": event.SessionID,
		"payment_id": event.PaymentID,
	}).Info("session marked paid")

	return nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range sessionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (uc *ScheduleUC) invalidateSession(ctx context.Context, sessionID uuid.UUID) {
	cacheKey := fmt.Sprintf(constants.KeySessionDetail, sessionID)
	if err := uc.cache.Delete(ctx, cacheKey); err != nil {
		uc.log.WithError(err).Warn("failed to invalidate session cache")
	}
}
