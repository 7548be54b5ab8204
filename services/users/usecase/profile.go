package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/internal/utils"
	"github.com/bimbelin/bimbelin/services/users"
)

// Precision 6 buckets teachers into roughly 1.2km x 0.6km cells,
// enough for a neighbourhood label without exposing an exact address.
const teacherGeohashPrecision = 6

// GetProfile returns a user's profile
func (uc *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.repo.GetUserByID(ctx, userID)
}

// UpdateProfile applies profile changes. Teacher-specific fields update the
// teacher profile and, when coordinates change, the geo index.
func (uc *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.PhotoURL != "" {
		user.PhotoURL = req.PhotoURL
	}
	if err := uc.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	if user.Role == models.RoleTeacher {
		if err := uc.updateTeacherProfile(ctx, user, req); err != nil {
			return nil, err
		}
	}

	return uc.repo.GetUserByID(ctx, userID)
}

func (uc *UserUC) updateTeacherProfile(ctx context.Context, user *models.User, req *models.UpdateProfileRequest) error {
	teacher, err := uc.repo.GetTeacherProfile(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, users.ErrNotTeacher) {
			return err
		}
		teacher = &models.Teacher{UserID: user.ID}
	}

	if req.Subjects != "" {
		teacher.Subjects = req.Subjects
	}
	if req.Bio != "" {
		teacher.Bio = req.Bio
	}
	if req.HourlyRate != nil {
		teacher.HourlyRate = *req.HourlyRate
	}

	locationChanged := false
	if req.Latitude != nil && req.Longitude != nil {
		teacher.Latitude = *req.Latitude
		teacher.Longitude = *req.Longitude
		teacher.Geohash = utils.EncodeLocation(utils.GeoPoint{
			Latitude:  teacher.Latitude,
			Longitude: teacher.Longitude,
		}, teacherGeohashPrecision)
		locationChanged = true
	}

	if err := uc.repo.UpsertTeacherProfile(ctx, teacher); err != nil {
		return err
	}

	if locationChanged {
		if err := uc.locationRepo.UpdateLocation(ctx, user.ID, teacher.Latitude, teacher.Longitude); err != nil {
			// The database row is the source of truth; a stale geo index
			// only degrades search results.
			uc.log.WithError(err).WithField("teacher_id", user.ID).
				Warn("failed to update teacher geo index")
		}
	}

	return nil
}

// LinkChild associates a parent account with a student account
func (uc *UserUC) LinkChild(ctx context.Context, parentID, studentID uuid.UUID) error {
	parent, err := uc.repo.GetUserByID(ctx, parentID)
	if err != nil {
		return err
	}
	if parent.Role != models.RoleParent {
		return users.ErrInvalidRole
	}

	student, err := uc.repo.GetUserByID(ctx, studentID)
	if err != nil {
		return err
	}
	if student.Role != models.RoleStudent {
		return users.ErrInvalidRole
	}

	exists, err := uc.repo.IsParentOf(ctx, parentID, studentID)
	if err != nil {
		return err
	}
	if exists {
		return users.ErrLinkExists
	}

	return uc.repo.CreateParentLink(ctx, parentID, studentID)
}

// ListChildren returns the students linked to a parent
func (uc *UserUC) ListChildren(ctx context.Context, parentID uuid.UUID) ([]models.User, error) {
	return uc.repo.ListChildren(ctx, parentID)
}
