package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
)

// GetTeacherEarnings returns a teacher's profile including accumulated earnings
func (uc *UserUC) GetTeacherEarnings(ctx context.Context, teacherID uuid.UUID) (*models.Teacher, error) {
	return uc.repo.GetTeacherProfile(ctx, teacherID)
}

// NearbyTeachers finds teachers within radiusKm of a point, nearest first.
// A non-positive radius falls back to the configured default.
func (uc *UserUC) NearbyTeachers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyTeacher, error) {
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Teachers.SearchRadiusKm
	}

	distances, ordered, err := uc.locationRepo.FindNearby(ctx, latitude, longitude, radiusKm)
	if err != nil {
		return nil, err
	}

	results := make([]models.NearbyTeacher, 0, len(ordered))
	for _, teacherID := range ordered {
		user, err := uc.repo.GetUserByID(ctx, teacherID)
		if err != nil {
			// Geo index entries can outlive accounts
			uc.log.WithError(err).WithField("teacher_id", teacherID).
				Warn("skipping stale geo index entry")
			continue
		}
		if user.TeacherInfo == nil {
			continue
		}

		results = append(results, models.NearbyTeacher{
			Teacher:    *user.TeacherInfo,
			FullName:   user.FullName,
			DistanceKm: distances[teacherID],
		})
	}

	return results, nil
}
