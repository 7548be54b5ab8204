package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bimbelin/bimbelin/internal/pkg/constants"
	"github.com/bimbelin/bimbelin/internal/pkg/database"
)

// RedisLocationRepo implements users.TeacherLocationRepo on a Redis geo set
type RedisLocationRepo struct {
	redis *database.RedisClient
}

// NewLocationRepository creates a new teacher location repository
func NewLocationRepository(client *database.RedisClient) *RedisLocationRepo {
	return &RedisLocationRepo{redis: client}
}

// UpdateLocation stores a teacher's position in the geo index
func (r *RedisLocationRepo) UpdateLocation(ctx context.Context, teacherID uuid.UUID, latitude, longitude float64) error {
	if err := r.redis.GeoAdd(ctx, constants.KeyTeacherGeo, longitude, latitude, teacherID.String()); err != nil {
		return fmt.Errorf("failed to update teacher location: %w", err)
	}
	return nil
}

// RemoveLocation drops a teacher from the geo index
func (r *RedisLocationRepo) RemoveLocation(ctx context.Context, teacherID uuid.UUID) error {
	if err := r.redis.GeoRemove(ctx, constants.KeyTeacherGeo, teacherID.String()); err != nil {
		return fmt.Errorf("failed to remove teacher location: %w", err)
	}
	return nil
}

// FindNearby returns teacher IDs within radiusKm of a point, nearest first
func (r *RedisLocationRepo) FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) (map[uuid.UUID]float64, []uuid.UUID, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyTeacherGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search nearby teachers: %w", err)
	}

	distances := make(map[uuid.UUID]float64, len(locations))
	ordered := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		teacherID, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		distances[teacherID] = loc.Dist
		ordered = append(ordered, teacherID)
	}

	return distances, ordered, nil
}
