package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbelin/bimbelin/internal/pkg/models"
	"github.com/bimbelin/bimbelin/services/users"
)

func TestUpdateProfile_TeacherLocationChange(t *testing.T) {
	uc, mockRepo, mockLocation := setupUserUC(t)

	teacherID := uuid.New()
	lat, lng := -6.2088, 106.8456
	rate := int64(150000)

	teacherUser := &models.User{
		ID:       teacherID,
		Email:    "guru@example.com",
		FullName: "Ibu Sari",
		Role:     models.RoleTeacher,
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), teacherID).Return(teacherUser, nil)
	mockRepo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetTeacherProfile(gomock.Any(), teacherID).
		Return(&models.Teacher{UserID: teacherID, Subjects: "math"}, nil)
	mockRepo.EXPECT().
		UpsertTeacherProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, teacher *models.Teacher) error {
			assert.Equal(t, lat, teacher.Latitude)
			assert.Equal(t, lng, teacher.Longitude)
			assert.Equal(t, rate, teacher.HourlyRate)
			assert.Equal(t, "math", teacher.Subjects)
			assert.Len(t, teacher.Geohash, 6)
			return nil
		})
	mockLocation.EXPECT().
		UpdateLocation(gomock.Any(), teacherID, lat, lng).
		Return(nil)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), teacherID).Return(teacherUser, nil)

	_, err := uc.UpdateProfile(context.Background(), teacherID, &models.UpdateProfileRequest{
		HourlyRate: &rate,
		Latitude:   &lat,
		Longitude:  &lng,
	})
	require.NoError(t, err)
}

func TestUpdateProfile_StudentSkipsTeacherFields(t *testing.T) {
	uc, mockRepo, _ := setupUserUC(t)

	studentID := uuid.New()
	student := &models.User{ID: studentID, Role: models.RoleStudent, FullName: "Adi"}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), studentID).Return(student, nil)
	mockRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, "Adi Nugroho", user.FullName)
			return nil
		})
	mockRepo.EXPECT().GetUserByID(gomock.Any(), studentID).Return(student, nil)

	_, err := uc.UpdateProfile(context.Background(), studentID, &models.UpdateProfileRequest{
		FullName: "Adi Nugroho",
	})
	require.NoError(t, err)
}

func TestLinkChild(t *testing.T) {
	parentID := uuid.New()
	studentID := uuid.New()

	parent := &models.User{ID: parentID, Role: models.RoleParent}
	student := &models.User{ID: studentID, Role: models.RoleStudent}

	t.Run("Success", func(t *testing.T) {
		uc, mockRepo, _ := setupUserUC(t)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), parentID).Return(parent, nil)
		mockRepo.EXPECT().GetUserByID(gomock.Any(), studentID).Return(student, nil)
		mockRepo.EXPECT().IsParentOf(gomock.Any(), parentID, studentID).Return(false, nil)
		mockRepo.EXPECT().CreateParentLink(gomock.Any(), parentID, studentID).Return(nil)

		assert.NoError(t, uc.LinkChild(context.Background(), parentID, studentID))
	})

	t.Run("Parent Role Required", func(t *testing.T) {
		uc, mockRepo, _ := setupUserUC(t)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), studentID).Return(student, nil)

		err := uc.LinkChild(context.Background(), studentID, parentID)
		assert.ErrorIs(t, err, users.ErrInvalidRole)
	})

	t.Run("Target Must Be Student", func(t *testing.T) {
		uc, mockRepo, _ := setupUserUC(t)

		teacher := &models.User{ID: uuid.New(), Role: models.RoleTeacher}
		mockRepo.EXPECT().GetUserByID(gomock.Any(), parentID).Return(parent, nil)
		mockRepo.EXPECT().GetUserByID(gomock.Any(), teacher.ID).Return(teacher, nil)

		err := uc.LinkChild(context.Background(), parentID, teacher.ID)
		assert.ErrorIs(t, err, users.ErrInvalidRole)
	})

	t.Run("Duplicate Link", func(t *testing.T) {
		uc, mockRepo, _ := setupUserUC(t)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), parentID).Return(parent, nil)
		mockRepo.EXPECT().GetUserByID(gomock.Any(), studentID).Return(student, nil)
		mockRepo.EXPECT().IsParentOf(gomock.Any(), parentID, studentID).Return(true, nil)

		err := uc.LinkChild(context.Background(), parentID, studentID)
		assert.ErrorIs(t, err, users.ErrLinkExists)
	})
}

func TestNearbyTeachers(t *testing.T) {
	uc, mockRepo, mockLocation := setupUserUC(t)

	near := uuid.New()
	far := uuid.New()
	stale := uuid.New()

	mockLocation.EXPECT().
		FindNearby(gomock.Any(), -6.2, 106.8, 5.0).
		Return(map[uuid.UUID]float64{near: 0.8, far: 3.2, stale: 4.0},
			[]uuid.UUID{near, far, stale}, nil)

	mockRepo.EXPECT().GetUserByID(gomock.Any(), near).Return(&models.User{
		ID: near, FullName: "Ibu Sari", Role: models.RoleTeacher,
		TeacherInfo: &models.Teacher{UserID: near, HourlyRate: 150000},
	}, nil)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), far).Return(&models.User{
		ID: far, FullName: "Pak Dodi", Role: models.RoleTeacher,
		TeacherInfo: &models.Teacher{UserID: far, HourlyRate: 120000},
	}, nil)
	mockRepo.EXPECT().GetUserByID(gomock.Any(), stale).Return(nil, users.ErrNotFound)

	// Zero radius falls back to the configured default of 5km
	results, err := uc.NearbyTeachers(context.Background(), -6.2, 106.8, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Ibu Sari", results[0].FullName)
	assert.Equal(t, 0.8, results[0].DistanceKm)
	assert.Equal(t, "Pak Dodi", results[1].FullName)
}
