package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleParent  = "parent"
)

// User represents a platform user (student, teacher or parent)
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullname" db:"fullname"`
	Role         string    `json:"role" db:"role"`
	PhoneNumber  string    `json:"phone_number,omitempty" db:"phone_number"`
	PhotoURL     string    `json:"photo_url,omitempty" db:"photo_url"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	TeacherInfo *Teacher `json:"teacher_info,omitempty"`
}

// Teacher represents additional information for users who teach
type Teacher struct {
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Subjects   string    `json:"subjects" db:"subjects"`
	Bio        string    `json:"bio,omitempty" db:"bio"`
	HourlyRate int64     `json:"hourly_rate" db:"hourly_rate"` // minor currency units
	Earnings   int64     `json:"earnings" db:"earnings"`       // accumulated, minor currency units
	Rating     float64   `json:"rating" db:"rating"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Geohash    string    `json:"geohash,omitempty" db:"geohash"`
}

// ParentLink associates a parent account with a student account
type ParentLink struct {
	ParentID  uuid.UUID `json:"parent_id" db:"parent_id"`
	StudentID uuid.UUID `json:"student_id" db:"student_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest is the payload for user registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"fullname" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginRequest is the payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful register or login
type AuthResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
}

// UpdateProfileRequest is the payload for profile updates
type UpdateProfileRequest struct {
	FullName    string   `json:"fullname,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	PhotoURL    string   `json:"photo_url,omitempty"`
	Subjects    string   `json:"subjects,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	HourlyRate  *int64   `json:"hourly_rate,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// NearbyTeacher is a teacher search result with distance information
type NearbyTeacher struct {
	Teacher    Teacher `json:"teacher"`
	FullName   string  `json:"fullname"`
	DistanceKm float64 `json:"distance_km"`
}
