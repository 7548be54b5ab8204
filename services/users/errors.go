package users

import "errors"

// Sentinel errors for the users service
var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNotTeacher         = errors.New("user is not a teacher")
	ErrLinkExists         = errors.New("parent link already exists")
)
