package errs

import "errors"

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPasswordHash  = errors.New("empty password hash")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrChatNotFound = errors.New("chat not found")

	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyMessage = errors.New("message must have content or image")
)
