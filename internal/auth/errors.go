package auth

import "errors"

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidUsername    = errors.New("username contains invalid characters")
	ErrInvalidToken       = errors.New("invalid token")
)
