package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("courier profile not found")
	ErrCodeNotFound    = errors.New("verification code not found")
)
