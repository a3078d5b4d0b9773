package errorvalues

import "errors"

var (
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrWrongCredentials = errors.New("invalid credentials")
	ErrEmptyText        = errors.New("task text is empty")
	ErrInvalidDate      = errors.New("date is not a valid YYYY-MM-DD day")
	ErrInvalidToken     = errors.New("invalid token")
)
