package custom_errors

import "errors"

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoUpdateRows       = errors.New("no fields to update")
	ErrDatabaseQuery      = errors.New("database query error")
	ErrDatabaseScan       = errors.New("database scan error")
)
