package prospect

import "errors"

var (
	ErrInvalidEmail  = errors.New("invalid email")
	ErrFileNotFound  = errors.New("prospect file not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateFile = errors.New("prospect file already registered")
)
