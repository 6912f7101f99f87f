package shared

import "errors"

var (

	// auth-specific errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")

	// validation errors
	ErrEmptyCredentials  = errors.New("username and password are required")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrNotPositiveNumber = errors.New("value must be a positive number")
)

// IsValidation reports whether err is a user-correctable input error,
// shown as a flash message rather than logged as a failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyCredentials) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrNotPositiveNumber)
}
