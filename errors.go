package finance

import "errors"

var (
	// ErrDuplicateEmail is returned when registering an email already in use.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned when login fails, whatever the reason.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned by stores when no user matches a lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotLoggedIn is returned by operations that require a session.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrInvalidRequest wraps request validation failures.
	ErrInvalidRequest = errors.New("invalid request")
)
