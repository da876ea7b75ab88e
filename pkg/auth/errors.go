package auth

import "errors"

var (
	// ErrMissingCredentials is returned when the email or the password is empty.
	ErrMissingCredentials = errors.New("need email and password")
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("Invalid email and password combination") //nolint:staticcheck // returned verbatim to clients
)

// Store errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// ErrNoIdentity is returned by handlers that expect the gate to have run.
var ErrNoIdentity = errors.New("no identity in request context")
