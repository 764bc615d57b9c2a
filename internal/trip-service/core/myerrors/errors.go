package myerrors

import "errors"

var (
	// ErrInvalidCredentials means the credential exchange itself failed.
	// Reported as "invalid credentials", no retry.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionExpired is returned when an authenticated call comes back
	// 401. The stored token is already cleared by then.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotAuthenticated is returned when an operation needs a session and
	// none is cached.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrOutOfOrderCheckIn is the local validation rejection for a check-in
	// that does not match the current next action. It never reaches the
	// network.
	ErrOutOfOrderCheckIn = errors.New("complete check-ins in order")
)
