package services

import "errors"

var (
	// ErrNotFound: the referenced id/number does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict: a unique constraint was violated (duplicate certificate number).
	ErrConflict = errors.New("duplicate record")
	// ErrInvalidCredentials covers unknown user, wrong password and missing or
	// expired sessions alike, so callers can't probe which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidStatus: a contact-message status outside open/closed.
	ErrInvalidStatus = errors.New("invalid status")
)
