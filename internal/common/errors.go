// Package common defines shared constants and sentinel errors used across
// the wordsearch server and client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Account errors.
	ErrDuplicateAccount = errors.New("account already exists")
	ErrUnknownAccount   = errors.New("unknown account")
	ErrBadCredential    = errors.New("bad credential")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStorageFailure wraps any unexpected persistence error. The original
	// cause stays in the chain for logging but is never sent to clients.
	ErrStorageFailure = errors.New("storage failure")
)
