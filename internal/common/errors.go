// Package common defines shared constants and sentinel errors used across
// mykeychain components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (empty or malformed caller-supplied values).
	ErrInvalidInput = errors.New("invalid input")

	// Lookup errors (login or resource absent).
	ErrNotFound = errors.New("not found")

	// Uniqueness violations (duplicate login, resource or category).
	ErrAlreadyExists = errors.New("already exists")

	// Credential attempts exhausted.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Persisted state present but unreadable.
	ErrSerialization = errors.New("serialization error")
)
