// Package common contains shared constants and sentinel errors used across
// LookDine client and server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth-flow errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("user already exists")

	// Validation errors (missing or malformed fields).
	ErrValidation = errors.New("validation error")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
