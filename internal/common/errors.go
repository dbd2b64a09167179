// Package common defines shared constants and sentinel errors used across
// client and server layers of TierForum. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorValidation         = errors.New("validation error")
	ErrorInvalidCredentials = errors.New("invalid email/password")

	// Authorization outcomes.
	ErrorUnauthenticated = errors.New("unauthorized")
	ErrorForbidden       = errors.New("forbidden")

	// Token service misconfiguration.
	ErrMisconfiguredSecret  = errors.New("signing secret is not configured")
	ErrInvalidTokenValidity = errors.New("token validity must be positive")
)
