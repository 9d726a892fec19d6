// Package common defines shared constants and sentinel errors used across
// GraceGather services. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Identity registry errors. Messages keep the wording shown to users
	// on the login and registration forms.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPendingApproval     = errors.New("account pending approval from super admin")
	ErrAccountDisabled     = errors.New("account has been disabled")
	ErrInvalidMinistryCode = errors.New("invalid ministry code")
	ErrUsernameTaken       = errors.New("username already taken")
)
