package service

import (
	"errors"
)

// Sentinel errors returned to the command layer for user-facing rendering.
// Store failures are wrapped with context instead and surface as generic
// failures.
var (
	// ErrInvalidEmail is returned when a registration address lacks an '@'.
	// The check is deliberately this loose; existing subscribers may hold
	// addresses a stricter validator would reject.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrDuplicateSubscription is returned when the exact
	// (user, guild, email) triple is already registered
	ErrDuplicateSubscription = errors.New("subscription already exists")

	// ErrNotFound is returned when an operation targets a row that does not
	// exist, such as removing an absent channel exclusion
	ErrNotFound = errors.New("not found")
)
