// Package common defines sentinel errors shared by the store, services and
// CLI layers of CapitalChronicles. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Account errors.
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Causes wrapped together with ErrInvalidCredentials so the two login
	// failures stay distinguishable internally.
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect password")

	// Quest errors.
	ErrEmptyTitle      = errors.New("quest title is empty")
	ErrIndexOutOfRange = errors.New("index out of range")

	// Input validation (non-numeric or negative entries, blank credentials).
	ErrInvalidInput = errors.New("invalid input")

	// Storage errors (file missing, unwritable, driver failure).
	ErrPersistenceUnavailable = errors.New("persistence unavailable")

	ErrNotLoggedIn = errors.New("not logged in")
)
