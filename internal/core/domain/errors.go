package domain

import "errors"

// Sentinel errors returned from use cases; the REST layer maps them to
// HTTP statuses.
var (
	ErrListingNotFound      = errors.New("listing not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailInUse           = errors.New("email already in use")
	ErrTokenInvalid         = errors.New("invalid jwt token")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrSavedSearchInvalid   = errors.New("saved search has no active criteria")
)
