package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Auth errors
	ErrMsgMissingInitData = "missing init data"
	ErrMsgInvalidInitData = "invalid init data"
	ErrMsgInvalidUser     = "invalid user payload"

	// Player errors
	ErrMsgPlayerNotFound  = "player not found"
	ErrMsgPlayerExists    = "player already exists"
	ErrMsgVersionConflict = "player row version conflict"

	// Daily reward errors
	ErrMsgAlreadyClaimed = "daily reward already claimed"

	// Save errors
	ErrMsgInvalidPayload = "invalid state payload"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Auth errors
	ErrMissingInitData = errors.New(ErrMsgMissingInitData)
	ErrInvalidInitData = errors.New(ErrMsgInvalidInitData)
	ErrInvalidUser     = errors.New(ErrMsgInvalidUser)

	// Player errors
	ErrPlayerNotFound  = errors.New(ErrMsgPlayerNotFound)
	ErrPlayerExists    = errors.New(ErrMsgPlayerExists)
	ErrVersionConflict = errors.New(ErrMsgVersionConflict)

	// Daily reward errors
	ErrAlreadyClaimed = errors.New(ErrMsgAlreadyClaimed)

	// Save errors
	ErrInvalidPayload = errors.New(ErrMsgInvalidPayload)
)
