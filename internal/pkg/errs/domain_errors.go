package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Automation errors
	ErrRuleNotFound   = errors.New("automation rule not found")
	ErrChannelFailure = errors.New("channel call failed")

	// Slot errors
	ErrInvalidSlotDuration = errors.New("invalid slot duration")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
