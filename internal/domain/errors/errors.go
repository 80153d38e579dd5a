package errors

import "errors"

var (
	// ErrValidation covers local pre-submission field checks. Always
	// recoverable by correcting the draft in place.
	ErrValidation = errors.New("validation failed")
	// ErrSubmission indicates the durable order write failed.
	ErrSubmission = errors.New("order submission failed")
	// ErrUpdate indicates a status change could not be persisted.
	ErrUpdate = errors.New("order update failed")
	// ErrAuth indicates the identity provider rejected or failed the sign-in.
	ErrAuth = errors.New("authentication failed")

	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSubmitInFlight    = errors.New("submission already in flight")
)
