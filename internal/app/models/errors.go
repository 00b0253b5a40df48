package models

import "errors"

// Domain specific errors for the trip planning pipeline.
var (
	ErrValidation         = errors.New("validation failed")
	ErrMissingAPIKey      = errors.New("generation credential is not configured")
	ErrServiceUnavailable = errors.New("generation service unavailable")
	ErrInvalidResponse    = errors.New("generation response is invalid")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrInvalidTransition  = errors.New("view state transition not allowed")
	ErrNoActivePlan       = errors.New("no plan is active for this session")
	ErrExportUnavailable  = errors.New("plan view is not available for export")
)

// GenerationFailedMessage is the single user-facing message for every
// generation failure. The internal distinction between a missing
// credential, a service failure and a malformed response is kept for
// logs and metrics only.
const GenerationFailedMessage = "Failed to generate plan. Please try again."
