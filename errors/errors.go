package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Lookup and validation failures, surfaced to the caller without retry.
	ErrSessionNotFound     = fmt.Errorf("session not found")
	ErrSessionExists       = fmt.Errorf("session already exists")
	ErrSessionTerminated   = fmt.Errorf("session terminated")
	ErrTooManySessions     = fmt.Errorf("too many active sessions")
	ErrPlayerNotInSession  = fmt.Errorf("player not in session")
	ErrPlayerAlreadyJoined = fmt.Errorf("player already joined session")
	ErrOptionNotFound      = fmt.Errorf("option not found")
	ErrOptionNotAvailable  = fmt.Errorf("option not available")
	ErrNoStartingStep      = fmt.Errorf("no starting step")
	ErrStepNotFound        = fmt.Errorf("step not found")
	ErrUnknownAction       = fmt.Errorf("unknown action type")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrInvalidContent      = fmt.Errorf("invalid campaign content")

	// Durable store lookups
	ErrCampaignNotFound  = fmt.Errorf("campaign not found")
	ErrCharacterNotFound = fmt.Errorf("character not found")
	ErrProgressNotFound  = fmt.Errorf("campaign progress not found")

	// ErrConcurrentModification is returned when the durable progress version
	// changed between read and write. Never retried by the core.
	ErrConcurrentModification = fmt.Errorf("concurrent modification")

	ErrSaveAdapterFailure = fmt.Errorf("save adapter failure")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
)
