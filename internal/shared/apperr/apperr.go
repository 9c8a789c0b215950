package apperr

import "errors"

// Sentinel errors shared across services. Handlers translate them into the
// uniform {success:false, error} envelope with the matching HTTP status.
var (
	// ErrValidation marks bad or missing user input (HTTP 400).
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks an unknown session, lead or lawyer id (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrPrecondition marks an operation attempted before required prior
	// state exists, e.g. scheduling without contact info (HTTP 409).
	ErrPrecondition = errors.New("precondition failed")

	// ErrExternalService marks an AI provider failure. The conversation
	// engine always absorbs it into a fallback response; it must never
	// reach an HTTP handler.
	ErrExternalService = errors.New("external service error")
)

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsPrecondition(err error) bool { return errors.Is(err, ErrPrecondition) }

func IsExternalService(err error) bool { return errors.Is(err, ErrExternalService) }
