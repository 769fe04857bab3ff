package manualslot

import "errors"

// Domain-specific errors for the manualslot package.
var (
	ErrSlotNotFound     = errors.New("manual slot not found")
	ErrMissingCourse    = errors.New("course id is required")
	ErrInvalidDay       = errors.New("day must be between 0 and 6")
	ErrInvalidTimeRange = errors.New("start must be before end, within one day")
	ErrInvalidKind      = errors.New("kind must be regular, tutorial or lab")
)
