package http

import (
	"campus-timetable/internal/manualslot"
	pkgErrors "campus-timetable/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case manualslot.ErrSlotNotFound:
		return pkgErrors.NewHTTPError(404, "slot not found")
	case manualslot.ErrMissingCourse:
		return pkgErrors.NewHTTPError(400, "course id is required")
	case manualslot.ErrInvalidDay:
		return pkgErrors.NewHTTPError(400, "day must be between 0 and 6")
	case manualslot.ErrInvalidTimeRange:
		return pkgErrors.NewHTTPError(400, "start must be before end within one day")
	case manualslot.ErrInvalidKind:
		return pkgErrors.NewHTTPError(400, "kind must be regular, tutorial, or lab")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
