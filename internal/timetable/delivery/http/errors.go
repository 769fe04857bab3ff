package http

import (
	"errors"

	"campus-timetable/internal/timetable"
	timetableUC "campus-timetable/internal/timetable/usecase"
	pkgErrors "campus-timetable/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, timetable.ErrConflictNotFound):
		return pkgErrors.NewHTTPError(404, "conflict not found")
	case errors.Is(err, timetable.ErrInvalidKeepSide):
		return pkgErrors.NewHTTPError(400, "keep must be manual or auto")
	case errors.Is(err, timetable.ErrCourseNotFound):
		return pkgErrors.NewHTTPError(404, "course not found")
	case errors.Is(err, timetable.ErrNotBuilt):
		return pkgErrors.NewHTTPError(409, "timetable not built yet")
	case errors.Is(err, timetableUC.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(501, "google calendar export not configured")
	default:
		return pkgErrors.NewHTTPError(502, "failed to reach the LMS")
	}
}
