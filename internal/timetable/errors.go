package timetable

import "errors"

var (
	ErrConflictNotFound = errors.New("conflict not found")
	ErrInvalidKeepSide  = errors.New("invalid keep side")
	ErrCourseNotFound   = errors.New("course not found")
	ErrNotBuilt         = errors.New("timetable not built yet")
)
