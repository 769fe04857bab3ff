package timetable

import (
	"context"

	"campus-timetable/internal/inference"
)

// RebuildOptions tunes one timetable rebuild.
type RebuildOptions struct {
	// BypassCache forces fresh LMS fetches instead of cached records.
	BypassCache bool
}

// UseCase exposes timetable building, conflict resolution, and exports.
type UseCase interface {
	// Rebuild fetches records, runs inference, merges manual slots, and
	// replays surviving resolutions from the previous build.
	Rebuild(ctx context.Context, opts RebuildOptions) (BuildOutput, error)
	// Current returns the latest build, or ErrNotBuilt before the first one.
	Current(ctx context.Context) (BuildOutput, error)
	// CleanTimetable returns the latest build's slots with resolutions applied.
	CleanTimetable(ctx context.Context) ([]Slot, error)

	ResolveConflict(ctx context.Context, index int, keep KeepSide) (BuildOutput, error)
	ResolveAll(ctx context.Context, keep KeepSide) (BuildOutput, error)
	RevertResolution(ctx context.Context, index int) (BuildOutput, error)

	// CourseInference exposes the full per-course engine output, including
	// rejected candidates and parse diagnostics.
	CourseInference(ctx context.Context, courseID string) (inference.Result, error)

	// ExportICS renders the clean timetable as an iCalendar document.
	ExportICS(ctx context.Context) ([]byte, error)
	// ExportGCal pushes the clean timetable to Google Calendar as weekly
	// recurring events and reports how many were created.
	ExportGCal(ctx context.Context) (int, error)
}
