package timetable

import (
	"time"

	"campus-timetable/internal/attendance"
	"campus-timetable/internal/inference"
	"campus-timetable/internal/manualslot"
	"campus-timetable/internal/model"
)

// ResolutionState tracks where a conflict is in its lifecycle.
type ResolutionState string

const (
	ResolutionUnresolved ResolutionState = "unresolved"
	ResolutionKeepManual ResolutionState = "resolved_keep_manual"
	ResolutionKeepAuto   ResolutionState = "resolved_keep_auto"
)

// KeepSide names which slot of a conflict survives resolution.
type KeepSide string

const (
	KeepManual KeepSide = "manual"
	KeepAuto   KeepSide = "auto"
)

// Slot is one entry of the merged weekly timetable. Manual slots carry
// the ID of their stored counterpart; inferred slots get a deterministic
// ID derived from course, day, and start time.
type Slot struct {
	ID             string
	CourseID       string
	CourseName     string
	Day            int // 0 (Sunday) .. 6 (Saturday)
	StartMinute    int
	EndMinute      int
	Kind           model.SessionKind
	IsManual       bool
	IsCustomCourse bool
}

// Conflict pairs a manual slot with an overlapping inferred slot.
type Conflict struct {
	Manual Slot
	Auto   Slot
	State  ResolutionState
}

// BuildInput carries everything a timetable build needs. RecordsByCourse
// and ManualSlotsByCourse are keyed by course ID.
type BuildInput struct {
	Courses               []model.Course
	RecordsByCourse       map[string][]attendance.Record
	ManualSlotsByCourse   map[string][]manualslot.Slot
	SuppressAutoByCourse  map[string]bool
	Now                   time.Time
	StartToleranceMinutes int
	Location              *time.Location
}

// BuildOutput is the merged timetable plus diagnostics. Slots includes
// both sides of every conflict; CleanSlots applies resolutions.
type BuildOutput struct {
	Slots         []Slot
	Conflicts     []Conflict
	ParseByCourse map[string]inference.ParseStats
	BuiltAt       time.Time
}
