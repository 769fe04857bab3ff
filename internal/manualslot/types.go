package manualslot

import "campus-timetable/internal/model"

// Slot is one user-authored recurring weekly class block.
type Slot struct {
	ID          string            `json:"id"`
	CourseID    string            `json:"course_id"`
	Day         int               `json:"day"` // 0 (Sunday) .. 6 (Saturday)
	StartMinute int               `json:"start_minute"`
	EndMinute   int               `json:"end_minute"`
	Kind        model.SessionKind `json:"kind"`
}

// CoursePreference holds the per-course scheduling preferences.
// SuppressAuto disables LMS inference for the course entirely so only
// manual slots appear in the merged timetable.
type CoursePreference struct {
	CourseID     string `json:"course_id"`
	SuppressAuto bool   `json:"suppress_auto"`
}

// CreateSlotInput is the input for creating a manual slot.
type CreateSlotInput struct {
	CourseID    string
	Day         int
	StartMinute int
	EndMinute   int
	Kind        model.SessionKind
}

// UpdateSlotInput is the input for a partial manual slot update.
type UpdateSlotInput struct {
	ID          string
	Day         *int
	StartMinute *int
	EndMinute   *int
	Kind        *model.SessionKind
}

// SetPreferenceInput toggles the per-course suppression flag.
type SetPreferenceInput struct {
	CourseID     string
	SuppressAuto bool
}
