package repository

import "campus-timetable/internal/model"

// CreateSlotOptions carries the fields for inserting a manual slot.
// The repository assigns the ID.
type CreateSlotOptions struct {
	CourseID    string
	Day         int
	StartMinute int
	EndMinute   int
	Kind        model.SessionKind
}

// ListSlotsOptions filters slot listing. An empty CourseID lists all slots.
type ListSlotsOptions struct {
	CourseID string
}
