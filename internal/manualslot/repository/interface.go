package repository

import (
	"context"

	"campus-timetable/internal/manualslot"
)

// Repository defines all data access methods for manual slots and
// per-course preferences.
type Repository interface {
	CreateSlot(ctx context.Context, opt CreateSlotOptions) (manualslot.Slot, error)
	GetSlot(ctx context.Context, id string) (manualslot.Slot, error)
	UpdateSlot(ctx context.Context, slot manualslot.Slot) (manualslot.Slot, error)
	DeleteSlot(ctx context.Context, id string) error
	ListSlots(ctx context.Context, opt ListSlotsOptions) ([]manualslot.Slot, error)

	UpsertPreference(ctx context.Context, pref manualslot.CoursePreference) (manualslot.CoursePreference, error)
	GetPreference(ctx context.Context, courseID string) (manualslot.CoursePreference, error)
	ListPreferences(ctx context.Context) ([]manualslot.CoursePreference, error)
}
