package manualslot

import "context"

// UseCase defines the business logic interface for user-authored slots.
type UseCase interface {
	// CreateSlot validates and stores a new manual slot.
	CreateSlot(ctx context.Context, input CreateSlotInput) (Slot, error)

	// UpdateSlot applies a partial update to an existing slot.
	UpdateSlot(ctx context.Context, input UpdateSlotInput) (Slot, error)

	// DeleteSlot removes a slot by ID.
	DeleteSlot(ctx context.Context, id string) error

	// ListSlots returns all slots for one course.
	ListSlots(ctx context.Context, courseID string) ([]Slot, error)

	// ListAllSlots returns every stored slot across courses.
	ListAllSlots(ctx context.Context) ([]Slot, error)

	// SetPreference stores the per-course suppression flag.
	SetPreference(ctx context.Context, input SetPreferenceInput) (CoursePreference, error)

	// GetPreference returns the preference for a course, defaulting to
	// auto-inference enabled when none was stored.
	GetPreference(ctx context.Context, courseID string) (CoursePreference, error)

	// ListPreferences returns every stored per-course preference.
	ListPreferences(ctx context.Context) ([]CoursePreference, error)
}
