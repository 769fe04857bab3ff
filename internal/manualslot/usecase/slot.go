package usecase

import (
	"context"
	"errors"

	"campus-timetable/internal/manualslot"
	repo "campus-timetable/internal/manualslot/repository"
	"campus-timetable/internal/model"
)

// CreateSlot validates and stores a new manual slot.
func (uc *implUseCase) CreateSlot(ctx context.Context, input manualslot.CreateSlotInput) (manualslot.Slot, error) {
	if input.CourseID == "" {
		return manualslot.Slot{}, manualslot.ErrMissingCourse
	}
	if err := validateTiming(input.Day, input.StartMinute, input.EndMinute); err != nil {
		return manualslot.Slot{}, err
	}
	kind := input.Kind
	if kind == "" {
		kind = model.SessionRegular
	}
	if err := validateKind(kind); err != nil {
		return manualslot.Slot{}, err
	}

	slot, err := uc.repo.CreateSlot(ctx, repo.CreateSlotOptions{
		CourseID:    input.CourseID,
		Day:         input.Day,
		StartMinute: input.StartMinute,
		EndMinute:   input.EndMinute,
		Kind:        kind,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateSlot: %v", err)
		return manualslot.Slot{}, err
	}
	return slot, nil
}

// UpdateSlot applies a partial update to an existing slot.
func (uc *implUseCase) UpdateSlot(ctx context.Context, input manualslot.UpdateSlotInput) (manualslot.Slot, error) {
	slot, err := uc.repo.GetSlot(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return manualslot.Slot{}, manualslot.ErrSlotNotFound
		}
		uc.l.Errorf(ctx, "uc.UpdateSlot GetSlot: %v", err)
		return manualslot.Slot{}, err
	}

	if input.Day != nil {
		slot.Day = *input.Day
	}
	if input.StartMinute != nil {
		slot.StartMinute = *input.StartMinute
	}
	if input.EndMinute != nil {
		slot.EndMinute = *input.EndMinute
	}
	if input.Kind != nil {
		slot.Kind = *input.Kind
	}

	if err := validateTiming(slot.Day, slot.StartMinute, slot.EndMinute); err != nil {
		return manualslot.Slot{}, err
	}
	if err := validateKind(slot.Kind); err != nil {
		return manualslot.Slot{}, err
	}

	updated, err := uc.repo.UpdateSlot(ctx, slot)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return manualslot.Slot{}, manualslot.ErrSlotNotFound
		}
		uc.l.Errorf(ctx, "uc.UpdateSlot: %v", err)
		return manualslot.Slot{}, err
	}
	return updated, nil
}

// DeleteSlot removes a slot by ID.
func (uc *implUseCase) DeleteSlot(ctx context.Context, id string) error {
	err := uc.repo.DeleteSlot(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return manualslot.ErrSlotNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSlot: %v", err)
	}
	return err
}

// ListSlots returns all slots for one course.
func (uc *implUseCase) ListSlots(ctx context.Context, courseID string) ([]manualslot.Slot, error) {
	if courseID == "" {
		return nil, manualslot.ErrMissingCourse
	}
	slots, err := uc.repo.ListSlots(ctx, repo.ListSlotsOptions{CourseID: courseID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSlots: %v", err)
		return nil, err
	}
	return slots, nil
}

// ListAllSlots returns every stored slot across courses.
func (uc *implUseCase) ListAllSlots(ctx context.Context) ([]manualslot.Slot, error) {
	slots, err := uc.repo.ListSlots(ctx, repo.ListSlotsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAllSlots: %v", err)
		return nil, err
	}
	return slots, nil
}

// SetPreference stores the per-course suppression flag.
func (uc *implUseCase) SetPreference(ctx context.Context, input manualslot.SetPreferenceInput) (manualslot.CoursePreference, error) {
	if input.CourseID == "" {
		return manualslot.CoursePreference{}, manualslot.ErrMissingCourse
	}
	pref, err := uc.repo.UpsertPreference(ctx, manualslot.CoursePreference{
		CourseID:     input.CourseID,
		SuppressAuto: input.SuppressAuto,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetPreference: %v", err)
		return manualslot.CoursePreference{}, err
	}
	return pref, nil
}

// GetPreference returns the preference for a course; a missing row means
// auto-inference stays enabled.
func (uc *implUseCase) GetPreference(ctx context.Context, courseID string) (manualslot.CoursePreference, error) {
	if courseID == "" {
		return manualslot.CoursePreference{}, manualslot.ErrMissingCourse
	}
	pref, err := uc.repo.GetPreference(ctx, courseID)
	if errors.Is(err, repo.ErrNotFound) {
		return manualslot.CoursePreference{CourseID: courseID, SuppressAuto: false}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetPreference: %v", err)
		return manualslot.CoursePreference{}, err
	}
	return pref, nil
}

// ListPreferences returns every stored per-course preference.
func (uc *implUseCase) ListPreferences(ctx context.Context) ([]manualslot.CoursePreference, error) {
	prefs, err := uc.repo.ListPreferences(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListPreferences: %v", err)
		return nil, err
	}
	return prefs, nil
}

func validateTiming(day, start, end int) error {
	if day < 0 || day > 6 {
		return manualslot.ErrInvalidDay
	}
	if start < 0 || end > model.MinutesPerDay || start >= end {
		return manualslot.ErrInvalidTimeRange
	}
	return nil
}

func validateKind(kind model.SessionKind) error {
	switch kind {
	case model.SessionRegular, model.SessionTutorial, model.SessionLab:
		return nil
	default:
		return manualslot.ErrInvalidKind
	}
}
