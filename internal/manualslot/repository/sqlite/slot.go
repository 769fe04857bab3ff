package sqlite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-timetable/internal/manualslot"
	repo "campus-timetable/internal/manualslot/repository"
	"campus-timetable/internal/model"
)

// CreateSlot inserts a new manual slot and returns the created entity.
func (r *implRepository) CreateSlot(ctx context.Context, opt repo.CreateSlotOptions) (manualslot.Slot, error) {
	row := slotRow{
		ID:          uuid.NewString(),
		CourseID:    opt.CourseID,
		Day:         opt.Day,
		StartMinute: opt.StartMinute,
		EndMinute:   opt.EndMinute,
		Kind:        string(opt.Kind),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "sqlite.CreateSlot: %v", err)
		return manualslot.Slot{}, repo.ErrFailedToInsert
	}
	return toSlot(row), nil
}

// GetSlot fetches a single slot by ID.
func (r *implRepository) GetSlot(ctx context.Context, id string) (manualslot.Slot, error) {
	var row slotRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return manualslot.Slot{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlite.GetSlot: %v", err)
		return manualslot.Slot{}, repo.ErrFailedToQuery
	}
	return toSlot(row), nil
}

// UpdateSlot persists the given slot wholesale.
func (r *implRepository) UpdateSlot(ctx context.Context, slot manualslot.Slot) (manualslot.Slot, error) {
	res := r.db.WithContext(ctx).Model(&slotRow{}).Where("id = ?", slot.ID).Updates(map[string]any{
		"course_id":    slot.CourseID,
		"day":          slot.Day,
		"start_minute": slot.StartMinute,
		"end_minute":   slot.EndMinute,
		"kind":         string(slot.Kind),
	})
	if res.Error != nil {
		r.l.Errorf(ctx, "sqlite.UpdateSlot: %v", res.Error)
		return manualslot.Slot{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return manualslot.Slot{}, repo.ErrNotFound
	}
	return slot, nil
}

// DeleteSlot removes a slot by ID.
func (r *implRepository) DeleteSlot(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&slotRow{}, "id = ?", id)
	if res.Error != nil {
		r.l.Errorf(ctx, "sqlite.DeleteSlot: %v", res.Error)
		return repo.ErrFailedToDelete
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ListSlots lists slots, optionally filtered by course, ordered by
// (day, start) so output is stable.
func (r *implRepository) ListSlots(ctx context.Context, opt repo.ListSlotsOptions) ([]manualslot.Slot, error) {
	q := r.db.WithContext(ctx).Model(&slotRow{}).Order("day, start_minute, id")
	if opt.CourseID != "" {
		q = q.Where("course_id = ?", opt.CourseID)
	}

	var rows []slotRow
	if err := q.Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "sqlite.ListSlots: %v", err)
		return nil, repo.ErrFailedToQuery
	}

	slots := make([]manualslot.Slot, 0, len(rows))
	for _, row := range rows {
		slots = append(slots, toSlot(row))
	}
	return slots, nil
}

// UpsertPreference stores the per-course preference, inserting or updating.
func (r *implRepository) UpsertPreference(ctx context.Context, pref manualslot.CoursePreference) (manualslot.CoursePreference, error) {
	row := preferenceRow{CourseID: pref.CourseID, SuppressAuto: pref.SuppressAuto}
	err := r.db.WithContext(ctx).Save(&row).Error
	if err != nil {
		r.l.Errorf(ctx, "sqlite.UpsertPreference: %v", err)
		return manualslot.CoursePreference{}, repo.ErrFailedToUpdate
	}
	return pref, nil
}

// GetPreference fetches the preference for one course.
func (r *implRepository) GetPreference(ctx context.Context, courseID string) (manualslot.CoursePreference, error) {
	var row preferenceRow
	err := r.db.WithContext(ctx).First(&row, "course_id = ?", courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return manualslot.CoursePreference{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlite.GetPreference: %v", err)
		return manualslot.CoursePreference{}, repo.ErrFailedToQuery
	}
	return manualslot.CoursePreference{CourseID: row.CourseID, SuppressAuto: row.SuppressAuto}, nil
}

// ListPreferences returns every stored per-course preference.
func (r *implRepository) ListPreferences(ctx context.Context) ([]manualslot.CoursePreference, error) {
	var rows []preferenceRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "sqlite.ListPreferences: %v", err)
		return nil, repo.ErrFailedToQuery
	}
	prefs := make([]manualslot.CoursePreference, 0, len(rows))
	for _, row := range rows {
		prefs = append(prefs, manualslot.CoursePreference{CourseID: row.CourseID, SuppressAuto: row.SuppressAuto})
	}
	return prefs, nil
}

func toSlot(row slotRow) manualslot.Slot {
	return manualslot.Slot{
		ID:          row.ID,
		CourseID:    row.CourseID,
		Day:         row.Day,
		StartMinute: row.StartMinute,
		EndMinute:   row.EndMinute,
		Kind:        model.SessionKind(row.Kind),
	}
}
