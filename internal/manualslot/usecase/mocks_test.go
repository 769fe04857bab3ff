package usecase_test

import (
	"context"

	"campus-timetable/internal/manualslot"
	repo "campus-timetable/internal/manualslot/repository"
)

// mockRepository is a function-field fake for repository.Repository.
type mockRepository struct {
	createSlotFunc func(opt repo.CreateSlotOptions) (manualslot.Slot, error)
	getSlotFunc    func(id string) (manualslot.Slot, error)
	updateSlotFunc func(slot manualslot.Slot) (manualslot.Slot, error)
	deleteSlotFunc func(id string) error
	listSlotsFunc  func(opt repo.ListSlotsOptions) ([]manualslot.Slot, error)
	upsertPrefFunc func(pref manualslot.CoursePreference) (manualslot.CoursePreference, error)
	getPrefFunc    func(courseID string) (manualslot.CoursePreference, error)
	listPrefsFunc  func() ([]manualslot.CoursePreference, error)
}

func (m *mockRepository) CreateSlot(_ context.Context, opt repo.CreateSlotOptions) (manualslot.Slot, error) {
	if m.createSlotFunc == nil {
		return manualslot.Slot{
			ID:          "generated",
			CourseID:    opt.CourseID,
			Day:         opt.Day,
			StartMinute: opt.StartMinute,
			EndMinute:   opt.EndMinute,
			Kind:        opt.Kind,
		}, nil
	}
	return m.createSlotFunc(opt)
}

func (m *mockRepository) GetSlot(_ context.Context, id string) (manualslot.Slot, error) {
	if m.getSlotFunc == nil {
		return manualslot.Slot{}, repo.ErrNotFound
	}
	return m.getSlotFunc(id)
}

func (m *mockRepository) UpdateSlot(_ context.Context, slot manualslot.Slot) (manualslot.Slot, error) {
	if m.updateSlotFunc == nil {
		return slot, nil
	}
	return m.updateSlotFunc(slot)
}

func (m *mockRepository) DeleteSlot(_ context.Context, id string) error {
	if m.deleteSlotFunc == nil {
		return nil
	}
	return m.deleteSlotFunc(id)
}

func (m *mockRepository) ListSlots(_ context.Context, opt repo.ListSlotsOptions) ([]manualslot.Slot, error) {
	if m.listSlotsFunc == nil {
		return nil, nil
	}
	return m.listSlotsFunc(opt)
}

func (m *mockRepository) UpsertPreference(_ context.Context, pref manualslot.CoursePreference) (manualslot.CoursePreference, error) {
	if m.upsertPrefFunc == nil {
		return pref, nil
	}
	return m.upsertPrefFunc(pref)
}

func (m *mockRepository) GetPreference(_ context.Context, courseID string) (manualslot.CoursePreference, error) {
	if m.getPrefFunc == nil {
		return manualslot.CoursePreference{}, repo.ErrNotFound
	}
	return m.getPrefFunc(courseID)
}

func (m *mockRepository) ListPreferences(_ context.Context) ([]manualslot.CoursePreference, error) {
	if m.listPrefsFunc == nil {
		return nil, nil
	}
	return m.listPrefsFunc()
}

// mockLogger satisfies pkg/log.Logger while staying silent.
type mockLogger struct{}

func (*mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (*mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (*mockLogger) Info(ctx context.Context, args ...any)                   {}
func (*mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (*mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (*mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (*mockLogger) Error(ctx context.Context, args ...any)                  {}
func (*mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
