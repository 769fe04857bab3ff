package usecase_test

import (
	"context"

	"campus-timetable/internal/attendance"
	attendanceRepo "campus-timetable/internal/attendance/repository"
	"campus-timetable/internal/manualslot"
	"campus-timetable/internal/model"
	"campus-timetable/pkg/gcalendar"
)

// mockSource is a function-field fake for repository.RecordSource.
type mockSource struct {
	listCoursesFunc func() ([]model.Course, error)
	listRecordsFunc func(opt attendanceRepo.ListSessionRecordsOptions) ([]attendance.Record, error)
}

func (m *mockSource) ListCourses(_ context.Context) ([]model.Course, error) {
	if m.listCoursesFunc == nil {
		return nil, nil
	}
	return m.listCoursesFunc()
}

func (m *mockSource) ListSessionRecords(_ context.Context, opt attendanceRepo.ListSessionRecordsOptions) ([]attendance.Record, error) {
	if m.listRecordsFunc == nil {
		return nil, nil
	}
	return m.listRecordsFunc(opt)
}

// mockSlots is a function-field fake for manualslot.UseCase.
type mockSlots struct {
	listAllFunc   func() ([]manualslot.Slot, error)
	listPrefsFunc func() ([]manualslot.CoursePreference, error)
}

func (m *mockSlots) CreateSlot(_ context.Context, input manualslot.CreateSlotInput) (manualslot.Slot, error) {
	return manualslot.Slot{}, nil
}

func (m *mockSlots) UpdateSlot(_ context.Context, input manualslot.UpdateSlotInput) (manualslot.Slot, error) {
	return manualslot.Slot{}, nil
}

func (m *mockSlots) DeleteSlot(_ context.Context, id string) error { return nil }

func (m *mockSlots) ListSlots(_ context.Context, courseID string) ([]manualslot.Slot, error) {
	return nil, nil
}

func (m *mockSlots) ListAllSlots(_ context.Context) ([]manualslot.Slot, error) {
	if m.listAllFunc == nil {
		return nil, nil
	}
	return m.listAllFunc()
}

func (m *mockSlots) SetPreference(_ context.Context, input manualslot.SetPreferenceInput) (manualslot.CoursePreference, error) {
	return manualslot.CoursePreference{}, nil
}

func (m *mockSlots) GetPreference(_ context.Context, courseID string) (manualslot.CoursePreference, error) {
	return manualslot.CoursePreference{CourseID: courseID}, nil
}

func (m *mockSlots) ListPreferences(_ context.Context) ([]manualslot.CoursePreference, error) {
	if m.listPrefsFunc == nil {
		return nil, nil
	}
	return m.listPrefsFunc()
}

// mockCalendar records recurring events instead of calling Google.
type mockCalendar struct {
	createFunc func(req gcalendar.CreateRecurringEventRequest) (*gcalendar.Event, error)
	created    []gcalendar.CreateRecurringEventRequest
}

func (m *mockCalendar) CreateRecurringEvent(_ context.Context, req gcalendar.CreateRecurringEventRequest) (*gcalendar.Event, error) {
	m.created = append(m.created, req)
	if m.createFunc == nil {
		return &gcalendar.Event{ID: "event-1"}, nil
	}
	return m.createFunc(req)
}

// mockLogger satisfies pkg/log.Logger while staying silent.
type mockLogger struct{}

func (*mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (*mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (*mockLogger) Info(ctx context.Context, args ...any)                  {}
func (*mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (*mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (*mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (*mockLogger) Error(ctx context.Context, args ...any)                 {}
func (*mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
