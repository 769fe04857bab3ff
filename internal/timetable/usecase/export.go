package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-timetable/internal/model"
	"campus-timetable/internal/timetable"
	"campus-timetable/pkg/gcalendar"
	"campus-timetable/pkg/ics"
)

// ErrCalendarNotConfigured is returned when Google Calendar export is
// requested without credentials.
var ErrCalendarNotConfigured = errors.New("google calendar not configured")

// ExportICS renders the clean timetable as an iCalendar document.
func (uc *implUseCase) ExportICS(ctx context.Context) ([]byte, error) {
	slots, err := uc.CleanTimetable(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]ics.Event, 0, len(slots))
	for _, s := range slots {
		events = append(events, ics.Event{
			UID:         s.ID,
			Summary:     eventSummary(s),
			Description: string(s.Kind),
			Day:         s.Day,
			StartMinute: s.StartMinute,
			EndMinute:   s.EndMinute,
		})
	}

	doc, err := ics.Export(events, uc.cfg.Clock().In(uc.cfg.Location))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS: %v", err)
		return nil, err
	}
	return doc, nil
}

// ExportGCal pushes the clean timetable to Google Calendar as weekly
// recurring events and reports how many were created.
func (uc *implUseCase) ExportGCal(ctx context.Context) (int, error) {
	if uc.calendar == nil {
		return 0, ErrCalendarNotConfigured
	}

	slots, err := uc.CleanTimetable(ctx)
	if err != nil {
		return 0, err
	}

	ref := uc.cfg.Clock().In(uc.cfg.Location)
	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	created := 0
	for _, s := range slots {
		anchor := midnight.AddDate(0, 0, (s.Day-int(ref.Weekday())+7)%7)
		_, err := uc.calendar.CreateRecurringEvent(ctx, gcalendar.CreateRecurringEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     eventSummary(s),
			Description: string(s.Kind),
			Day:         s.Day,
			FirstStart:  anchor.Add(time.Duration(s.StartMinute) * time.Minute),
			FirstEnd:    anchor.Add(time.Duration(s.EndMinute) * time.Minute),
			Timezone:    uc.cfg.CalendarTimezone,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.ExportGCal slot %s: %v", s.ID, err)
			return created, err
		}
		created++
	}

	uc.l.Infof(ctx, "pushed %d recurring events to google calendar", created)
	return created, nil
}

func eventSummary(s timetable.Slot) string {
	name := s.CourseName
	if name == "" {
		name = s.CourseID
	}
	if s.Kind != model.SessionRegular {
		return fmt.Sprintf("%s (%s)", name, s.Kind)
	}
	return name
}
