// Package ics renders weekly recurring events as an iCalendar document.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

// Event is one weekly recurring calendar entry. Day is 0 (Sunday) to
// 6 (Saturday); minutes count from midnight.
type Event struct {
	UID         string
	Summary     string
	Description string
	Day         int
	StartMinute int
	EndMinute   int
}

var icalByDay = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// Export serializes events as weekly RRULE VEVENTs. Each event is
// anchored to the first occurrence of its weekday on or after ref,
// in ref's location.
func Export(events []Event, ref time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//campus-timetable//EN")

	midnight := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())

	for _, e := range events {
		if e.Day < 0 || e.Day > 6 {
			return nil, fmt.Errorf("invalid weekday %d for event %s", e.Day, e.UID)
		}
		if e.StartMinute >= e.EndMinute {
			return nil, fmt.Errorf("invalid time range for event %s", e.UID)
		}

		anchor := midnight.AddDate(0, 0, (e.Day-int(ref.Weekday())+7)%7)
		start := anchor.Add(time.Duration(e.StartMinute) * time.Minute)
		end := anchor.Add(time.Duration(e.EndMinute) * time.Minute)

		ev := cal.AddEvent(e.UID)
		ev.SetDtStampTime(ref)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(e.Summary)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		ev.AddRrule(fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s", icalByDay[e.Day]))
	}

	return []byte(cal.Serialize()), nil
}
