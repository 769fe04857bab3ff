package ics_test

import (
	"strings"
	"testing"
	"time"

	"campus-timetable/pkg/ics"
)

func TestExport(t *testing.T) {
	ref := time.Date(2024, 9, 2, 12, 0, 0, 0, time.UTC) // a Monday

	t.Run("Weekly Rule And Anchor", func(t *testing.T) {
		out, err := ics.Export([]ics.Event{{
			UID:         "slot-1",
			Summary:     "CS201 Data Structures",
			Day:         2, // Tuesday
			StartMinute: 600,
			EndMinute:   660,
		}}, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		doc := string(out)
		if !strings.Contains(doc, "RRULE:FREQ=WEEKLY;BYDAY=TU") {
			t.Errorf("missing weekly Tuesday rule in:\n%s", doc)
		}
		// First Tuesday on or after Monday 02/09 is 03/09 at 10:00.
		if !strings.Contains(doc, "DTSTART:20240903T100000Z") {
			t.Errorf("unexpected anchor in:\n%s", doc)
		}
		if !strings.Contains(doc, "SUMMARY:CS201 Data Structures") {
			t.Errorf("missing summary in:\n%s", doc)
		}
	})

	t.Run("Same Weekday Anchors To Ref Day", func(t *testing.T) {
		out, err := ics.Export([]ics.Event{{
			UID: "slot-2", Summary: "MA105", Day: 1, StartMinute: 540, EndMinute: 600,
		}}, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(out), "DTSTART:20240902T090000Z") {
			t.Errorf("expected anchor on the ref Monday:\n%s", out)
		}
	})

	t.Run("Invalid Range Rejected", func(t *testing.T) {
		if _, err := ics.Export([]ics.Event{{UID: "x", Day: 1, StartMinute: 600, EndMinute: 600}}, ref); err == nil {
			t.Error("expected error for empty time range")
		}
	})

	t.Run("Invalid Day Rejected", func(t *testing.T) {
		if _, err := ics.Export([]ics.Event{{UID: "x", Day: 7, StartMinute: 600, EndMinute: 660}}, ref); err == nil {
			t.Error("expected error for weekday out of range")
		}
	})
}
