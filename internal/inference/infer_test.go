package inference_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"campus-timetable/internal/inference"
	"campus-timetable/internal/model"
)

// record builds an LMS-style session record for a given date and time range.
func record(t *testing.T, date time.Time, startMin, endMin int, desc string) inference.SessionRecord {
	t.Helper()
	format := func(m int) string {
		hour := m / 60
		meridiem := "AM"
		if hour >= 12 {
			meridiem = "PM"
			if hour > 12 {
				hour -= 12
			}
		}
		if hour == 0 {
			hour = 12
		}
		return fmt.Sprintf("%02d:%02d %s", hour, m%60, meridiem)
	}
	return inference.SessionRecord{
		DateText: fmt.Sprintf("%s %02d/%02d/%04d (%s - %s)",
			date.Format("Mon"), date.Day(), int(date.Month()), date.Year(),
			format(startMin), format(endMin)),
		Description: desc,
		Status:      "present",
	}
}

func TestInferRecurringSlots(t *testing.T) {
	// Sep 2 2024 is a Monday.
	firstMonday := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Recurring Monday Class With Stray Starts", func(t *testing.T) {
		// 8 of 10 Mondays at 09:00-10:00, plus 2 strays at 09:15-10:10
		// within the 20-minute tolerance.
		var records []inference.SessionRecord
		for i := 0; i < 8; i++ {
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i), 540, 600, "Lecture"))
		}
		for i := 8; i < 10; i++ {
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i), 555, 610, "Lecture"))
		}

		out := inference.InferRecurringSlots(records, inference.Options{Now: now})
		if len(out.Candidates) != 1 {
			t.Fatalf("expected one cluster, got %d", len(out.Candidates))
		}
		if len(out.Selected) != 1 {
			t.Fatalf("expected one selected slot, got %d", len(out.Selected))
		}
		slot := out.Selected[0]
		if slot.Day != 1 || slot.StartMinute != 540 || slot.EndMinute != 600 {
			t.Errorf("unexpected slot %s %d-%d", model.DayName(slot.Day), slot.StartMinute, slot.EndMinute)
		}
		if slot.Occurrences != 10 || slot.WeekCount != 10 || slot.DayActiveWeekCount != 10 {
			t.Errorf("unexpected stats %+v", slot)
		}
		if slot.Score < 0.99 {
			t.Errorf("expected full coverage score, got %f", slot.Score)
		}
	})

	t.Run("Sparse History Keeps One-Off Session", func(t *testing.T) {
		wednesday := time.Date(2024, 9, 4, 0, 0, 0, 0, time.UTC)
		out := inference.InferRecurringSlots([]inference.SessionRecord{
			record(t, wednesday, 840, 900, "Lecture"),
		}, inference.Options{Now: now})

		if len(out.Selected) != 1 {
			t.Fatalf("expected one selected slot via sparse fallback, got %d", len(out.Selected))
		}
		slot := out.Selected[0]
		if slot.Day != 3 || slot.StartMinute != 840 || slot.EndMinute != 900 {
			t.Errorf("unexpected slot %+v", slot)
		}
		if slot.DayActiveWeekCount != 1 {
			t.Errorf("expected one active week, got %d", slot.DayActiveWeekCount)
		}
	})

	t.Run("Strict Tier Drops One-Off Noise", func(t *testing.T) {
		var records []inference.SessionRecord
		for i := 0; i < 4; i++ {
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i), 540, 595, "Lecture"))
		}
		// One stray afternoon session, outside tolerance of the 09:00 cluster.
		records = append(records, record(t, firstMonday, 840, 895, "Makeup class"))

		out := inference.InferRecurringSlots(records, inference.Options{Now: now})
		if len(out.Candidates) != 2 {
			t.Fatalf("expected two clusters, got %d", len(out.Candidates))
		}
		if len(out.Selected) != 1 {
			t.Fatalf("expected noise filtered, got %d selected", len(out.Selected))
		}
		if out.Selected[0].StartMinute != 540 {
			t.Errorf("expected the 09:00 cluster to survive, got %d", out.Selected[0].StartMinute)
		}
		for _, cand := range out.Candidates {
			if cand.StartMinute == 840 && cand.Selected {
				t.Errorf("noise cluster should not be selected")
			}
		}
	})

	t.Run("Borderline Day Keeps Top Cluster", func(t *testing.T) {
		// Four Mondays, each with a single session at a different hour:
		// every cluster fails the strict filter, so the top scorer is kept.
		var records []inference.SessionRecord
		for i := 0; i < 4; i++ {
			start := 480 + i*120
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i), start, start+55, "Lecture"))
		}

		out := inference.InferRecurringSlots(records, inference.Options{Now: now})
		if len(out.Candidates) != 4 {
			t.Fatalf("expected four clusters, got %d", len(out.Candidates))
		}
		if len(out.Selected) != 1 {
			t.Fatalf("expected exactly one slot via top-cluster fallback, got %d", len(out.Selected))
		}
	})

	t.Run("Future Sessions Excluded When History Exists", func(t *testing.T) {
		var records []inference.SessionRecord
		for i := 0; i < 3; i++ {
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i), 540, 595, "Lecture"))
		}
		// A rescheduled future session after the cutoff.
		records = append(records, record(t, now.AddDate(0, 0, 7), 840, 895, "Lecture"))

		out := inference.InferRecurringSlots(records, inference.Options{Now: now})
		if len(out.Candidates) != 1 {
			t.Fatalf("expected the future session excluded from training, got %d clusters", len(out.Candidates))
		}
	})

	t.Run("All Future Sessions Still Give Signal", func(t *testing.T) {
		var records []inference.SessionRecord
		for i := 1; i <= 2; i++ {
			records = append(records, record(t, now.AddDate(0, 0, 7*i), 540, 595, "Lecture"))
		}

		out := inference.InferRecurringSlots(records, inference.Options{Now: now})
		if len(out.Selected) != 1 {
			t.Fatalf("expected future-only course to fall back to all slots, got %d", len(out.Selected))
		}
	})

	t.Run("Majority Kind With Lab Tie Break", func(t *testing.T) {
		tuesday := time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC)
		out := inference.InferRecurringSlots([]inference.SessionRecord{
			record(t, tuesday, 600, 655, "Lab work"),
			record(t, tuesday.AddDate(0, 0, 7), 600, 655, "Lecture"),
		}, inference.Options{Now: now})

		if len(out.Selected) != 1 {
			t.Fatalf("expected one slot, got %d", len(out.Selected))
		}
		if out.Selected[0].Kind != model.SessionLab {
			t.Errorf("expected lab to win the tie, got %s", out.Selected[0].Kind)
		}
	})

	t.Run("Idempotence", func(t *testing.T) {
		var records []inference.SessionRecord
		for i := 0; i < 6; i++ {
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i), 540, 600, "Lecture"))
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i+2), 660, 715, "Tutorial"))
		}
		opts := inference.Options{Now: now}

		first := inference.InferRecurringSlots(records, opts)
		second := inference.InferRecurringSlots(records, opts)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("identical inputs produced different results")
		}
	})

	t.Run("Coverage Invariant", func(t *testing.T) {
		var records []inference.SessionRecord
		for i := 0; i < 5; i++ {
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i), 540, 600, "Lecture"))
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i), 555, 615, "Lecture"))
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i+1), 840, 950, "Lab"))
		}
		out := inference.InferRecurringSlots(records, inference.Options{Now: now})
		for _, cand := range out.Candidates {
			if cand.WeekCount > cand.DayActiveWeekCount {
				t.Errorf("cluster observed in %d weeks but only %d active weeks on day %d",
					cand.WeekCount, cand.DayActiveWeekCount, cand.Day)
			}
		}
	})

	t.Run("Monotonic Tolerance", func(t *testing.T) {
		var records []inference.SessionRecord
		starts := []int{540, 560, 580}
		for i, start := range starts {
			records = append(records, record(t, firstMonday.AddDate(0, 0, 7*i), start, start+55, "Lecture"))
		}

		prev := -1
		for _, tol := range []int{1, 10, 20, 40, 120} {
			out := inference.InferRecurringSlots(records, inference.Options{Now: now, StartToleranceMinutes: tol})
			count := len(out.Candidates)
			if prev >= 0 && count > prev {
				t.Errorf("tolerance %d produced %d clusters, more than %d at a tighter tolerance", tol, count, prev)
			}
			prev = count
		}
	})

	t.Run("Empty And Unparseable Input", func(t *testing.T) {
		out := inference.InferRecurringSlots(nil, inference.Options{Now: now})
		if len(out.Selected) != 0 || len(out.Candidates) != 0 {
			t.Errorf("expected empty result for no records")
		}

		out = inference.InferRecurringSlots([]inference.SessionRecord{
			{DateText: "Mon 02/09/2024"},
		}, inference.Options{Now: now})
		if len(out.Selected) != 0 {
			t.Errorf("unparseable record must not produce slots")
		}
		if out.Parse.Counts[inference.FailMissingTimeRange] != 1 {
			t.Errorf("expected missing_time_range accounted, got %+v", out.Parse.Counts)
		}
	})
}
