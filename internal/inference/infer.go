// Package inference reconstructs a stable weekly class schedule from a noisy
// log of LMS attendance records.
//
// The pipeline runs strictly forward: parse each record, cluster same-weekday
// sessions by start-time proximity, score clusters by week coverage and
// occurrence share, then reduce the keepers to canonical recurring slots.
// A full run is a pure function of (records, options); it performs no I/O,
// holds no state between runs, and never fails on malformed domain data.
package inference

import (
	"sort"
	"time"
)

// InferRecurringSlots runs the full inference pipeline over one course's
// session records.
//
// Result.Selected holds the slots the selection policy kept, ordered by day
// then start time. Result.Candidates holds every cluster considered, tagged
// with the selection verdict, for inspection tooling. Result.Parse accounts
// for records that could not be parsed.
func InferRecurringSlots(records []SessionRecord, opts Options) Result {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	tolerance := opts.StartToleranceMinutes
	if tolerance <= 0 {
		tolerance = DefaultStartTolerance
	}

	slots, stats := parseAll(records, opts.Location)
	result := Result{Parse: stats}
	if len(slots) == 0 {
		return result
	}

	clusters := clusterSlots(slots, tolerance, now)
	activeWeeks := activeWeeksByDay(clusters)
	weekSpan := totalWeekSpan(clusters)

	days := make([]int, 0, len(clusters))
	for day := range clusters {
		days = append(days, day)
	}
	sort.Ints(days)

	for _, day := range days {
		scored := scoreDay(clusters[day], activeWeeks[day])
		keep := selectDay(scored, activeWeeks[day])
		for i, sc := range scored {
			slot := buildSlot(sc, activeWeeks[day], weekSpan)
			result.Candidates = append(result.Candidates, Candidate{RecurringSlot: slot, Selected: keep[i]})
			if keep[i] {
				result.Selected = append(result.Selected, slot)
			}
		}
	}

	sort.Slice(result.Selected, func(i, j int) bool {
		if result.Selected[i].Day != result.Selected[j].Day {
			return result.Selected[i].Day < result.Selected[j].Day
		}
		return result.Selected[i].StartMinute < result.Selected[j].StartMinute
	})

	return result
}
