package inference

import (
	"sort"

	"campus-timetable/internal/model"
)

// buildSlot reduces a scored cluster to its canonical recurring slot.
//
// Start and end are the lower median of the accumulated samples — medians
// shrug off the odd overrunning or cut-short session where a mean would
// drift, and the lower median is always a value that was actually observed.
func buildSlot(sc scoredCluster, dayActiveWeeks, weekSpan int) RecurringSlot {
	c := sc.c
	start := lowerMedian(c.startSamples)
	end := lowerMedian(c.endSamples)
	if end <= start {
		end = start + defaultSlotDuration
	}

	return RecurringSlot{
		Day:                c.day,
		StartMinute:        start,
		EndMinute:          end,
		Kind:               majorityKind(c.kindVotes),
		Occurrences:        c.count,
		WeekCount:          len(c.weekKeys),
		DayActiveWeekCount: dayActiveWeeks,
		TotalWeekSpan:      weekSpan,
		Score:              sc.score,
	}
}

// lowerMedian returns the lower median of samples. Empty input returns 0,
// which callers never produce (a cluster always holds at least one sample).
func lowerMedian(samples []int) int {
	if len(samples) == 0 {
		return 0
	}
	sorted := make([]int, len(samples))
	copy(sorted, samples)
	sort.Ints(sorted)
	return sorted[(len(sorted)-1)/2]
}

// majorityKind picks the most-voted session kind. Ties resolve lab over
// tutorial over regular: a lab vote is the least likely to appear by chance.
func majorityKind(votes map[model.SessionKind]int) model.SessionKind {
	order := []model.SessionKind{model.SessionLab, model.SessionTutorial, model.SessionRegular}
	best := model.SessionRegular
	bestVotes := -1
	for _, kind := range order {
		if votes[kind] > bestVotes {
			best = kind
			bestVotes = votes[kind]
		}
	}
	return best
}
