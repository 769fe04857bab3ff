package inference

import (
	"math"
	"sort"
	"time"
)

// clusterSlots groups parsed slots into candidate recurring clusters,
// one greedy single pass per weekday.
//
// Only completed sessions (SessionEnd <= now) are used as training data; if
// none have completed yet — a freshly added course whose sessions are all in
// the future — every parseable slot is used instead so the course still gets
// some signal.
//
// Within a weekday, slots are sorted by (start minute, session end) before
// the greedy pass. The spec'd semantics are tolerance-to-nearest-existing-
// cluster; sorting only pins down which cluster forms first when samples sit
// near the tolerance edge, so runs are deterministic.
func clusterSlots(slots []ParsedSlot, toleranceMinutes int, now time.Time) map[int][]*cluster {
	training := make([]ParsedSlot, 0, len(slots))
	for _, s := range slots {
		if !s.SessionEnd.After(now) {
			training = append(training, s)
		}
	}
	if len(training) == 0 {
		training = slots
	}

	byDay := make(map[int][]ParsedSlot)
	for _, s := range training {
		byDay[s.Day] = append(byDay[s.Day], s)
	}

	clusters := make(map[int][]*cluster, len(byDay))
	tol := float64(toleranceMinutes)
	for day, daySlots := range byDay {
		sort.Slice(daySlots, func(i, j int) bool {
			if daySlots[i].StartMinute != daySlots[j].StartMinute {
				return daySlots[i].StartMinute < daySlots[j].StartMinute
			}
			return daySlots[i].SessionEnd.Before(daySlots[j].SessionEnd)
		})

		var dayClusters []*cluster
		for _, s := range daySlots {
			if best := nearestCluster(dayClusters, s.StartMinute, tol); best != nil {
				best.add(s)
			} else {
				dayClusters = append(dayClusters, newCluster(s))
			}
		}
		clusters[day] = dayClusters
	}
	return clusters
}

// nearestCluster returns the cluster whose running mean start is closest to
// start and within tolerance, or nil when none qualifies.
func nearestCluster(clusters []*cluster, start int, tolerance float64) *cluster {
	var best *cluster
	bestDist := math.MaxFloat64
	for _, c := range clusters {
		dist := math.Abs(c.meanStart() - float64(start))
		if dist <= tolerance && dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	return best
}

// activeWeeksByDay counts the distinct weeks with any observation per weekday.
func activeWeeksByDay(clusters map[int][]*cluster) map[int]int {
	counts := make(map[int]int, len(clusters))
	for day, dayClusters := range clusters {
		weeks := make(map[string]struct{})
		for _, c := range dayClusters {
			for wk := range c.weekKeys {
				weeks[wk] = struct{}{}
			}
		}
		counts[day] = len(weeks)
	}
	return counts
}

// totalWeekSpan counts the distinct weeks observed across the whole course.
func totalWeekSpan(clusters map[int][]*cluster) int {
	weeks := make(map[string]struct{})
	for _, dayClusters := range clusters {
		for _, c := range dayClusters {
			for wk := range c.weekKeys {
				weeks[wk] = struct{}{}
			}
		}
	}
	return len(weeks)
}
