package inference

import "sort"

// scoredCluster pairs a cluster with its computed statistics for one weekday.
type scoredCluster struct {
	c        *cluster
	coverage float64
	score    float64
}

// scoreDay computes coverage/occurrence scores for one weekday's clusters and
// returns them ordered best-first: score desc, then occurrence count desc,
// then most recently seen.
func scoreDay(dayClusters []*cluster, dayActiveWeeks int) []scoredCluster {
	totalObs := 0
	for _, c := range dayClusters {
		totalObs += c.count
	}

	scored := make([]scoredCluster, 0, len(dayClusters))
	for _, c := range dayClusters {
		coverage := 0.0
		if dayActiveWeeks > 0 {
			coverage = float64(len(c.weekKeys)) / float64(dayActiveWeeks)
		}
		occurrenceRatio := 0.0
		if totalObs > 0 {
			occurrenceRatio = float64(c.count) / float64(totalObs)
		}
		scored = append(scored, scoredCluster{
			c:        c,
			coverage: coverage,
			score:    coverageWeight*coverage + occurrenceWeight*occurrenceRatio,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].c.count != scored[j].c.count {
			return scored[i].c.count > scored[j].c.count
		}
		return scored[i].c.lastSeen.After(scored[j].c.lastSeen)
	})
	return scored
}

// selectDay applies the two-tier keep policy to one weekday's scored clusters
// and returns a parallel keep mask.
//
// Sparse tier: with fewer than sparseWeekThreshold active weeks there is not
// enough history to trust coverage statistics, so every cluster is kept
// (recall over precision early in a term).
//
// Strict tier: a cluster survives only with at least minClusterOccurrences
// observations, at least minWeekCoverage coverage, and a score within
// scoreWindow of the day's best (floored at scoreFloor). If that filter
// removes everything, the single top-scoring cluster is kept so a weekday
// with any signal is never dropped entirely.
func selectDay(scored []scoredCluster, dayActiveWeeks int) []bool {
	keep := make([]bool, len(scored))
	if len(scored) == 0 {
		return keep
	}

	if dayActiveWeeks < sparseWeekThreshold {
		for i := range keep {
			keep[i] = true
		}
		return keep
	}

	best := scored[0].score
	cutoff := best - scoreWindow
	if cutoff < scoreFloor {
		cutoff = scoreFloor
	}

	kept := 0
	for i, sc := range scored {
		if sc.c.count >= minClusterOccurrences && sc.coverage >= minWeekCoverage && sc.score >= cutoff {
			keep[i] = true
			kept++
		}
	}
	if kept == 0 {
		keep[0] = true
	}
	return keep
}
