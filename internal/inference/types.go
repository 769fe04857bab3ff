package inference

import (
	"time"

	"campus-timetable/internal/model"
)

// SessionRecord is one raw attendance entry as exported by the LMS.
// DateText is free-form and frequently malformed; the parser never assumes
// it is well-shaped.
type SessionRecord struct {
	DateText    string
	Description string
	Status      string
}

// ParsedSlot is the structured form of a single session record.
type ParsedSlot struct {
	Day         int // 0 (Sunday) .. 6 (Saturday)
	StartMinute int // minutes since midnight, < EndMinute
	EndMinute   int
	Kind        model.SessionKind
	WeekKey     string // ISO year-week, e.g. "2024-W37"
	SessionEnd  time.Time
}

// RecurringSlot is one inferred weekly-repeating class block.
type RecurringSlot struct {
	Day                int
	StartMinute        int
	EndMinute          int
	Kind               model.SessionKind
	Occurrences        int
	WeekCount          int     // distinct weeks this cluster was observed in
	DayActiveWeekCount int     // distinct weeks with any observation on this weekday
	TotalWeekSpan      int     // distinct weeks observed across the whole course
	Score              float64 // 0.75*coverage + 0.25*occurrence share
}

// Candidate is a cluster the engine considered, whether or not the
// selection policy kept it. Exposed for inspection tooling.
type Candidate struct {
	RecurringSlot
	Selected bool
}

// Options tunes one inference run.
type Options struct {
	// Now is the completed-session cutoff. Zero means time.Now().
	Now time.Time
	// StartToleranceMinutes is the clustering tolerance. Zero means
	// DefaultStartTolerance.
	StartToleranceMinutes int
	// Location is the timezone session timestamps are interpreted in.
	// Nil means UTC.
	Location *time.Location
}

// Result is the full output of one inference run.
type Result struct {
	Selected   []RecurringSlot
	Candidates []Candidate
	Parse      ParseStats
}

// Engine defaults.
const (
	DefaultStartTolerance = 20  // minutes
	labDurationThreshold  = 110 // minutes; blocks this long are labs even without the keyword
	defaultSlotDuration   = 55  // minutes; used when median end collapses onto median start
	sparseWeekThreshold   = 3   // below this many active weeks, keep every cluster
	maxFailureSamples     = 5
)

// Selection thresholds (strict tier).
const (
	minClusterOccurrences = 2
	minWeekCoverage       = 0.5
	scoreWindow           = 0.2
	scoreFloor            = 0.55
	coverageWeight        = 0.75
	occurrenceWeight      = 0.25
)

// cluster accumulates same-weekday sessions within the start tolerance.
type cluster struct {
	day          int
	count        int
	startSum     int
	startSamples []int
	endSamples   []int
	weekKeys     map[string]struct{}
	kindVotes    map[model.SessionKind]int
	lastSeen     time.Time
}

// meanStart is the running mean start minute used for greedy assignment.
func (c *cluster) meanStart() float64 {
	return float64(c.startSum) / float64(c.count)
}

func (c *cluster) add(s ParsedSlot) {
	c.count++
	c.startSum += s.StartMinute
	c.startSamples = append(c.startSamples, s.StartMinute)
	c.endSamples = append(c.endSamples, s.EndMinute)
	c.weekKeys[s.WeekKey] = struct{}{}
	c.kindVotes[s.Kind]++
	if s.SessionEnd.After(c.lastSeen) {
		c.lastSeen = s.SessionEnd
	}
}

func newCluster(s ParsedSlot) *cluster {
	c := &cluster{
		day:       s.Day,
		weekKeys:  make(map[string]struct{}),
		kindVotes: make(map[model.SessionKind]int),
	}
	c.add(s)
	return c
}
