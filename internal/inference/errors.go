package inference

// FailureReason tags why a session record could not be parsed.
// The set is closed; callers may rely on it for aggregation.
type FailureReason string

const (
	FailMissingDay       FailureReason = "missing_day"
	FailInvalidDay       FailureReason = "invalid_day"
	FailMissingDate      FailureReason = "missing_date"
	FailInvalidMonth     FailureReason = "invalid_month"
	FailMissingTimeRange FailureReason = "missing_time_range"
	FailInvalidTimeRange FailureReason = "invalid_time_range"
	FailInvalidDate      FailureReason = "invalid_date"
)

// FailureSample is one retained example of a malformed record.
type FailureSample struct {
	Reason FailureReason `json:"reason"`
	Text   string        `json:"text"`
}

// ParseStats accounts for parse outcomes over one inference run.
// Malformed records are counted and sampled, never fatal.
type ParseStats struct {
	Parsed  int                   `json:"parsed"`
	Failed  int                   `json:"failed"`
	Counts  map[FailureReason]int `json:"counts,omitempty"`
	Samples []FailureSample       `json:"samples,omitempty"`
}

func newParseStats() ParseStats {
	return ParseStats{Counts: make(map[FailureReason]int)}
}

func (s *ParseStats) recordFailure(reason FailureReason, text string) {
	s.Failed++
	s.Counts[reason]++
	if len(s.Samples) < maxFailureSamples {
		s.Samples = append(s.Samples, FailureSample{Reason: reason, Text: text})
	}
}
