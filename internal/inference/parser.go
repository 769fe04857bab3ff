package inference

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"campus-timetable/internal/model"
)

// The LMS date text looks like "Tue 03/09/2024 (09:00 AM - 09:55 AM)" with
// plenty of variation in separators and casing. Each piece is extracted
// independently so one malformed fragment yields a precise failure reason.
var (
	leadingDayRe = regexp.MustCompile(`^\s*([A-Za-z]+)`)
	dateRe       = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)
	timeRangeRe  = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([AP]M)\s*(?:-|–|—|to)\s*(\d{1,2}):(\d{2})\s*([AP]M)`)
)

var weekdayTokens = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

// ParseRecord converts one raw session record into a ParsedSlot, or reports
// a tagged FailureReason. It never panics on malformed input.
func ParseRecord(rec SessionRecord, loc *time.Location) (ParsedSlot, FailureReason) {
	if loc == nil {
		loc = time.UTC
	}

	// Weekday token at the start of the text.
	m := leadingDayRe.FindStringSubmatch(rec.DateText)
	if m == nil {
		return ParsedSlot{}, FailMissingDay
	}
	token := strings.ToLower(m[1])
	if len(token) < 3 {
		return ParsedSlot{}, FailInvalidDay
	}
	day, ok := weekdayTokens[token[:3]]
	if !ok {
		return ParsedSlot{}, FailInvalidDay
	}

	// Calendar date, day/month/year.
	dm := dateRe.FindStringSubmatch(rec.DateText)
	if dm == nil {
		return ParsedSlot{}, FailMissingDate
	}
	dayOfMonth, _ := strconv.Atoi(dm[1])
	month, _ := strconv.Atoi(dm[2])
	year, _ := strconv.Atoi(dm[3])
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 {
		return ParsedSlot{}, FailInvalidMonth
	}
	date := time.Date(year, time.Month(month), dayOfMonth, 0, 0, 0, 0, loc)
	// time.Date normalizes overflow (Feb 30 → Mar 2), so a round-trip
	// mismatch means the day never existed.
	if date.Day() != dayOfMonth || int(date.Month()) != month || date.Year() != year {
		return ParsedSlot{}, FailInvalidDate
	}

	// 12-hour start/end range.
	tm := timeRangeRe.FindStringSubmatch(rec.DateText)
	if tm == nil {
		return ParsedSlot{}, FailMissingTimeRange
	}
	start, ok := toMinuteOfDay(tm[1], tm[2], tm[3])
	if !ok {
		return ParsedSlot{}, FailInvalidTimeRange
	}
	end, ok := toMinuteOfDay(tm[4], tm[5], tm[6])
	if !ok || end <= start {
		return ParsedSlot{}, FailInvalidTimeRange
	}

	iy, iw := date.ISOWeek()

	return ParsedSlot{
		Day:         day,
		StartMinute: start,
		EndMinute:   end,
		Kind:        classifyKind(rec.Description, end-start),
		WeekKey:     fmt.Sprintf("%04d-W%02d", iy, iw),
		SessionEnd:  date.Add(time.Duration(end) * time.Minute),
	}, ""
}

// toMinuteOfDay converts 12-hour clock components to minutes since midnight.
func toMinuteOfDay(hourStr, minStr, meridiem string) (int, bool) {
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minStr)
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, false
	}
	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(meridiem, "PM") {
		hour += 12
	}
	return hour*60 + minute, true
}

// classifyKind derives the session kind from description keywords, with a
// structural fallback: blocks of labDurationThreshold minutes or longer are
// labs even without the keyword.
func classifyKind(description string, duration int) model.SessionKind {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "lab"):
		return model.SessionLab
	case strings.Contains(desc, "tutorial"):
		return model.SessionTutorial
	case duration >= labDurationThreshold:
		return model.SessionLab
	default:
		return model.SessionRegular
	}
}

// parseAll parses every record, accumulating failure stats.
func parseAll(records []SessionRecord, loc *time.Location) ([]ParsedSlot, ParseStats) {
	stats := newParseStats()
	slots := make([]ParsedSlot, 0, len(records))
	for _, rec := range records {
		slot, reason := ParseRecord(rec, loc)
		if reason != "" {
			stats.recordFailure(reason, rec.DateText)
			continue
		}
		stats.Parsed++
		slots = append(slots, slot)
	}
	return slots, stats
}
