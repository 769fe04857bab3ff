package model

import "fmt"

// SessionKind classifies a class session.
type SessionKind string

const (
	SessionRegular  SessionKind = "regular"
	SessionTutorial SessionKind = "tutorial"
	SessionLab      SessionKind = "lab"
)

// MinutesPerDay is the exclusive upper bound for a minute-of-day value.
const MinutesPerDay = 24 * 60

// FormatMinute renders a minute-of-day value as HH:MM.
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// DayName returns the short weekday name for day 0 (Sunday) .. 6 (Saturday).
func DayName(day int) string {
	names := [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if day < 0 || day > 6 {
		return "???"
	}
	return names[day]
}
