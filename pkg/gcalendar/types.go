package gcalendar

import "time"

// CreateRecurringEventRequest is the input for creating one weekly
// recurring Google Calendar event. Day is 0 (Sunday) to 6 (Saturday).
type CreateRecurringEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Day         int
	// FirstStart and FirstEnd anchor the first occurrence; the event
	// then repeats weekly on Day.
	FirstStart time.Time
	FirstEnd   time.Time
	Timezone   string // e.g. "Asia/Kolkata"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
