package gcalendar

import "time"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"

	// ColorID is a Google Calendar color id ("1".."11"); empty keeps
	// the calendar default.
	ColorID string

	// Reminders override the calendar defaults when non-empty.
	Reminders []Reminder

	// PrivateMetadata is stored as private extended properties, visible
	// only to this application.
	PrivateMetadata map[string]string
}

// Reminder is a single event reminder override.
type Reminder struct {
	Method  string // "popup" or "email"
	Minutes int
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string

	// PrivateMetadata echoes the private extended properties, used to
	// recognize events this application manages.
	PrivateMetadata map[string]string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// FreeBusyRequest asks for the busy intervals of a calendar in a range.
type FreeBusyRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
}

// BusyInterval is one busy span returned by a free/busy query.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}
