package availability

// Event is an existing calendar entry.
type Event struct {
	Title     string
	When      TimeRange
	Attendees AttendeeSet
}

// NewEvent is a convenience constructor for callers holding plain slices.
func NewEvent(title string, when TimeRange, attendees ...string) Event {
	return Event{Title: title, When: when, Attendees: NewAttendeeSet(attendees...)}
}

// MeetingRequest describes the meeting to place.
// An attendee listed in both sets is treated as mandatory.
type MeetingRequest struct {
	Attendees         AttendeeSet
	OptionalAttendees AttendeeSet
	Duration          int
}

// NewMeetingRequest builds a request from plain identifier slices.
func NewMeetingRequest(mandatory, optional []string, duration int) MeetingRequest {
	return MeetingRequest{
		Attendees:         NewAttendeeSet(mandatory...),
		OptionalAttendees: NewAttendeeSet(optional...),
		Duration:          duration,
	}
}
