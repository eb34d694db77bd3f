package availability

// optionalBusyRanges merges the time of events attended by optional
// attendees only. Events that also involve a mandatory attendee are already
// excluded from every mandatory free range and are skipped here.
func optionalBusyRanges(events []Event, request MeetingRequest) []TimeRange {
	if request.OptionalAttendees.Len() == 0 {
		return nil
	}
	return busyRanges(events, func(ev Event) bool {
		return ev.Attendees.Intersects(request.OptionalAttendees) &&
			!ev.Attendees.Intersects(request.Attendees)
	})
}
