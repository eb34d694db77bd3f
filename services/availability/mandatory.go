package availability

// busyRanges returns the time of every event accepted by keep, skipping
// events with no duration since they occupy no minutes.
func busyRanges(events []Event, keep func(Event) bool) []TimeRange {
	var busy []TimeRange
	for _, ev := range events {
		if ev.When.duration <= 0 || !keep(ev) {
			continue
		}
		busy = append(busy, ev.When)
	}
	return MergeRanges(busy)
}

// mandatoryFreeRanges returns the gaps between mandatory-busy time that are
// at least request.Duration long. The last gap runs to the end of the day
// inclusive of minute 1439. Zero-length gaps are never reported.
func mandatoryFreeRanges(events []Event, request MeetingRequest) []TimeRange {
	busy := busyRanges(events, func(ev Event) bool {
		return ev.Attendees.Intersects(request.Attendees)
	})

	var free []TimeRange
	keepGap := func(gap TimeRange) {
		if gap.duration > 0 && gap.duration >= request.Duration {
			free = append(free, gap)
		}
	}

	window := StartOfDay
	for _, b := range busy {
		keepGap(FromStartEnd(window, b.start, false))
		window = b.End()
	}
	keepGap(FromStartEnd(window, EndOfDay, true))
	return free
}
