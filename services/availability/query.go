package availability

import "sort"

// Availability is the outcome of a query.
type Availability struct {
	Slots []TimeRange
	// OptionalHonored is false when the optional attendees could not be
	// accommodated and Slots holds the mandatory-only fallback.
	OptionalHonored bool
}

// Query returns the slots of at least request.Duration minutes in which every
// mandatory attendee is free, preferring slots that also suit the optional
// attendees. Events may be unsorted and may repeat.
func Query(events []Event, request MeetingRequest) ([]TimeRange, error) {
	res, err := Resolve(events, request)
	if err != nil {
		return nil, err
	}
	return res.Slots, nil
}

// Resolve is Query with the fallback outcome exposed.
func Resolve(events []Event, request MeetingRequest) (Availability, error) {
	if err := validate(events, request); err != nil {
		return Availability{}, err
	}

	ordered := orderEvents(events)
	mandatoryFree := mandatoryFreeRanges(ordered, request)
	optionalBusy := optionalBusyRanges(ordered, request)

	slots, honored := resolve(mandatoryFree, optionalBusy, request.Duration)
	out := make([]TimeRange, len(slots))
	copy(out, slots)
	return Availability{Slots: out, OptionalHonored: honored}, nil
}

func validate(events []Event, request MeetingRequest) error {
	if request.Duration < 0 {
		return invalidInput("duration", "must not be negative, got %d", request.Duration)
	}
	for i, ev := range events {
		if !ev.When.withinDay() {
			return invalidInput("events", "event %d starts at %d and lasts %d minutes, outside [0, %d]",
				i, ev.When.start, ev.When.duration, MinutesPerDay)
		}
	}
	return nil
}

// orderEvents returns a copy sorted by start, then end, then input position.
func orderEvents(events []Event) []Event {
	ordered := make([]Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return OrderByStart(ordered[i].When, ordered[j].When)
	})
	return ordered
}
