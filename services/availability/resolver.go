package availability

// subtractRanges removes every range in busy from free. Both inputs must be
// sorted and internally disjoint; the result keeps that order.
func subtractRanges(free, busy []TimeRange) []TimeRange {
	var out []TimeRange
	for _, f := range free {
		remaining := []TimeRange{f}
		for _, b := range busy {
			if b.start >= f.End() {
				break
			}
			if b.End() <= f.start {
				continue
			}
			remaining = subtractOne(remaining, b)
		}
		out = append(out, remaining...)
	}
	return out
}

// subtractOne removes b from each piece, leaving zero, one or two pieces per input.
func subtractOne(pieces []TimeRange, b TimeRange) []TimeRange {
	out := make([]TimeRange, 0, len(pieces)+1)
	for _, p := range pieces {
		if b.End() <= p.start || b.start >= p.End() {
			out = append(out, p)
			continue
		}
		if b.start > p.start {
			out = append(out, FromStartEnd(p.start, b.start, false))
		}
		if b.End() < p.End() {
			out = append(out, FromStartEnd(b.End(), p.End(), false))
		}
	}
	return out
}

func filterByDuration(ranges []TimeRange, duration int) []TimeRange {
	var out []TimeRange
	for _, r := range ranges {
		if r.duration > 0 && r.duration >= duration {
			out = append(out, r)
		}
	}
	return out
}

// resolve combines mandatory free time with optional busy time. When no slot
// satisfies both classes the mandatory slots are returned as they are.
func resolve(mandatoryFree, optionalBusy []TimeRange, duration int) ([]TimeRange, bool) {
	if len(mandatoryFree) == 0 {
		return nil, false
	}
	if len(optionalBusy) == 0 {
		return mandatoryFree, true
	}
	combined := filterByDuration(subtractRanges(mandatoryFree, optionalBusy), duration)
	if len(combined) == 0 {
		return mandatoryFree, false
	}
	return combined, true
}
