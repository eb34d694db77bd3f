// Package availability computes meeting slots within a single 1440-minute day.
//
// Everything here is a pure function of its inputs: events and a request go
// in, a fresh slice of TimeRange values comes out. Nothing is cached between
// calls, so the package is safe to use from concurrent handlers.
package availability

import "fmt"

const (
	// StartOfDay is the first minute of the day.
	StartOfDay = 0
	// EndOfDay is the last minute of the day (23:59).
	EndOfDay = 24*60 - 1
	// MinutesPerDay is the length of the day timeline.
	MinutesPerDay = 24 * 60
)

var (
	// WholeDay covers [00:00, 24:00).
	WholeDay = TimeRange{start: StartOfDay, duration: MinutesPerDay}
	// DayEndMarker is the zero-length point at minute 1440.
	DayEndMarker = TimeRange{start: MinutesPerDay, duration: 0}
)

// TimeRange is an immutable span of minutes within a day.
type TimeRange struct {
	start    int
	duration int
}

// FromStartDuration builds a range starting at start and lasting duration minutes.
func FromStartDuration(start, duration int) TimeRange {
	return TimeRange{start: start, duration: duration}
}

// FromStartEnd builds a range from start to end. When inclusive is true the
// end minute is part of the range, so FromStartEnd(x, EndOfDay, true) ends at 1440.
func FromStartEnd(start, end int, inclusive bool) TimeRange {
	if inclusive {
		return TimeRange{start: start, duration: end - start + 1}
	}
	return TimeRange{start: start, duration: end - start}
}

func (r TimeRange) Start() int    { return r.start }
func (r TimeRange) Duration() int { return r.duration }
func (r TimeRange) End() int      { return r.start + r.duration }

// ContainsPoint reports whether minute p falls in [start, end). A range with
// no duration contains nothing. The day end (1440) is treated as closed: any
// non-empty range ending there contains it.
func (r TimeRange) ContainsPoint(p int) bool {
	if r.duration <= 0 {
		return false
	}
	if p == MinutesPerDay && r.End() == MinutesPerDay {
		return true
	}
	return p >= r.start && p < r.End()
}

// ContainsStart reports whether other begins inside r.
func (r TimeRange) ContainsStart(other TimeRange) bool {
	return r.ContainsPoint(other.start)
}

// ContainsEnd reports whether other ends inside r. The end bound is inclusive.
func (r TimeRange) ContainsEnd(other TimeRange) bool {
	if r.duration <= 0 {
		return false
	}
	return other.End() > r.start && other.End() <= r.End()
}

// Contains reports whether other lies entirely within r.
func (r TimeRange) Contains(other TimeRange) bool {
	return r.ContainsStart(other) && other.End() <= r.End()
}

// Overlaps reports whether the two ranges share at least one minute. An
// empty range occupies no minutes and overlaps nothing.
func (r TimeRange) Overlaps(other TimeRange) bool {
	if r.duration <= 0 || other.duration <= 0 {
		return false
	}
	return r.ContainsStart(other) || other.ContainsStart(r)
}

// Compare orders ranges by start, then by end.
func (r TimeRange) Compare(other TimeRange) int {
	switch {
	case r.start < other.start:
		return -1
	case r.start > other.start:
		return 1
	case r.End() < other.End():
		return -1
	case r.End() > other.End():
		return 1
	}
	return 0
}

// OrderByStart and OrderByEnd are less-functions for sort.Slice style callers.
func OrderByStart(a, b TimeRange) bool { return a.Compare(b) < 0 }

func OrderByEnd(a, b TimeRange) bool {
	if a.End() != b.End() {
		return a.End() < b.End()
	}
	return a.start < b.start
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.start, r.End())
}

// withinDay reports whether r lies on the day timeline with a sane length.
// Bounds are checked without computing End so huge durations cannot wrap.
func (r TimeRange) withinDay() bool {
	return r.start >= StartOfDay && r.start <= MinutesPerDay &&
		r.duration >= 0 && r.duration <= MinutesPerDay-r.start
}
