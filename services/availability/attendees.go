package availability

import "sort"

// AttendeeSet is a set of attendee identifiers.
type AttendeeSet map[string]struct{}

// NewAttendeeSet builds a set from ids. Duplicates collapse.
func NewAttendeeSet(ids ...string) AttendeeSet {
	set := make(AttendeeSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s AttendeeSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s AttendeeSet) Len() int { return len(s) }

// Intersects reports whether s and other share at least one attendee.
func (s AttendeeSet) Intersects(other AttendeeSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for id := range small {
		if large.Contains(id) {
			return true
		}
	}
	return false
}

// Sorted returns the identifiers in ascending order.
func (s AttendeeSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
