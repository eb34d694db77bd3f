package availability

import (
	"reflect"
	"testing"
)

func TestAttendeeSetIntersects(t *testing.T) {
	tests := []struct {
		a, b AttendeeSet
		want bool
	}{
		{NewAttendeeSet("A", "B"), NewAttendeeSet("B"), true},
		{NewAttendeeSet("A"), NewAttendeeSet("B", "C"), false},
		{NewAttendeeSet(), NewAttendeeSet("A"), false},
		{nil, nil, false},
		{NewAttendeeSet("A", "B", "C", "D"), NewAttendeeSet("D"), true},
	}
	for _, tt := range tests {
		if got := tt.a.Intersects(tt.b); got != tt.want {
			t.Errorf("%v ∩ %v: got %v, want %v", tt.a.Sorted(), tt.b.Sorted(), got, tt.want)
		}
		if got := tt.b.Intersects(tt.a); got != tt.want {
			t.Errorf("intersection not symmetric for %v, %v", tt.a.Sorted(), tt.b.Sorted())
		}
	}
}

func TestAttendeeSetSorted(t *testing.T) {
	s := NewAttendeeSet("carol", "alice", "bob", "alice")
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if got := s.Sorted(); !reflect.DeepEqual(got, []string{"alice", "bob", "carol"}) {
		t.Fatalf("Sorted = %v", got)
	}
}
