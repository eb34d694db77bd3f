package utils

import "testing"

func TestSlotLabel(t *testing.T) {
	tests := []struct {
		start, end int
		want       string
	}{
		{0, 540, "00:00 - 09:00"},
		{600, 1440, "10:00 - 24:00"},
		{510, 525, "08:30 - 08:45"},
	}
	for _, tt := range tests {
		if got := SlotLabel(tt.start, tt.end); got != tt.want {
			t.Errorf("SlotLabel(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-10-18"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"", "18/10/2026", "2026-13-01", "2026-02-30"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}
