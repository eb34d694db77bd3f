package utils

import (
	"fmt"
	"time"
)

// FormatClock renders minutes from midnight as "HH:MM"; the end of the day is "24:00".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// SlotLabel renders a slot the way clients display it, e.g. "09:00 - 10:30".
func SlotLabel(start, end int) string {
	return FormatClock(start) + " - " + FormatClock(end)
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return t, nil
}
