package models

// AvailableInterval represents a continuous time block available for a meeting.
type AvailableInterval struct {
	Start    int    `json:"start"`    // Minutes from midnight
	End      int    `json:"end"`      // Minutes from midnight, 1440 for end of day
	Duration int    `json:"duration"` // Minutes
	Label    string `json:"label"`    // e.g., "09:00 - 10:30"
}
