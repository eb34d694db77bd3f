package models

// MeetingQueryRequest asks for the free slots of a day.
type MeetingQueryRequest struct {
	Date              string   `json:"date" binding:"required,calendardate"`
	Attendees         []string `json:"attendees"`
	OptionalAttendees []string `json:"optionalAttendees"`
	Duration          int      `json:"duration" binding:"min=0"`
}

// MeetingQueryResponse lists the slots found for a request.
type MeetingQueryResponse struct {
	Date                     string              `json:"date"`
	Duration                 int                 `json:"duration"`
	Slots                    []AvailableInterval `json:"slots"`
	OptionalAttendeesHonored bool                `json:"optionalAttendeesHonored"`
	Cached                   bool                `json:"cached"`
}
