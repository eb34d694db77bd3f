package models

import "time"

// CalendarEvent is a persisted calendar entry for a single day.
type CalendarEvent struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"` // e.g., "2026-10-18"
	Title     string    `bson:"title" json:"title"`
	Start     int       `bson:"start" json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End       int       `bson:"end" json:"end"`     // minutes from midnight, exclusive
	Attendees []string  `bson:"attendees" json:"attendees"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// EventDetails is the date-less part of an event payload.
type EventDetails struct {
	Title     string   `json:"title"`
	Start     int      `json:"start" binding:"dayminute"`
	End       int      `json:"end" binding:"dayminute"`
	Attendees []string `json:"attendees" binding:"required,min=1"`
}

// CalendarEventInput is the payload used to create a single event.
type CalendarEventInput struct {
	Date string `json:"date" binding:"required,calendardate"`
	EventDetails
}

// ImportEventsRequest appends a batch of events to one date.
type ImportEventsRequest struct {
	Date   string         `json:"date" binding:"required,calendardate"`
	Events []EventDetails `json:"events" binding:"required,min=1,dive"`
}
