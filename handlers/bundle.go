// File: huddle/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Meeting endpoints
	FindMeetingSlotsHandler gin.HandlerFunc

	// Calendar endpoints
	CreateEventHandler  gin.HandlerFunc
	ImportEventsHandler gin.HandlerFunc
	GetEventsHandler    gin.HandlerFunc
	DeleteEventHandler  gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from a MeetingHandler.
func NewHandlerBundle(h *MeetingHandler) *HandlerBundle {
	return &HandlerBundle{
		FindMeetingSlotsHandler: h.FindMeetingSlotsHandler,
		CreateEventHandler:      h.CreateEventHandler,
		ImportEventsHandler:     h.ImportEventsHandler,
		GetEventsHandler:        h.GetEventsHandler,
		DeleteEventHandler:      h.DeleteEventHandler,
	}
}
