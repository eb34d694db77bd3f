package handlers

import (
	"net/http"

	"huddle/models"
	"huddle/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *MeetingHandler) CreateEventHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.CalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Warn("Invalid calendar event", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	event, err := h.Service.CreateEvent(c.Request.Context(), input)
	if err != nil {
		respondError(c, logger, "Failed to create calendar event", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Calendar event created", "event": event})
}

func (h *MeetingHandler) ImportEventsHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ImportEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid calendar import", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	ids, err := h.Service.ImportEvents(c.Request.Context(), req.Date, req.Events)
	if err != nil {
		respondError(c, logger, "Failed to import calendar events", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Calendar events imported", "ids": ids})
}

func (h *MeetingHandler) GetEventsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "expected ?date=YYYY-MM-DD")
		return
	}

	events, err := h.Service.GetEvents(c.Request.Context(), date)
	if err != nil {
		respondError(c, getLogger(c), "Failed to fetch calendar events", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "events": events})
}

func (h *MeetingHandler) DeleteEventHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing event ID in path", "")
		return
	}

	if err := h.Service.DeleteEvent(c.Request.Context(), id); err != nil {
		respondError(c, getLogger(c), "Failed to delete calendar event", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Calendar event deleted"})
}
