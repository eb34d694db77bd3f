package handlers

import (
	"errors"
	"net/http"

	"huddle/models"
	"huddle/services/availability"
	"huddle/services/meeting"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MeetingHandler struct {
	Service meeting.MeetingService
}

func NewMeetingHandler(svc meeting.MeetingService) *MeetingHandler {
	return &MeetingHandler{Service: svc}
}

// FindMeetingSlotsHandler answers POST /api/meetings/query.
func (h *MeetingHandler) FindMeetingSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.MeetingQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid meeting query", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	resp, err := h.Service.FindMeetingSlots(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, "Failed to find meeting slots", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	var verr *meeting.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, availability.ErrInvalidInput):
		logger.Warn(msg, zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "message": err.Error()})
	case errors.Is(err, meeting.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msg, "message": err.Error()})
	default:
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "message": err.Error()})
	}
}
