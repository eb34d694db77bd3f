package meeting

import (
	"context"
	"time"

	calendarRepo "huddle/database/repository/calendar"
	"huddle/models"
)

// MeetingService finds meeting slots and manages the calendar they are computed from.
type MeetingService interface {
	FindMeetingSlots(ctx context.Context, req models.MeetingQueryRequest) (*models.MeetingQueryResponse, error)
	CreateEvent(ctx context.Context, input models.CalendarEventInput) (*models.CalendarEvent, error)
	ImportEvents(ctx context.Context, date string, events []models.EventDetails) ([]string, error)
	GetEvents(ctx context.Context, date string) ([]models.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	PurgeEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// DefaultMeetingService implements MeetingService.
type DefaultMeetingService struct {
	Repo  calendarRepo.CalendarRepository
	Cache QueryCache
}

// NewMeetingService wires a service; a nil cache disables caching.
func NewMeetingService(repo calendarRepo.CalendarRepository, cache QueryCache) *DefaultMeetingService {
	if cache == nil {
		cache = NoopQueryCache{}
	}
	return &DefaultMeetingService{Repo: repo, Cache: cache}
}
