// File: database/repository/calendar/interface.go
package calendarRepo

import (
	"context"

	"huddle/database"
	"huddle/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CalendarRepository interface {
	Create(ctx context.Context, event *models.CalendarEvent) error
	CreateMany(ctx context.Context, events []models.CalendarEvent) ([]string, error)
	GetByID(ctx context.Context, id string) (*models.CalendarEvent, error)
	GetByDate(ctx context.Context, date string) ([]models.CalendarEvent, error)
	GetByDateForAttendees(ctx context.Context, date string, attendees []string) ([]models.CalendarEvent, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteBefore(ctx context.Context, date string) (int64, error)
	EnsureIndexes() error
}

type mongoCalendarRepo struct {
	coll *mongo.Collection
}

// NewMongoCalendarRepo constructs a new MongoDB CalendarRepository.
func NewMongoCalendarRepo() CalendarRepository {
	return &mongoCalendarRepo{
		coll: database.Database().Collection("calendar_events"),
	}
}
