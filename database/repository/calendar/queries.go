// File: database/repository/calendar/queries.go
package calendarRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"huddle/models"
)

// chronological matches the order the availability engine sorts by.
var chronological = bson.D{
	{Key: "start", Value: 1},
	{Key: "end", Value: 1},
	{Key: "createdAt", Value: 1},
}

func (r *mongoCalendarRepo) GetByDate(ctx context.Context, date string) ([]models.CalendarEvent, error) {
	return r.find(ctx, dateFilter(date))
}

// GetByDateForAttendees loads only the events that involve at least one of
// the given attendees; nothing else can affect a meeting query.
func (r *mongoCalendarRepo) GetByDateForAttendees(ctx context.Context, date string, attendees []string) ([]models.CalendarEvent, error) {
	if len(attendees) == 0 {
		return nil, nil
	}
	return r.find(ctx, attendeeDateFilter(date, attendees))
}

func (r *mongoCalendarRepo) find(ctx context.Context, filter bson.M) ([]models.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(chronological))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.CalendarEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func dateFilter(date string) bson.M {
	return bson.M{"date": date}
}

func attendeeDateFilter(date string, attendees []string) bson.M {
	return bson.M{
		"date":      date,
		"attendees": bson.M{"$in": attendees},
	}
}

// Dates are stored as YYYY-MM-DD so lexical order is chronological.
func beforeDateFilter(date string) bson.M {
	return bson.M{"date": bson.M{"$lt": date}}
}
