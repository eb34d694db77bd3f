// File: database/repository/calendar/crud.go
package calendarRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"huddle/models"
)

func (r *mongoCalendarRepo) Create(ctx context.Context, event *models.CalendarEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	prepareForInsert(event, time.Now().UTC())
	_, err := r.coll.InsertOne(ctx, event)
	return err
}

func (r *mongoCalendarRepo) CreateMany(ctx context.Context, events []models.CalendarEvent) ([]string, error) {
	if len(events) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, len(events))
	ids := make([]string, len(events))
	for i := range events {
		prepareForInsert(&events[i], now)
		docs[i] = events[i]
		ids[i] = events[i].ID
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *mongoCalendarRepo) GetByID(ctx context.Context, id string) (*models.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var event models.CalendarEvent
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *mongoCalendarRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteBefore removes every event dated strictly before date.
func (r *mongoCalendarRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, beforeDateFilter(date))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func prepareForInsert(event *models.CalendarEvent, now time.Time) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
}
