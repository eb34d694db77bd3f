// FILE: database/repository/calendar/indexes.go
package calendarRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the calendar_events collection.
func (r *mongoCalendarRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on event ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: a day's events in chronological order
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}, {Key: "end", Value: 1}},
			Options: options.Index().SetName("date_start_end_idx"),
		},
		// Multikey index for attendee-filtered lookups
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "attendees", Value: 1}},
			Options: options.Index().SetName("date_attendees_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create calendar event indexes: %w", err)
	}
	return nil
}
