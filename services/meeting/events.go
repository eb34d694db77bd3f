package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"huddle/metrics"
	"huddle/models"
	"huddle/utils"
)

func (s *DefaultMeetingService) CreateEvent(ctx context.Context, input models.CalendarEventInput) (*models.CalendarEvent, error) {
	event, err := eventFromDetails(input.Date, input.EventDetails)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to store calendar event: %w", err)
	}
	metrics.RecordEventWrites("create", 1)
	s.invalidate(ctx, event.Date)
	return &event, nil
}

// ImportEvents validates the whole batch before storing any of it.
func (s *DefaultMeetingService) ImportEvents(ctx context.Context, date string, details []models.EventDetails) ([]string, error) {
	if len(details) == 0 {
		return nil, NewValidationError("events", "at least one event is required")
	}
	events := make([]models.CalendarEvent, 0, len(details))
	for i, d := range details {
		event, err := eventFromDetails(date, d)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return nil, NewValidationError(fmt.Sprintf("events[%d].%s", i, verr.Field), verr.Message)
			}
			return nil, err
		}
		events = append(events, event)
	}

	ids, err := s.Repo.CreateMany(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("failed to import calendar events: %w", err)
	}
	metrics.RecordEventWrites("import", len(ids))
	s.invalidate(ctx, date)
	return ids, nil
}

func (s *DefaultMeetingService) GetEvents(ctx context.Context, date string) ([]models.CalendarEvent, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, NewValidationError("date", err.Error())
	}
	events, err := s.Repo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar events: %w", err)
	}
	if events == nil {
		events = []models.CalendarEvent{}
	}
	return events, nil
}

func (s *DefaultMeetingService) DeleteEvent(ctx context.Context, id string) error {
	event, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load calendar event: %w", err)
	}

	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	metrics.RecordEventWrites("delete", 1)
	s.invalidate(ctx, event.Date)
	return nil
}

// PurgeEventsBefore deletes events dated before cutoff. Cached results for
// purged dates are left to expire on their own.
func (s *DefaultMeetingService) PurgeEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	date := cutoff.Format(utils.DateLayout)
	n, err := s.Repo.DeleteBefore(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to purge events before %s: %w", date, err)
	}
	metrics.RecordEventWrites("purge", int(n))
	utils.GetLogger().Info("purged calendar events", zap.String("before", date), zap.Int64("deleted", n))
	return n, nil
}

// invalidate is best-effort: a failed bump leaves stale entries until their TTL.
func (s *DefaultMeetingService) invalidate(ctx context.Context, date string) {
	if err := s.Cache.Invalidate(ctx, date); err != nil {
		utils.GetLogger().Error("failed to invalidate query cache",
			zap.String("date", date), zap.Error(err))
	}
}
