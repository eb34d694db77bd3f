package meeting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"huddle/metrics"
	"huddle/models"
	"huddle/services/availability"
	"huddle/utils"
)

// FindMeetingSlots loads the day's relevant events and computes the free
// slots for the request. Results are cached per date until the date changes.
func (s *DefaultMeetingService) FindMeetingSlots(ctx context.Context, in models.MeetingQueryRequest) (*models.MeetingQueryResponse, error) {
	logger := utils.GetLogger()
	started := time.Now()

	req, err := buildRequest(in)
	if err != nil {
		metrics.RecordMeetingQuery(metrics.OutcomeInvalid, started)
		return nil, err
	}

	cacheKey := s.lookupKey(ctx, req)
	if cacheKey != "" {
		cached, ok, err := s.Cache.Get(ctx, cacheKey)
		switch {
		case err != nil:
			metrics.RecordCacheLookup(metrics.CacheError)
			logger.Warn("FindMeetingSlots: cache read failed", zap.String("date", req.Date), zap.Error(err))
		case ok:
			metrics.RecordCacheLookup(metrics.CacheHit)
			cached.Cached = true
			metrics.RecordMeetingQuery(outcomeOf(cached), started)
			return cached, nil
		default:
			metrics.RecordCacheLookup(metrics.CacheMiss)
		}
	}

	docs, err := s.Repo.GetByDateForAttendees(ctx, req.Date, req.attendees())
	if err != nil {
		metrics.RecordMeetingQuery(metrics.OutcomeError, started)
		return nil, fmt.Errorf("failed to load calendar events: %w", err)
	}

	// The request was validated above, so a rejection here means a stored
	// event is malformed.
	res, err := availability.Resolve(toEvents(docs), req.meetingRequest())
	if err != nil {
		metrics.RecordMeetingQuery(metrics.OutcomeError, started)
		return nil, fmt.Errorf("stored events for %s are inconsistent: %v", req.Date, err)
	}

	resp := &models.MeetingQueryResponse{
		Date:                     req.Date,
		Duration:                 req.Duration,
		Slots:                    toIntervals(res.Slots),
		OptionalAttendeesHonored: res.OptionalHonored,
	}
	outcome := outcomeOf(resp)
	metrics.RecordMeetingQuery(outcome, started)
	logger.Debug("meeting slots computed",
		zap.String("date", req.Date),
		zap.Int("events", len(docs)),
		zap.Int("slots", len(resp.Slots)),
		zap.String("outcome", outcome))

	if cacheKey != "" {
		if err := s.Cache.Set(ctx, cacheKey, resp); err != nil {
			logger.Warn("FindMeetingSlots: cache write failed", zap.String("date", req.Date), zap.Error(err))
		}
	}
	return resp, nil
}

// lookupKey returns "" when the cache cannot be used for this call.
func (s *DefaultMeetingService) lookupKey(ctx context.Context, req normalizedRequest) string {
	logger := utils.GetLogger()
	version, err := s.Cache.Version(ctx, req.Date)
	if err != nil {
		metrics.RecordCacheLookup(metrics.CacheError)
		logger.Warn("FindMeetingSlots: cache version unavailable", zap.String("date", req.Date), zap.Error(err))
		return ""
	}
	key, err := req.cacheKey(version)
	if err != nil {
		logger.Warn("FindMeetingSlots: cannot build cache key", zap.Error(err))
		return ""
	}
	return key
}

func outcomeOf(resp *models.MeetingQueryResponse) string {
	switch {
	case len(resp.Slots) == 0:
		return metrics.OutcomeEmpty
	case resp.OptionalAttendeesHonored:
		return metrics.OutcomeHonored
	default:
		return metrics.OutcomeFallback
	}
}
