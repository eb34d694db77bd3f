package meeting

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"huddle/models"
	"huddle/services/availability"
	"huddle/utils"
)

const minutesPerDay = availability.MinutesPerDay

// normalizedRequest is a meeting request after attendee clean-up. It is also
// the cache key material, so its JSON form must be stable.
type normalizedRequest struct {
	Date      string   `json:"date"`
	Mandatory []string `json:"mandatory"`
	Optional  []string `json:"optional"`
	Duration  int      `json:"duration"`
}

// normalizeAttendees trims, drops blanks, dedupes and sorts identifiers.
func normalizeAttendees(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func buildRequest(in models.MeetingQueryRequest) (normalizedRequest, error) {
	if _, err := utils.ParseDate(in.Date); err != nil {
		return normalizedRequest{}, NewValidationError("date", err.Error())
	}
	if in.Duration < 0 {
		return normalizedRequest{}, NewValidationError("duration", "must not be negative")
	}
	return normalizedRequest{
		Date:      in.Date,
		Mandatory: normalizeAttendees(in.Attendees),
		Optional:  normalizeAttendees(in.OptionalAttendees),
		Duration:  in.Duration,
	}, nil
}

func (r normalizedRequest) meetingRequest() availability.MeetingRequest {
	return availability.NewMeetingRequest(r.Mandatory, r.Optional, r.Duration)
}

// attendees is everyone whose events can affect the result.
func (r normalizedRequest) attendees() []string {
	return normalizeAttendees(append(append([]string{}, r.Mandatory...), r.Optional...))
}

func (r normalizedRequest) cacheKey(version int64) (string, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("%s%s:v%d:%s", utils.QueryCachePrefix, r.Date, version, hex.EncodeToString(sum[:])), nil
}

func toEvents(docs []models.CalendarEvent) []availability.Event {
	events := make([]availability.Event, 0, len(docs))
	for _, doc := range docs {
		events = append(events, availability.NewEvent(
			doc.Title,
			availability.FromStartEnd(doc.Start, doc.End, false),
			doc.Attendees...,
		))
	}
	return events
}

func toIntervals(slots []availability.TimeRange) []models.AvailableInterval {
	out := make([]models.AvailableInterval, 0, len(slots))
	for _, s := range slots {
		out = append(out, models.AvailableInterval{
			Start:    s.Start(),
			End:      s.End(),
			Duration: s.Duration(),
			Label:    utils.SlotLabel(s.Start(), s.End()),
		})
	}
	return out
}

// eventFromDetails validates an event payload and builds the stored document.
func eventFromDetails(date string, d models.EventDetails) (models.CalendarEvent, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return models.CalendarEvent{}, NewValidationError("date", err.Error())
	}
	if d.Start < 0 || d.Start >= minutesPerDay {
		return models.CalendarEvent{}, NewValidationError("start", fmt.Sprintf("must be within [0, %d)", minutesPerDay))
	}
	if d.End <= d.Start || d.End > minutesPerDay {
		return models.CalendarEvent{}, NewValidationError("end", fmt.Sprintf("must be after start and at most %d", minutesPerDay))
	}
	attendees := normalizeAttendees(d.Attendees)
	if len(attendees) == 0 {
		return models.CalendarEvent{}, NewValidationError("attendees", "at least one attendee is required")
	}
	return models.CalendarEvent{
		Date:      date,
		Title:     strings.TrimSpace(d.Title),
		Start:     d.Start,
		End:       d.End,
		Attendees: attendees,
	}, nil
}
