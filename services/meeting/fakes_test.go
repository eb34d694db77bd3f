package meeting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"huddle/models"
)

type fakeRepo struct {
	mu           sync.Mutex
	events       []models.CalendarEvent
	nextID       int
	queries      int
	failQueries  error
	lastAttendee []string
}

func (r *fakeRepo) Create(_ context.Context, event *models.CalendarEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	event.ID = fmt.Sprintf("evt-%d", r.nextID)
	event.CreatedAt = time.Now()
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeRepo) CreateMany(ctx context.Context, events []models.CalendarEvent) ([]string, error) {
	ids := make([]string, 0, len(events))
	for i := range events {
		if err := r.Create(ctx, &events[i]); err != nil {
			return nil, err
		}
		ids = append(ids, events[i].ID)
	}
	return ids, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*models.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeRepo) GetByDate(_ context.Context, date string) ([]models.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CalendarEvent
	for _, e := range r.events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByDateForAttendees(_ context.Context, date string, attendees []string) ([]models.CalendarEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries++
	r.lastAttendee = attendees
	if r.failQueries != nil {
		return nil, r.failQueries
	}
	wanted := make(map[string]bool, len(attendees))
	for _, a := range attendees {
		wanted[a] = true
	}
	var out []models.CalendarEvent
	for _, e := range r.events {
		if e.Date != date {
			continue
		}
		for _, a := range e.Attendees {
			if wanted[a] {
				out = append(out, e)
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

func (r *fakeRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeRepo) DeleteBefore(_ context.Context, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.events[:0]
	var n int64
	for _, e := range r.events {
		if e.Date < date {
			n++
			continue
		}
		kept = append(kept, e)
	}
	r.events = kept
	return n, nil
}

func (r *fakeRepo) EnsureIndexes() error { return nil }

func (r *fakeRepo) queryCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries
}

// memoryCache mirrors the versioned behaviour of the Redis cache.
type memoryCache struct {
	mu          sync.Mutex
	versions    map[string]int64
	entries     map[string]models.MeetingQueryResponse
	invalidated []string
	failVersion bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		versions: map[string]int64{},
		entries:  map[string]models.MeetingQueryResponse{},
	}
}

func (c *memoryCache) Version(_ context.Context, date string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failVersion {
		return 0, errors.New("cache unavailable")
	}
	return c.versions[date], nil
}

func (c *memoryCache) Get(_ context.Context, key string) (*models.MeetingQueryResponse, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	resp, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	return &resp, true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, resp *models.MeetingQueryResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = *resp
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions[date]++
	c.invalidated = append(c.invalidated, date)
	return nil
}
