package calendarRepo

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"huddle/models"
)

func TestAttendeeDateFilter(t *testing.T) {
	got := attendeeDateFilter("2026-10-18", []string{"ana", "ben"})
	want := bson.M{
		"date":      "2026-10-18",
		"attendees": bson.M{"$in": []string{"ana", "ben"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("filter = %v, want %v", got, want)
	}
}

func TestBeforeDateFilter(t *testing.T) {
	got := beforeDateFilter("2026-09-18")
	want := bson.M{"date": bson.M{"$lt": "2026-09-18"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("filter = %v, want %v", got, want)
	}
}

func TestPrepareForInsert(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	ev := models.CalendarEvent{Title: "standup"}
	prepareForInsert(&ev, now)
	if ev.ID == "" {
		t.Fatal("ID not assigned")
	}
	if !ev.CreatedAt.Equal(now) {
		t.Fatalf("CreatedAt = %v", ev.CreatedAt)
	}

	kept := models.CalendarEvent{ID: "fixed", CreatedAt: now.Add(-time.Hour)}
	prepareForInsert(&kept, now)
	if kept.ID != "fixed" || !kept.CreatedAt.Equal(now.Add(-time.Hour)) {
		t.Fatalf("existing fields overwritten: %+v", kept)
	}
}
