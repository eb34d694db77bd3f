// Command seed fills the calendar with a week of sample events for local testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"huddle/config"
	"huddle/database"
	calendarRepo "huddle/database/repository/calendar"
	"huddle/models"
	"huddle/utils"

	"go.uber.org/zap"
)

// candidateSlot is a realistic meeting window in minutes from midnight.
type candidateSlot struct {
	Start int
	End   int
}

var candidateSlots = []candidateSlot{
	{Start: 480, End: 510},   // 8:00 AM - 8:30 AM
	{Start: 540, End: 555},   // 9:00 AM - 9:15 AM
	{Start: 600, End: 660},   // 10:00 AM - 11:00 AM
	{Start: 690, End: 750},   // 11:30 AM - 12:30 PM
	{Start: 780, End: 900},   // 1:00 PM - 3:00 PM
	{Start: 930, End: 990},   // 3:30 PM - 4:30 PM
	{Start: 1020, End: 1080}, // 5:00 PM - 6:00 PM
}

var titles = []string{"Standup", "1:1", "Design review", "Planning", "Focus time", "Interview", "Retro"}

func main() {
	people := flag.Int("people", 6, "number of sample attendees")
	days := flag.Int("days", 7, "number of days to seed, starting today")
	perDay := flag.Int("events", 8, "events per day")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	database.InitDB()
	repo := calendarRepo.NewMongoCalendarRepo()
	if err := repo.EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	attendees := make([]string, *people)
	for i := range attendees {
		attendees[i] = fmt.Sprintf("person-%d@example.com", i+1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := time.Now().UTC()
	total := 0
	for d := 0; d < *days; d++ {
		date := today.AddDate(0, 0, d).Format(utils.DateLayout)
		events := make([]models.CalendarEvent, 0, *perDay)
		for i := 0; i < *perDay; i++ {
			slot := candidateSlots[rng.Intn(len(candidateSlots))]
			events = append(events, models.CalendarEvent{
				Date:      date,
				Title:     titles[rng.Intn(len(titles))],
				Start:     slot.Start,
				End:       slot.End,
				Attendees: pickAttendees(rng, attendees),
			})
		}
		ids, err := repo.CreateMany(ctx, events)
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", date, err)
		}
		total += len(ids)
	}

	logger.Info("seeded calendar", zap.Int("events", total), zap.Int("days", *days))
	_ = database.CloseDB(context.Background())
}

// pickAttendees returns one to three distinct attendees.
func pickAttendees(rng *rand.Rand, pool []string) []string {
	n := 1 + rng.Intn(3)
	if n > len(pool) {
		n = len(pool)
	}
	perm := rng.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, idx := range perm {
		out[i] = pool[idx]
	}
	return out
}
