package tasks

import (
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
)

const TypeCalendarPurge = "calendar:purge"

// PurgePayload overrides the configured retention for a single run.
type PurgePayload struct {
	RetentionDays int `json:"retentionDays,omitempty"`
}

// NewPurgeTask builds a purge task; zero days means the configured retention.
func NewPurgeTask(retentionDays int, opts ...asynq.Option) (*asynq.Task, error) {
	b, err := json.Marshal(PurgePayload{RetentionDays: retentionDays})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCalendarPurge, b, opts...), nil
}

// ParsePurgePayload decodes a purge payload; an empty payload is valid.
func ParsePurgePayload(task *asynq.Task) (PurgePayload, error) {
	var p PurgePayload
	if len(task.Payload()) == 0 {
		return p, nil
	}
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
