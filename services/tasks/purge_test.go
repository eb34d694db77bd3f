package tasks

import (
	"testing"

	"github.com/hibiken/asynq"
)

func TestPurgeTaskPayload(t *testing.T) {
	task, err := NewPurgeTask(14)
	if err != nil {
		t.Fatal(err)
	}
	if task.Type() != TypeCalendarPurge {
		t.Errorf("type = %q", task.Type())
	}
	p, err := ParsePurgePayload(task)
	if err != nil || p.RetentionDays != 14 {
		t.Errorf("payload = %+v, err = %v", p, err)
	}

	p, err = ParsePurgePayload(asynq.NewTask(TypeCalendarPurge, nil))
	if err != nil || p.RetentionDays != 0 {
		t.Errorf("empty payload = %+v, err = %v", p, err)
	}
	if _, err := ParsePurgePayload(asynq.NewTask(TypeCalendarPurge, []byte("{"))); err == nil {
		t.Error("expected an error for a malformed payload")
	}
}
