package utils

import (
	"context"
	"errors"
	"testing"
)

func TestRefreshHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	status := refreshHealth(context.Background(), ok, down)
	if !status.Mongo || status.Redis {
		t.Fatalf("status = %+v, want mongo up and redis down", status)
	}
	if got := GetHealthStatus(); got != status {
		t.Fatalf("stored status = %+v, want %+v", got, status)
	}

	status = refreshHealth(context.Background(), ok, nil)
	if status.Redis {
		t.Fatal("missing redis client should report unhealthy")
	}
}
