package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"huddle/handlers"

	"github.com/gin-gonic/gin"
)

func stub(name string) gin.HandlerFunc {
	return func(c *gin.Context) { c.String(http.StatusOK, name) }
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		FindMeetingSlotsHandler: stub("query"),
		CreateEventHandler:      stub("create"),
		ImportEventsHandler:     stub("import"),
		GetEventsHandler:        stub("list"),
		DeleteEventHandler:      stub("delete"),
	})

	tests := []struct {
		method, path, want string
	}{
		{http.MethodPost, "/api/meetings/query", "query"},
		{http.MethodPost, "/api/calendar/events", "create"},
		{http.MethodPost, "/api/calendar/events/import", "import"},
		{http.MethodGet, "/api/calendar/events?date=2026-10-19", "list"},
		{http.MethodDelete, "/api/calendar/events/abc", "delete"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != http.StatusOK || w.Body.String() != tt.want {
			t.Errorf("%s %s: status %d body %q, want %q", tt.method, tt.path, w.Code, w.Body.String(), tt.want)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"dependencies"`) {
		t.Errorf("health: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Errorf("metrics: status %d", w.Code)
	}
}
