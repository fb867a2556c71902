package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/events/{eventID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events/"+id, nil))
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues("/events/{eventID}", http.MethodGet, "404"))
	if got != 3 {
		t.Fatalf("requests = %v, want 3", got)
	}
}

func TestStatusChangedAndReminders(t *testing.T) {
	m := New()
	m.StatusChanged("completed")
	m.StatusChanged("completed")
	m.ReminderSent()

	if got := testutil.ToFloat64(m.toggles.WithLabelValues("completed")); got != 2 {
		t.Fatalf("toggles = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.reminders); got != 1 {
		t.Fatalf("reminders = %v, want 1", got)
	}

	var nilMetrics *Metrics
	nilMetrics.StatusChanged("upcoming") // no-op
	nilMetrics.ReminderSent()
}

func TestHandler_ExposesNamespace(t *testing.T) {
	m := New()
	m.StatusChanged("upcoming")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	res, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "petcare_event_status_changes_total") {
		t.Fatalf("metric missing in exposition:\n%s", body)
	}
}
