package events

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func newTestService(repo Repository, now time.Time) *Service {
	return NewService(repo,
		WithClock(func() time.Time { return now }),
		WithLocation(time.UTC),
	)
}

func TestService_ListFilters(t *testing.T) {
	svc := newTestService(newTestRepo(sampleEvents()), march24)

	got, err := svc.List(context.Background(), Criteria{Pets: []string{"Tommy"}, HideCompleted: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids(got), []string{"2", "3"}) {
		t.Fatalf("unexpected ids: %v", ids(got))
	}
}

func TestService_ListWrapsRepoError(t *testing.T) {
	repo := newTestRepo(sampleEvents())
	repo.fail = true
	svc := newTestService(repo, march24)

	if _, err := svc.List(context.Background(), Criteria{}); !errors.Is(err, errRepoDown) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestService_Get(t *testing.T) {
	svc := newTestService(newTestRepo(sampleEvents()), march24)
	ctx := context.Background()

	e, err := svc.Get(ctx, "5")
	if err != nil || e.Title != "Vaccination" {
		t.Fatalf("expected Vaccination, got %+v err=%v", e, err)
	}
	if _, err := svc.Get(ctx, "42"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_ToggleCompletion(t *testing.T) {
	repo := newTestRepo(sampleEvents())
	svc := newTestService(repo, march24)
	ctx := context.Background()

	var notified []Event
	svc.OnStatusChange(func(ctx context.Context, e Event) {
		notified = append(notified, e)
	})

	e, err := svc.ToggleCompletion(ctx, "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Status != EventStatusCompleted {
		t.Fatalf("expected completed, got %s", e.Status)
	}
	stored, _ := repo.GetByID(ctx, "2")
	if stored.Status != EventStatusCompleted {
		t.Fatalf("status not persisted: %s", stored.Status)
	}
	if len(notified) != 1 || notified[0].ID != "2" {
		t.Fatalf("expected one notification for event 2, got %+v", notified)
	}

	// segundo toggle vuelve a upcoming
	e, err = svc.ToggleCompletion(ctx, "2")
	if err != nil || e.Status != EventStatusUpcoming {
		t.Fatalf("expected upcoming, got %s err=%v", e.Status, err)
	}

	// los demás eventos no cambian
	all, _ := repo.List(ctx)
	if !reflect.DeepEqual(all, sampleEvents()) {
		t.Fatalf("unexpected side effects on other events")
	}
}

func TestService_ToggleCompletion_Errors(t *testing.T) {
	svc := newTestService(newTestRepo(sampleEvents()), march24)
	called := false
	svc.OnStatusChange(func(ctx context.Context, e Event) { called = true })

	if _, err := svc.ToggleCompletion(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ToggleCompletion(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if called {
		t.Fatalf("listeners must not run on failed toggles")
	}
}

func TestService_AgendaToday(t *testing.T) {
	svc := newTestService(newTestRepo(sampleEvents()), march24)

	a, err := svc.Agenda(context.Background(), ViewToday, Criteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Total != 3 || a.HasMissed {
		t.Fatalf("unexpected agenda: total=%d missed=%v", a.Total, a.HasMissed)
	}
	want := [][]string{{}, {"1", "4"}, {"2"}}
	for i, g := range a.Groups {
		if !reflect.DeepEqual(ids(g.Events), want[i]) {
			t.Fatalf("group %s = %v, want %v", g.TimeOfDay, ids(g.Events), want[i])
		}
	}
}

func TestService_AgendaPastFlagsMissed(t *testing.T) {
	later := time.Date(2025, time.March, 27, 8, 0, 0, 0, time.UTC)
	svc := newTestService(newTestRepo(sampleEvents()), later)

	a, err := svc.Agenda(context.Background(), ViewPast, Criteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Total != 5 || !a.HasMissed {
		t.Fatalf("expected 5 past events with missed ones, got total=%d missed=%v", a.Total, a.HasMissed)
	}

	// solo el completado: no hay pendientes
	a, _ = svc.Agenda(context.Background(), ViewPast, Criteria{Types: []EventType{EventTypePrescription}, Pets: []string{"Tommy"}})
	if a.Total != 1 || a.HasMissed {
		t.Fatalf("expected only completed Medicina, got total=%d missed=%v", a.Total, a.HasMissed)
	}
}

func TestService_AgendaSkipsMalformedDates(t *testing.T) {
	evs := sampleEvents()
	evs[3].FullDate = "sometime"
	svc := newTestService(newTestRepo(evs), march24)

	a, err := svc.Agenda(context.Background(), ViewToday, Criteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Total != 2 {
		t.Fatalf("expected malformed event to be skipped, total=%d", a.Total)
	}
}

func TestService_AgendaUnscheduledTime(t *testing.T) {
	evs := sampleEvents()
	evs[1].Time = "whenever"
	svc := newTestService(newTestRepo(evs), march24)

	a, err := svc.Agenda(context.Background(), ViewToday, Criteria{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Total != 3 {
		t.Fatalf("expected event with bad time to stay in today, total=%d", a.Total)
	}
	last := a.Groups[len(a.Groups)-1]
	if last.TimeOfDay != TimeOfDayUnscheduled || !reflect.DeepEqual(ids(last.Events), []string{"2"}) {
		t.Fatalf("expected event 2 unscheduled, got %+v", last)
	}
}

func TestService_Today(t *testing.T) {
	svc := newTestService(newTestRepo(sampleEvents()), time.Date(2025, time.March, 25, 7, 0, 0, 0, time.UTC))

	got, err := svc.Today(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids(got), []string{"3"}) {
		t.Fatalf("expected only grooming today, got %v", ids(got))
	}
}
