package events

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var march24 = time.Date(2025, time.March, 24, 10, 0, 0, 0, time.UTC)

func TestStartsAt(t *testing.T) {
	e := sampleEvents()[0]
	got, err := StartsAt(e, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.March, 24, 15, 13, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("StartsAt = %s, want %s", got, want)
	}

	e.FullDate = "24/03/2025"
	if _, err := StartsAt(e, time.UTC); !errors.Is(err, ErrMalformedDate) {
		t.Fatalf("expected ErrMalformedDate, got %v", err)
	}

	e = sampleEvents()[0]
	e.Time = "afternoon"
	if _, err := StartsAt(e, time.UTC); !errors.Is(err, ErrMalformedTime) {
		t.Fatalf("expected ErrMalformedTime, got %v", err)
	}
}

func TestInView(t *testing.T) {
	want := map[View][]string{
		ViewPast:  {},
		ViewToday: {"1", "2", "4"},
		ViewNext:  {"3", "5"},
	}
	for v, wantIDs := range want {
		got := make([]string, 0)
		for _, e := range sampleEvents() {
			in, err := InView(e, v, march24, time.UTC)
			if err != nil {
				t.Fatalf("InView(%s, %s) unexpected error: %v", e.ID, v, err)
			}
			if in {
				got = append(got, e.ID)
			}
		}
		if strings.Join(got, ",") != strings.Join(wantIDs, ",") {
			t.Fatalf("view %s = %v, want %v", v, got, wantIDs)
		}
	}

	if _, err := InView(sampleEvents()[0], View("later"), march24, time.UTC); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestInView_UsesLocationDay(t *testing.T) {
	// 02:00 UTC del 25 todavía es 24 en Buenos Aires (UTC-3).
	loc := time.FixedZone("ART", -3*3600)
	now := time.Date(2025, time.March, 25, 2, 0, 0, 0, time.UTC)

	in, err := InView(sampleEvents()[0], ViewToday, now, loc)
	if err != nil || !in {
		t.Fatalf("expected event on March 24 to be today in ART, in=%v err=%v", in, err)
	}
}

func TestRecurrence(t *testing.T) {
	start := time.Date(2025, time.March, 24, 15, 13, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want string
	}{
		{"Daily", "FREQ=DAILY;INTERVAL=1"},
		{"Weekly", "FREQ=WEEKLY;INTERVAL=1"},
		{"Monthly", "FREQ=MONTHLY;INTERVAL=1"},
		{"Yearly", "FREQ=YEARLY;INTERVAL=1"},
		{"annually", "FREQ=YEARLY;INTERVAL=1"},
		{"Every 6 months", "FREQ=MONTHLY;INTERVAL=6"},
		{"every  2 weeks", "FREQ=WEEKLY;INTERVAL=2"},
		{"Every 1 day", "FREQ=DAILY;INTERVAL=1"},
	}
	for _, tc := range cases {
		opt, err := Recurrence(tc.in, start)
		if err != nil {
			t.Fatalf("Recurrence(%q) unexpected error: %v", tc.in, err)
		}
		if opt == nil {
			t.Fatalf("Recurrence(%q) returned nil", tc.in)
		}
		if got := opt.RRuleString(); got != tc.want {
			t.Fatalf("Recurrence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "None", "never", "Once"} {
		opt, err := Recurrence(in, start)
		if err != nil || opt != nil {
			t.Fatalf("Recurrence(%q) expected no rule, got %v err=%v", in, opt, err)
		}
	}

	for _, in := range []string{"fortnightly", "every 0 days", "every month and a half"} {
		if _, err := Recurrence(in, start); !errors.Is(err, ErrUnknownRepeat) {
			t.Fatalf("Recurrence(%q) expected ErrUnknownRepeat, got %v", in, err)
		}
	}
}

func TestNextOccurrence(t *testing.T) {
	evs := sampleEvents()

	// Walk diario de las 16:00: la próxima es hoy mismo.
	got, ok := NextOccurrence(evs[3], march24, time.UTC)
	if !ok || !got.Equal(time.Date(2025, time.March, 24, 16, 0, 0, 0, time.UTC)) {
		t.Fatalf("walk next = %s ok=%v", got, ok)
	}

	// Medicina mensual, ya pasada: salta al mes siguiente.
	after := time.Date(2025, time.March, 24, 16, 0, 0, 0, time.UTC)
	got, ok = NextOccurrence(evs[0], after, time.UTC)
	if !ok || !got.Equal(time.Date(2025, time.April, 24, 15, 13, 0, 0, time.UTC)) {
		t.Fatalf("medicina next = %s ok=%v", got, ok)
	}

	// Vet cada 6 meses: a las 16:00 todavía falta la de hoy 17:30.
	got, ok = NextOccurrence(evs[1], after, time.UTC)
	if !ok || !got.Equal(time.Date(2025, time.March, 24, 17, 30, 0, 0, time.UTC)) {
		t.Fatalf("vet next (same day) = %s ok=%v", got, ok)
	}
	got, ok = NextOccurrence(evs[1], time.Date(2025, time.March, 24, 18, 0, 0, 0, time.UTC), time.UTC)
	if !ok || !got.Equal(time.Date(2025, time.September, 24, 17, 30, 0, 0, time.UTC)) {
		t.Fatalf("vet next = %s ok=%v", got, ok)
	}

	// Sin repetición y ya pasado: no hay próxima.
	once := evs[0]
	once.Repeat = "None"
	if _, ok := NextOccurrence(once, after, time.UTC); ok {
		t.Fatalf("non repeating past event should have no next occurrence")
	}
}

func TestReminderOffset(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"15 minutes before", 15 * time.Minute},
		{"30 minutes before", 30 * time.Minute},
		{"1 hour before", time.Hour},
		{"2 hours before", 2 * time.Hour},
		{"1 day before", 24 * time.Hour},
		{"1 week before", 7 * 24 * time.Hour},
		{"At time of event", 0},
	}
	for _, tc := range cases {
		got, ok, err := ReminderOffset(tc.in)
		if err != nil || !ok {
			t.Fatalf("ReminderOffset(%q) ok=%v err=%v", tc.in, ok, err)
		}
		if got != tc.want {
			t.Fatalf("ReminderOffset(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, ok, err := ReminderOffset("None"); ok || err != nil {
		t.Fatalf("None should disable the reminder, ok=%v err=%v", ok, err)
	}
	if _, _, err := ReminderOffset("a bit before"); !errors.Is(err, ErrUnknownReminder) {
		t.Fatalf("expected ErrUnknownReminder, got %v", err)
	}
}
