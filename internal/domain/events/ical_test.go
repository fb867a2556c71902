package events

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
)

func TestBuildCalendar(t *testing.T) {
	cal, skipped := BuildCalendar(sampleEvents(), time.UTC, march24)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped events: %v", skipped)
	}
	out := cal.Serialize()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"METHOD:PUBLISH",
		"UID:1@pet-care-companion",
		"DTSTART:20250324T151300Z",
		"DTEND:20250324T161300Z",
		"SUMMARY:Medicina (Tommy)",
		"CATEGORIES:PRESCRIPTION",
		"X-PETCARE-STATUS:completed",
		"RRULE:FREQ=MONTHLY;INTERVAL=6",
		"RRULE:FREQ=DAILY;INTERVAL=1",
		"BEGIN:VALARM",
		"TRIGGER:-PT15M",
		"TRIGGER:-PT1H",
		"TRIGGER:-P1D",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("calendar missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "X-PETCARE-STATUS") != 1 {
		t.Fatalf("only completed events carry a status marker")
	}

	parsed, err := ics.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("serialized calendar does not parse: %v", err)
	}
	if n := len(parsed.Events()); n != 5 {
		t.Fatalf("expected 5 VEVENTs, got %d", n)
	}
}

func TestBuildCalendar_SkipsMalformed(t *testing.T) {
	evs := sampleEvents()
	evs[0].FullDate = "tomorrow"
	evs[1].Repeat = "fortnightly"

	cal, skipped := BuildCalendar(evs, time.UTC, march24)
	if !errors.Is(skipped["1"], ErrMalformedDate) {
		t.Fatalf("expected event 1 skipped for date, got %v", skipped["1"])
	}
	if !errors.Is(skipped["2"], ErrUnknownRepeat) {
		t.Fatalf("expected event 2 flagged for repeat, got %v", skipped["2"])
	}
	// el 2 se exporta igual, sin RRULE
	if n := len(cal.Events()); n != 4 {
		t.Fatalf("expected 4 VEVENTs, got %d", n)
	}
}

func TestTriggerFor(t *testing.T) {
	cases := map[time.Duration]string{
		0:                "PT0M",
		15 * time.Minute: "-PT15M",
		90 * time.Minute: "-PT90M",
		2 * time.Hour:    "-PT2H",
		48 * time.Hour:   "-P2D",
	}
	for in, want := range cases {
		if got := triggerFor(in); got != want {
			t.Fatalf("triggerFor(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestService_CalendarAppliesCriteria(t *testing.T) {
	svc := newTestService(newTestRepo(sampleEvents()), march24)

	out, err := svc.Calendar(context.Background(), Criteria{Pets: []string{"Bella"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Count(out, "BEGIN:VEVENT") != 1 || !strings.Contains(out, "UID:5@pet-care-companion") {
		t.Fatalf("expected only Bella's vaccination:\n%s", out)
	}
}
