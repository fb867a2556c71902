package reminders

import (
	"testing"
	"time"

	"pet-care-companion/internal/domain/events"
)

func at(day, hour, min int) time.Time {
	return time.Date(2025, time.March, day, hour, min, 0, 0, time.UTC)
}

func testEvents() []events.Event {
	return []events.Event{
		{ID: "1", Title: "Medicina", Pet: "Tommy", Time: "3:13 PM", FullDate: "March 24, 2025", Status: events.EventStatusCompleted, Reminder: "15 minutes before", Repeat: "Monthly"},
		{ID: "2", Title: "Vet Checkup", Pet: "Tommy", Time: "5:30 PM", FullDate: "March 24, 2025", Status: events.EventStatusUpcoming, Reminder: "1 hour before", Repeat: "Every 6 months"},
		{ID: "4", Title: "Walk", Pet: "Max", Time: "4:00 PM", FullDate: "March 24, 2025", Status: events.EventStatusUpcoming, Reminder: "15 minutes before", Repeat: "Daily"},
		{ID: "5", Title: "Vaccination", Pet: "Bella", Time: "2:30 PM", FullDate: "March 26, 2025", Status: events.EventStatusUpcoming, Reminder: "1 day before", Repeat: "Yearly"},
		{ID: "6", Title: "Broken", Pet: "Max", Time: "4:00 PM", FullDate: "March 24, 2025", Status: events.EventStatusUpcoming, Reminder: "whenever"},
		{ID: "7", Title: "Silent", Pet: "Max", Time: "4:00 PM", FullDate: "March 24, 2025", Status: events.EventStatusUpcoming, Reminder: "None"},
	}
}

func dueIDs(rs []Reminder) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Event.ID)
	}
	return out
}

func TestDue(t *testing.T) {
	rs := Due(testEvents(), at(24, 15, 40), at(24, 15, 50), time.UTC)
	if len(rs) != 1 || rs[0].Event.ID != "4" {
		t.Fatalf("expected only the walk, got %v", dueIDs(rs))
	}
	if !rs[0].FireAt.Equal(at(24, 15, 45)) || !rs[0].StartsAt.Equal(at(24, 16, 0)) {
		t.Fatalf("unexpected instants: fire=%s start=%s", rs[0].FireAt, rs[0].StartsAt)
	}
}

func TestDue_WindowIsHalfOpen(t *testing.T) {
	evs := testEvents()

	if rs := Due(evs, at(24, 15, 45), at(24, 15, 50), time.UTC); len(rs) != 0 {
		t.Fatalf("fire instant equal to from is excluded, got %v", dueIDs(rs))
	}
	if rs := Due(evs, at(24, 15, 44), at(24, 15, 45), time.UTC); len(rs) != 1 {
		t.Fatalf("fire instant equal to to is included, got %v", dueIDs(rs))
	}
	if rs := Due(evs, at(24, 15, 50), at(24, 15, 40), time.UTC); len(rs) != 0 {
		t.Fatalf("inverted window yields nothing")
	}
}

func TestDue_RecurringAndDayBefore(t *testing.T) {
	evs := testEvents()

	// el paseo diario también avisa días después
	rs := Due(evs, at(30, 15, 40), at(30, 15, 50), time.UTC)
	if len(rs) != 1 || !rs[0].StartsAt.Equal(at(30, 16, 0)) {
		t.Fatalf("expected walk occurrence on March 30, got %+v", rs)
	}

	// vacuna: 1 día antes
	rs = Due(evs, at(25, 14, 0), at(25, 14, 30), time.UTC)
	if len(rs) != 1 || rs[0].Event.ID != "5" {
		t.Fatalf("expected vaccination reminder, got %v", dueIDs(rs))
	}

	// vet: 1 hora antes
	rs = Due(evs, at(24, 16, 29), at(24, 16, 31), time.UTC)
	if len(rs) != 1 || rs[0].Event.ID != "2" {
		t.Fatalf("expected vet reminder, got %v", dueIDs(rs))
	}
}
