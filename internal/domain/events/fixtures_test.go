package events

import (
	"context"
	"errors"
	"sync"
)

// sampleEvents reproduce el dataset de demo en el orden del seed.
func sampleEvents() []Event {
	return []Event{
		{ID: "1", Title: "Medicina", Pet: "Tommy", Time: "3:13 PM", Date: "Mon, Mar 24", FullDate: "March 24, 2025", Type: EventTypePrescription, Status: EventStatusCompleted, Location: "Home", Reminder: "15 minutes before", Repeat: "Monthly",
			Attachments: []Attachment{{ID: "1", Name: "Prescription.pdf", Icon: "file-pdf-box"}}},
		{ID: "2", Title: "Vet Checkup", Pet: "Tommy", Time: "5:30 PM", Date: "Mon, Mar 24", FullDate: "March 24, 2025", Type: EventTypeAppointment, Status: EventStatusUpcoming, Reminder: "1 hour before", Repeat: "Every 6 months"},
		{ID: "3", Title: "Grooming", Pet: "Tommy", Time: "11:00 AM", Date: "Tue, Mar 25", FullDate: "March 25, 2025", Type: EventTypeGrooming, Status: EventStatusUpcoming, Reminder: "30 minutes before", Repeat: "Monthly"},
		{ID: "4", Title: "Walk", Pet: "Max", Time: "4:00 PM", Date: "Mon, Mar 24", FullDate: "March 24, 2025", Type: EventTypeOther, Status: EventStatusUpcoming, Reminder: "15 minutes before", Repeat: "Daily"},
		{ID: "5", Title: "Vaccination", Pet: "Bella", Time: "2:30 PM", Date: "Wed, Mar 26", FullDate: "March 26, 2025", Type: EventTypePrescription, Status: EventStatusUpcoming, Reminder: "1 day before", Repeat: "Yearly"},
	}
}

func ids(evs []Event) []string {
	out := make([]string, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.ID)
	}
	return out
}

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoDown = errors.New("repo: down")

type testRepo struct {
	mu    sync.Mutex
	items []Event
	fail  bool
}

func newTestRepo(evs []Event) *testRepo {
	return &testRepo{items: append([]Event(nil), evs...)}
}

func (r *testRepo) Seed(ctx context.Context, evs []Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]Event(nil), evs...)
	return nil
}

func (r *testRepo) List(ctx context.Context) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errRepoDown
	}
	return append([]Event(nil), r.items...), nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.ID == id {
			return e, nil
		}
	}
	return Event{}, ErrNotFound
}

func (r *testRepo) SetStatus(ctx context.Context, id string, status EventStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}
