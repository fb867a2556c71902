package memory

import (
	"context"
	"strings"
	"sync"

	"pet-care-companion/internal/domain/events"
)

type eventRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]events.Event
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[string]events.Event),
	}
}

// Seed reemplaza el contenido por el dataset, en su orden. Si un evento ya
// existía, conserva el status guardado (re-seed no pisa toggles).
func (r *eventRepo) Seed(ctx context.Context, evs []events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := make([]string, 0, len(evs))
	byID := make(map[string]events.Event, len(evs))
	for _, e := range evs {
		if strings.TrimSpace(e.ID) == "" {
			return events.ErrInvalidInput
		}
		if prev, ok := r.byID[e.ID]; ok {
			e.Status = prev.Status
		}
		if _, dup := byID[e.ID]; !dup {
			order = append(order, e.ID)
		}
		byID[e.ID] = clone(e)
	}
	r.order, r.byID = order, byID
	return nil
}

func (r *eventRepo) List(ctx context.Context) ([]events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.Event, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.byID[id]))
	}
	return out, nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return events.Event{}, events.ErrNotFound
	}
	return clone(e), nil
}

func (r *eventRepo) SetStatus(ctx context.Context, id string, status events.EventStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return events.ErrNotFound
	}
	e.Status = status
	r.byID[id] = e
	return nil
}

// clone evita compartir el slice de adjuntos con el caller.
func clone(e events.Event) events.Event {
	if e.Attachments != nil {
		e.Attachments = append([]events.Attachment(nil), e.Attachments...)
	}
	return e
}
