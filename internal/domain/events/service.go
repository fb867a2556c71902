package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-care-companion/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("event not found")
)

// StatusListener recibe cada cambio de status ya persistido.
type StatusListener func(ctx context.Context, e Event)

type Service struct {
	repo Repository
	now  func() time.Time
	loc  *time.Location
	log  logger.Logger

	// mu serializa el read-modify-write del toggle.
	mu        sync.Mutex
	listeners []StatusListener
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
		loc:  time.Local,
		log:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Location() *time.Location { return s.loc }

func (s *Service) Now() time.Time { return s.now().In(s.loc) }

// OnStatusChange registra un listener. Se llama al armar la app, antes de servir.
func (s *Service) OnStatusChange(fn StatusListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Service) List(ctx context.Context, c Criteria) ([]Event, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return Filter(all, c), nil
}

func (s *Service) Get(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// ToggleCompletion aplica el toggle puro sobre la copia de trabajo actual
// y persiste solo el status del evento afectado.
func (s *Service) ToggleCompletion(ctx context.Context, id string) (Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Event{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.List(ctx)
	if err != nil {
		return Event{}, fmt.Errorf("toggle: %w", err)
	}
	if _, ok := FindByID(all, id); !ok {
		return Event{}, ErrNotFound
	}

	updated, _ := FindByID(ToggleCompletion(all, id), id)
	if err := s.repo.SetStatus(ctx, id, updated.Status); err != nil {
		return Event{}, fmt.Errorf("toggle: %w", err)
	}

	s.log.Info("event status changed", map[string]any{
		"event_id": id,
		"status":   string(updated.Status),
	})
	for _, fn := range s.listeners {
		fn(ctx, updated)
	}
	return updated, nil
}

// Agenda es una pestaña (Past/Today/Next) agrupada por momento del día.
type Agenda struct {
	View      View
	Date      time.Time
	Groups    []Group
	Total     int
	HasMissed bool // hay eventos pasados sin completar
}

func (s *Service) Agenda(ctx context.Context, v View, c Criteria) (Agenda, error) {
	all, err := s.List(ctx, c)
	if err != nil {
		return Agenda{}, err
	}

	now := s.Now()
	selected := make([]Event, 0, len(all))
	missed := false
	for _, e := range all {
		past, err := InView(e, ViewPast, now, s.loc)
		if err != nil {
			s.log.Warn("event skipped from agenda", map[string]any{"event_id": e.ID, "error": err.Error()})
			continue
		}
		if past && e.Status == EventStatusUpcoming {
			missed = true
		}
		in, _ := InView(e, v, now, s.loc)
		if in {
			selected = append(selected, e)
		}
	}

	return Agenda{
		View:      v,
		Date:      now,
		Groups:    GroupByTimeOfDay(selected),
		Total:     len(selected),
		HasMissed: missed,
	}, nil
}

// Today son los eventos del día actual, en el orden del seed.
func (s *Service) Today(ctx context.Context) ([]Event, error) {
	all, err := s.List(ctx, Criteria{})
	if err != nil {
		return nil, err
	}
	now := s.Now()
	out := make([]Event, 0)
	for _, e := range all {
		if ok, err := InView(e, ViewToday, now, s.loc); err == nil && ok {
			out = append(out, e)
		}
	}
	return out, nil
}
