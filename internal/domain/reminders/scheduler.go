package reminders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// EventSource es lo que el scheduler necesita del servicio de eventos.
type EventSource interface {
	List(ctx context.Context, c events.Criteria) ([]events.Event, error)
}

// Gate decide si hay que avisar (Settings > Notifications).
type Gate interface {
	NotificationsEnabled(ctx context.Context) bool
}

type Scheduler struct {
	src      EventSource
	gate     Gate
	notifier Notifier
	loc      *time.Location
	now      func() time.Time
	log      logger.Logger
	timeout  time.Duration

	cron *cron.Cron

	mu   sync.Mutex
	last time.Time
}

type Option func(*Scheduler)

func WithGate(g Gate) Option {
	return func(s *Scheduler) { s.gate = g }
}

func WithNotifier(n Notifier) Option {
	return func(s *Scheduler) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// NewScheduler valida spec ("@every 1m", "*/5 * * * *") y registra el sweep.
// No arranca nada hasta Start.
func NewScheduler(spec string, src EventSource, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		src:     src,
		loc:     time.Local,
		now:     time.Now,
		log:     logger.Discard(),
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = LogNotifier(s.log)
	}
	s.last = s.now()

	s.cron = cron.New(
		cron.WithLocation(s.loc),
		cron.WithLogger(cronLogger{s.log}),
		cron.WithChain(cron.Recover(cronLogger{s.log}), cron.SkipIfStillRunning(cronLogger{s.log})),
	)
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("reminders: invalid schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.log.Info("reminder scheduler started", nil)
	s.cron.Start()
}

// Stop espera a que termine un sweep en curso o a que ctx expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	s.log.Info("reminder scheduler stopped", nil)
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.Sweep(ctx); err != nil {
		s.log.Error("reminder sweep failed", map[string]any{"error": err.Error()})
	}
}

// Sweep avisa los recordatorios que vencieron desde el sweep anterior
// y devuelve cuántos se notificaron. La ventana avanza aunque las
// notificaciones estén desactivadas: no se acumulan avisos viejos.
// Si falla el listado la ventana queda igual y el próximo sweep la cubre.
func (s *Scheduler) Sweep(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	from := s.last

	if s.gate != nil && !s.gate.NotificationsEnabled(ctx) {
		s.last = now
		s.log.Debug("notifications disabled, skipping reminders", nil)
		return 0, nil
	}

	evs, err := s.src.List(ctx, events.Criteria{HideCompleted: true})
	if err != nil {
		return 0, fmt.Errorf("reminders: list events: %w", err)
	}
	s.last = now

	sent := 0
	for _, r := range Due(evs, from, now, s.loc) {
		if err := s.notifier.Notify(ctx, r); err != nil {
			s.log.Warn("reminder notify failed", map[string]any{"event_id": r.Event.ID, "error": err.Error()})
			continue
		}
		sent++
	}
	return sent, nil
}

// cronLogger adapta logger.Logger a cron.Logger.
type cronLogger struct{ l logger.Logger }

func (c cronLogger) Info(msg string, kv ...any) {
	c.l.Debug("cron: "+msg, kvFields(kv))
}

func (c cronLogger) Error(err error, msg string, kv ...any) {
	f := kvFields(kv)
	f["error"] = err.Error()
	c.l.Error("cron: "+msg, f)
}

func kvFields(kv []any) map[string]any {
	out := make(map[string]any, len(kv)/2+1)
	for i := 0; i+1 < len(kv); i += 2 {
		out[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return out
}
