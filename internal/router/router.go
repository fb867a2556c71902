package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	mem "pet-care-companion/internal/adapters/storage/memory"
	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/settings"
	"pet-care-companion/internal/middleware"
	"pet-care-companion/internal/platform/logger"
	"pet-care-companion/internal/platform/metrics"
	"pet-care-companion/internal/realtime"
	"pet-care-companion/internal/seed"

	_ "pet-care-companion/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger

	// Repos opcionales: si vienen nil se usan los in-memory.
	EventsRepo   events.Repository
	PetsRepo     pets.Repository
	SettingsRepo settings.Repository

	// Dataset a cargar al armar la app. Nil = dataset embebido.
	Dataset *seed.Dataset

	Location *time.Location
	Now      func() time.Time

	Metrics *metrics.Metrics // nil = sin /metrics
	Hub     *realtime.Hub    // nil = sin /ws
}

// App expone el handler y los services para que main pueda colgar
// el scheduler de recordatorios sobre el mismo store.
type App struct {
	Handler  http.Handler
	Events   *events.Service
	Pets     *pets.Service
	Settings *settings.Service
}

func New(ctx context.Context, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	if opts.EventsRepo == nil {
		opts.EventsRepo = mem.NewEventRepo()
	}
	if opts.PetsRepo == nil {
		opts.PetsRepo = mem.NewPetRepo()
	}
	if opts.SettingsRepo == nil {
		opts.SettingsRepo = mem.NewSettingsRepo()
	}

	ds := opts.Dataset
	if ds == nil {
		embedded, err := seed.Embedded()
		if err != nil {
			return nil, err
		}
		ds = &embedded
	}
	if err := opts.EventsRepo.Seed(ctx, ds.Events); err != nil {
		return nil, fmt.Errorf("seed events: %w", err)
	}
	if err := opts.PetsRepo.Seed(ctx, ds.Pets); err != nil {
		return nil, fmt.Errorf("seed pets: %w", err)
	}
	log.Info("dataset loaded", map[string]any{"events": len(ds.Events), "pets": len(ds.Pets)})

	// Services por módulo
	eventsSvc := events.NewService(opts.EventsRepo,
		events.WithClock(opts.Now),
		events.WithLocation(loc),
		events.WithLogger(log.With(map[string]any{"module": "events"})),
	)
	petsSvc := pets.NewService(opts.PetsRepo,
		pets.WithClock(opts.Now),
		pets.WithLocation(loc),
	)
	settingsSvc := settings.NewService(opts.SettingsRepo,
		settings.WithClock(opts.Now),
		settings.WithLogger(log.With(map[string]any{"module": "settings"})),
	)

	if opts.Metrics != nil {
		m := opts.Metrics
		eventsSvc.OnStatusChange(func(_ context.Context, e events.Event) {
			m.StatusChanged(string(e.Status))
		})
	}
	if opts.Hub != nil {
		hub := opts.Hub
		eventsSvc.OnStatusChange(func(_ context.Context, e events.Event) {
			hub.Publish(realtime.Message{
				Type: realtime.TypeStatusChanged,
				Data: map[string]any{"id": e.ID, "status": e.Status},
			})
		})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log.With(map[string]any{"module": "http"})))
	r.Use(middleware.Recover(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if opts.Hub != nil {
		r.Handle("/ws", opts.Hub)
	}

	// Rutas por módulo
	events.RegisterRoutes(r, eventsSvc, petsSvc)
	pets.RegisterRoutes(r, petsSvc)
	settings.RegisterRoutes(r, settingsSvc)

	return &App{
		Handler:  r,
		Events:   eventsSvc,
		Pets:     petsSvc,
		Settings: settingsSvc,
	}, nil
}
