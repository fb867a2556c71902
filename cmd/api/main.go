package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-companion/internal/adapters/storage/postgres"
	"pet-care-companion/internal/adapters/storage/sqlite"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/platform/config"
	"pet-care-companion/internal/platform/httpclient"
	"pet-care-companion/internal/platform/logger"
	"pet-care-companion/internal/platform/metrics"
	"pet-care-companion/internal/realtime"
	"pet-care-companion/internal/router"
	"pet-care-companion/internal/seed"
)

// @title Pet Care Companion API
// @version 1.0
// @description Agenda de cuidados y perfiles de mascotas.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("PETCARE_CONFIG"))
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:   log,
		Location: loc,
		Hub:      realtime.NewHub(log.With(map[string]any{"module": "ws"})),
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metrics.New()
	}

	closeStorage, err := openStorage(ctx, cfg, &opts)
	if err != nil {
		return err
	}
	defer closeStorage()

	ds, err := seed.Load(ctx, cfg.Seed.Source, httpclient.New(cfg.Seed.Timeout))
	if err != nil {
		return err
	}
	opts.Dataset = &ds

	app, err := router.New(ctx, opts)
	if err != nil {
		return err
	}

	var sched *reminders.Scheduler
	if cfg.Reminders.Enabled {
		sched, err = reminders.NewScheduler(cfg.Reminders.Schedule, app.Events,
			reminders.WithGate(app.Settings),
			reminders.WithLocation(loc),
			reminders.WithLogger(log.With(map[string]any{"module": "reminders"})),
			reminders.WithNotifier(reminders.Multi(
				reminders.LogNotifier(log),
				reminders.NotifierFunc(func(_ context.Context, r reminders.Reminder) error {
					opts.Hub.Publish(realtime.Message{
						Type: realtime.TypeReminderDue,
						Data: map[string]any{
							"id":        r.Event.ID,
							"title":     r.Event.Title,
							"pet":       r.Event.Pet,
							"starts_at": r.StartsAt,
						},
					})
					opts.Metrics.ReminderSent()
					return nil
				}),
			)),
		)
		if err != nil {
			return err
		}
		sched.Start()
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      app.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr, "storage": cfg.Storage.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts.Hub.Close()
	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	return srv.Shutdown(shutdownCtx)
}

// openStorage completa los repos de opts según storage.driver.
// memory deja los repos en nil y el router usa los in-memory.
func openStorage(ctx context.Context, cfg config.Config, opts *router.Options) (func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		opts.EventsRepo = sqlite.NewEventsRepo(db)
		opts.PetsRepo = sqlite.NewPetsRepo(db)
		opts.SettingsRepo = sqlite.NewSettingsRepo(db)
		return func() { _ = db.Close() }, nil

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		opts.EventsRepo = postgres.NewEventsRepo(db)
		opts.PetsRepo = postgres.NewPetsRepo(db)
		opts.SettingsRepo = postgres.NewSettingsRepo(db)
		return func() { _ = db.Close() }, nil
	}
	return func() {}, nil
}
