package reminders

import (
	"context"
	"errors"

	"pet-care-companion/internal/platform/logger"
)

type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

type NotifierFunc func(ctx context.Context, r Reminder) error

func (f NotifierFunc) Notify(ctx context.Context, r Reminder) error { return f(ctx, r) }

// LogNotifier deja el recordatorio en el log. Es el notifier por defecto.
func LogNotifier(log logger.Logger) Notifier {
	return NotifierFunc(func(ctx context.Context, r Reminder) error {
		log.Info("reminder due", map[string]any{
			"event_id":  r.Event.ID,
			"title":     r.Event.Title,
			"pet":       r.Event.Pet,
			"fire_at":   r.FireAt,
			"starts_at": r.StartsAt,
		})
		return nil
	})
}

// Multi reparte el recordatorio a todos; sigue aunque alguno falle.
func Multi(ns ...Notifier) Notifier {
	return NotifierFunc(func(ctx context.Context, r Reminder) error {
		var errs []error
		for _, n := range ns {
			if n == nil {
				continue
			}
			if err := n.Notify(ctx, r); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
