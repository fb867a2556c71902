package events

import "context"

// Repository guarda la copia de trabajo del dataset.
// List devuelve los eventos en el orden del seed.
type Repository interface {
	Seed(ctx context.Context, events []Event) error
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id string) (Event, error)
	SetStatus(ctx context.Context, id string, status EventStatus) error
}
