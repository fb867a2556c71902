package memory

import (
	"context"
	"strings"
	"sync"

	"pet-care-companion/internal/domain/pets"
)

type petRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Seed(ctx context.Context, items []pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := make([]string, 0, len(items))
	byID := make(map[string]pets.Pet, len(items))
	for _, p := range items {
		if strings.TrimSpace(p.ID) == "" {
			return pets.ErrInvalidInput
		}
		if _, dup := byID[p.ID]; !dup {
			order = append(order, p.ID)
		}
		byID[p.ID] = p
	}
	r.order, r.byID = order, byID
	return nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}
