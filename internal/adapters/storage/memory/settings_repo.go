package memory

import (
	"context"
	"sync"

	"pet-care-companion/internal/domain/settings"
)

type settingsRepo struct {
	mu sync.RWMutex
	p  *settings.Preferences
}

func NewSettingsRepo() settings.Repository {
	return &settingsRepo{}
}

func (r *settingsRepo) Get(ctx context.Context) (settings.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.p == nil {
		return settings.Preferences{}, settings.ErrNotFound
	}
	return *r.p, nil
}

func (r *settingsRepo) Save(ctx context.Context, p settings.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.p = &p
	return nil
}
