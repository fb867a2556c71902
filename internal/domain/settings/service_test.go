package settings

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	p     Preferences
	saved bool
	err   error
}

func (r *testRepo) Get(ctx context.Context) (Preferences, error) {
	if r.err != nil {
		return Preferences{}, r.err
	}
	if !r.saved {
		return Preferences{}, ErrNotFound
	}
	return r.p, nil
}

func (r *testRepo) Save(ctx context.Context, p Preferences) error {
	if r.err != nil {
		return r.err
	}
	r.p, r.saved = p, true
	return nil
}

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2025, time.March, 24, 10, 0, 0, 0, time.UTC)

func TestService_GetDefaults(t *testing.T) {
	svc := NewService(&testRepo{})

	p, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != Defaults() {
		t.Fatalf("expected defaults, got %+v", p)
	}
	if !svc.NotificationsEnabled(context.Background()) {
		t.Fatalf("notifications are on by default")
	}
}

func TestService_UpdatePartial(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo, WithClock(func() time.Time { return fixedNow }))
	ctx := context.Background()

	p, err := svc.Update(ctx, Patch{DarkMode: ptr(true), Language: ptr("es-ar")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.DarkMode || p.Language != "es-AR" || !p.Notifications || p.Units != UnitsMetric {
		t.Fatalf("unexpected preferences: %+v", p)
	}
	if p.ID == "" || !p.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("expected id and updated_at, got %+v", p)
	}
	firstID := p.ID

	p, err = svc.Update(ctx, Patch{Notifications: ptr(false), Units: ptr("Imperial")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Notifications || p.Units != UnitsImperial || !p.DarkMode || p.ID != firstID {
		t.Fatalf("second patch should keep earlier fields: %+v", p)
	}
	if svc.NotificationsEnabled(ctx) {
		t.Fatalf("notifications should be disabled")
	}
}

func TestService_UpdateValidation(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Update(ctx, Patch{Units: ptr("furlongs")}); !errors.Is(err, ErrUnknownUnits) {
		t.Fatalf("expected ErrUnknownUnits, got %v", err)
	}
	if _, err := svc.Update(ctx, Patch{Language: ptr("not a language!")}); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
	if _, err := svc.Update(ctx, Patch{Language: ptr("  ")}); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage for blank, got %v", err)
	}
	if repo.saved {
		t.Fatalf("invalid patches must not be persisted")
	}
}

func TestService_StorageErrors(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(&testRepo{err: boom})

	if _, err := svc.Get(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
	if !svc.NotificationsEnabled(context.Background()) {
		t.Fatalf("storage errors fall back to default notifications")
	}
}
