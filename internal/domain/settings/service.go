package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-companion/internal/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("settings not found")
	ErrUnknownUnits    = errors.New("unknown units")
	ErrUnknownLanguage = errors.New("unknown language")
)

type Service struct {
	repo Repository
	now  func() time.Time
	log  logger.Logger
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
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
		log:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get devuelve las preferencias guardadas o los defaults si no hay ninguna.
func (s *Service) Get(ctx context.Context) (Preferences, error) {
	p, err := s.repo.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return Defaults(), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("get settings: %w", err)
	}
	return p, nil
}

// NotificationsEnabled es lo que consulta el scheduler de recordatorios.
// Ante un error de storage se asume el default (activadas).
func (s *Service) NotificationsEnabled(ctx context.Context) bool {
	p, err := s.Get(ctx)
	if err != nil {
		s.log.Warn("settings unavailable, using defaults", map[string]any{"error": err.Error()})
		return Defaults().Notifications
	}
	return p.Notifications
}

// Patch: nil = no tocar.
type Patch struct {
	Notifications *bool
	DarkMode      *bool
	Language      *string
	Units         *string
}

func (s *Service) Update(ctx context.Context, in Patch) (Preferences, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return Preferences{}, err
	}

	if in.Notifications != nil {
		p.Notifications = *in.Notifications
	}
	if in.DarkMode != nil {
		p.DarkMode = *in.DarkMode
	}
	if in.Language != nil {
		lang, err := ParseLanguage(*in.Language)
		if err != nil {
			return Preferences{}, err
		}
		p.Language = lang
	}
	if in.Units != nil {
		u, err := ParseUnits(*in.Units)
		if err != nil {
			return Preferences{}, err
		}
		p.Units = u
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.UpdatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, p); err != nil {
		return Preferences{}, fmt.Errorf("save settings: %w", err)
	}
	s.log.Info("settings updated", map[string]any{
		"notifications": p.Notifications,
		"dark_mode":     p.DarkMode,
		"language":      p.Language,
		"units":         string(p.Units),
	})
	return p, nil
}

func ParseUnits(s string) (Units, error) {
	switch Units(strings.ToLower(strings.TrimSpace(s))) {
	case UnitsMetric:
		return UnitsMetric, nil
	case UnitsImperial:
		return UnitsImperial, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnits, s)
	}
}

// ParseLanguage valida un tag BCP-47 y lo devuelve en forma canónica.
func ParseLanguage(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownLanguage)
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return tag.String(), nil
}
