package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
	loc  *time.Location
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

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  time.Now,
		loc:  time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profile es la vista de una mascota con los datos derivados de "hoy".
type Profile struct {
	Pet
	IsBirthday   bool
	NextBirthday time.Time
}

func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) profile(p Pet, today time.Time) Profile {
	return Profile{
		Pet:          p,
		IsBirthday:   IsBirthday(p.Birthday, today),
		NextBirthday: NextBirthday(p.Birthday, today),
	}
}

func (s *Service) List(ctx context.Context) ([]Profile, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	today := s.today()
	out := make([]Profile, 0, len(items))
	for _, p := range items {
		out = append(out, s.profile(p, today))
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, ErrInvalidInput
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return s.profile(p, s.today()), nil
}

// Birthdays devuelve las mascotas que cumplen años hoy.
func (s *Service) Birthdays(ctx context.Context) ([]Profile, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Profile, 0)
	for _, p := range all {
		if p.IsBirthday {
			out = append(out, p)
		}
	}
	return out, nil
}
