package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-care-companion/internal/domain/settings"
)

type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context) (settings.Preferences, error) {
	var p settings.Preferences
	var units string
	err := r.db.QueryRowContext(ctx, `
		SELECT profile_id, notifications, dark_mode, language, units, updated_at
		FROM settings
		WHERE id = 1
	`).Scan(&p.ID, &p.Notifications, &p.DarkMode, &p.Language, &units, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settings.Preferences{}, settings.ErrNotFound
		}
		return settings.Preferences{}, err
	}
	p.Units = settings.Units(units)
	return p, nil
}

func (r *SettingsRepo) Save(ctx context.Context, p settings.Preferences) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (id, profile_id, notifications, dark_mode, language, units, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			profile_id = EXCLUDED.profile_id,
			notifications = EXCLUDED.notifications,
			dark_mode = EXCLUDED.dark_mode,
			language = EXCLUDED.language,
			units = EXCLUDED.units,
			updated_at = EXCLUDED.updated_at
	`, p.ID, p.Notifications, p.DarkMode, p.Language, string(p.Units), p.UpdatedAt.UTC())
	return err
}
