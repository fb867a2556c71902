package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pet-care-companion/internal/domain/settings"

	"github.com/jmoiron/sqlx"
)

type settingsRow struct {
	ProfileID     string `db:"profile_id"`
	Notifications bool   `db:"notifications"`
	DarkMode      bool   `db:"dark_mode"`
	Language      string `db:"language"`
	Units         string `db:"units"`
	UpdatedAt     string `db:"updated_at"` // RFC3339Nano
}

type SettingsRepo struct {
	db *sqlx.DB
}

func NewSettingsRepo(db *sqlx.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context) (settings.Preferences, error) {
	var row settingsRow
	err := r.db.GetContext(ctx, &row, `
		SELECT profile_id, notifications, dark_mode, language, units, updated_at
		FROM settings
		WHERE id = 1
	`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settings.Preferences{}, settings.ErrNotFound
		}
		return settings.Preferences{}, err
	}

	updated, err := time.Parse(time.RFC3339Nano, row.UpdatedAt)
	if err != nil {
		return settings.Preferences{}, fmt.Errorf("settings: bad updated_at %q", row.UpdatedAt)
	}
	return settings.Preferences{
		ID:            row.ProfileID,
		Notifications: row.Notifications,
		DarkMode:      row.DarkMode,
		Language:      row.Language,
		Units:         settings.Units(row.Units),
		UpdatedAt:     updated,
	}, nil
}

func (r *SettingsRepo) Save(ctx context.Context, p settings.Preferences) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (id, profile_id, notifications, dark_mode, language, units, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			profile_id = excluded.profile_id,
			notifications = excluded.notifications,
			dark_mode = excluded.dark_mode,
			language = excluded.language,
			units = excluded.units,
			updated_at = excluded.updated_at
	`, p.ID, p.Notifications, p.DarkMode, p.Language, string(p.Units), p.UpdatedAt.UTC().Format(time.RFC3339Nano))
	return err
}
