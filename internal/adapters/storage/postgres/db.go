package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id          TEXT PRIMARY KEY,
		position    INTEGER NOT NULL,
		title       TEXT NOT NULL DEFAULT '',
		pet         TEXT NOT NULL DEFAULT '',
		time_label  TEXT NOT NULL DEFAULT '',
		date_label  TEXT NOT NULL DEFAULT '',
		full_date   TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		notes       TEXT NOT NULL DEFAULT '',
		reminder    TEXT NOT NULL DEFAULT '',
		repeat_rule TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT '',
		pet_image   TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS event_attachments (
		event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		id       TEXT NOT NULL,
		position INTEGER NOT NULL,
		name     TEXT NOT NULL DEFAULT '',
		icon     TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (event_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id       TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name     TEXT NOT NULL DEFAULT '',
		breed    TEXT NOT NULL DEFAULT '',
		age      INTEGER NOT NULL DEFAULT 0,
		birthday DATE,
		image    TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id            SMALLINT PRIMARY KEY CHECK (id = 1),
		profile_id    TEXT NOT NULL,
		notifications BOOLEAN NOT NULL,
		dark_mode     BOOLEAN NOT NULL,
		language      TEXT NOT NULL,
		units         TEXT NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migrate: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}
