package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	// modernc registra "sqlite"; sqlx solo conoce "sqlite3".
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

const schemaEvents = `
CREATE TABLE IF NOT EXISTS events (
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
);
`

const schemaAttachments = `
CREATE TABLE IF NOT EXISTS event_attachments (
    event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    id       TEXT NOT NULL,
    position INTEGER NOT NULL,
    name     TEXT NOT NULL DEFAULT '',
    icon     TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (event_id, id)
);
`

const schemaPets = `
CREATE TABLE IF NOT EXISTS pets (
    id       TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name     TEXT NOT NULL DEFAULT '',
    breed    TEXT NOT NULL DEFAULT '',
    age      INTEGER NOT NULL DEFAULT 0,
    birthday TEXT NOT NULL DEFAULT '',
    image    TEXT NOT NULL DEFAULT ''
);
`

const schemaSettings = `
CREATE TABLE IF NOT EXISTS settings (
    id            INTEGER PRIMARY KEY CHECK (id = 1),
    profile_id    TEXT NOT NULL,
    notifications BOOLEAN NOT NULL,
    dark_mode     BOOLEAN NOT NULL,
    language      TEXT NOT NULL,
    units         TEXT NOT NULL,
    updated_at    TEXT NOT NULL
);
`

// Open abre/crea el archivo SQLite, aplica pragmas y asegura el esquema.
func Open(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", dsn, err)
	}

	// SQLite no se lleva bien con muchos writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range []string{schemaEvents, schemaAttachments, schemaPets, schemaSettings} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
