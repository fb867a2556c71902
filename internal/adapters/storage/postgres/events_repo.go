package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-care-companion/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

// Seed hace upsert del dataset conservando el status guardado. Las filas que
// no vienen en el dataset quedan con position -1 y se borran al final.
func (r *EventsRepo) Seed(ctx context.Context, evs []events.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE events SET position = -1`); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}

	for i, e := range evs {
		if strings.TrimSpace(e.ID) == "" {
			return events.ErrInvalidInput
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO events (
				id, position,
				title, pet,
				time_label, date_label, full_date,
				type, status,
				description, location, notes,
				reminder, repeat_rule,
				color, pet_image
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
			ON CONFLICT (id) DO UPDATE SET
				position = EXCLUDED.position,
				title = EXCLUDED.title,
				pet = EXCLUDED.pet,
				time_label = EXCLUDED.time_label,
				date_label = EXCLUDED.date_label,
				full_date = EXCLUDED.full_date,
				type = EXCLUDED.type,
				description = EXCLUDED.description,
				location = EXCLUDED.location,
				notes = EXCLUDED.notes,
				reminder = EXCLUDED.reminder,
				repeat_rule = EXCLUDED.repeat_rule,
				color = EXCLUDED.color,
				pet_image = EXCLUDED.pet_image
		`,
			e.ID, i,
			e.Title, e.Pet,
			e.Time, e.Date, e.FullDate,
			string(e.Type), string(e.Status),
			e.Description, e.Location, e.Notes,
			e.Reminder, e.Repeat,
			e.Color, e.PetImage,
		)
		if err != nil {
			return fmt.Errorf("seed event %s: %w", e.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM event_attachments WHERE event_id = $1`, e.ID); err != nil {
			return fmt.Errorf("seed event %s attachments: %w", e.ID, err)
		}
		for j, a := range e.Attachments {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO event_attachments (event_id, id, position, name, icon)
				VALUES ($1,$2,$3,$4,$5)
			`, e.ID, a.ID, j, a.Name, a.Icon); err != nil {
				return fmt.Errorf("seed event %s attachment %s: %w", e.ID, a.ID, err)
			}
		}
	}

	// adjuntos de eventos borrados caen por ON DELETE CASCADE
	if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE position < 0`); err != nil {
		return fmt.Errorf("prune events: %w", err)
	}
	return tx.Commit()
}

const selectEvents = `
	SELECT
		id,
		title, pet,
		time_label, date_label, full_date,
		type, status,
		description, location, notes,
		reminder, repeat_rule,
		color, pet_image
	FROM events`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (events.Event, error) {
	var e events.Event
	var typ, status string
	err := s.Scan(
		&e.ID,
		&e.Title, &e.Pet,
		&e.Time, &e.Date, &e.FullDate,
		&typ, &status,
		&e.Description, &e.Location, &e.Notes,
		&e.Reminder, &e.Repeat,
		&e.Color, &e.PetImage,
	)
	e.Type = events.EventType(typ)
	e.Status = events.EventStatus(status)
	e.Attachments = []events.Attachment{}
	return e, err
}

func (r *EventsRepo) List(ctx context.Context) ([]events.Event, error) {
	rows, err := r.db.QueryContext(ctx, selectEvents+` ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	index := map[string]int{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		index[e.ID] = len(out)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	atts, err := r.attachments(ctx, "")
	if err != nil {
		return nil, err
	}
	for id, list := range atts {
		if i, ok := index[id]; ok {
			out[i].Attachments = list
		}
	}
	return out, nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.Event{}, events.ErrNotFound
	}

	e, err := scanEvent(r.db.QueryRowContext(ctx, selectEvents+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, err
	}

	atts, err := r.attachments(ctx, id)
	if err != nil {
		return events.Event{}, err
	}
	if list, ok := atts[id]; ok {
		e.Attachments = list
	}
	return e, nil
}

// attachments agrupa adjuntos por evento; eventID vacío = todos.
func (r *EventsRepo) attachments(ctx context.Context, eventID string) (map[string][]events.Attachment, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if eventID == "" {
		rows, err = r.db.QueryContext(ctx, `
			SELECT event_id, id, name, icon
			FROM event_attachments
			ORDER BY event_id, position ASC
		`)
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT event_id, id, name, icon
			FROM event_attachments
			WHERE event_id = $1
			ORDER BY position ASC
		`, eventID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]events.Attachment{}
	for rows.Next() {
		var owner string
		var a events.Attachment
		if err := rows.Scan(&owner, &a.ID, &a.Name, &a.Icon); err != nil {
			return nil, err
		}
		out[owner] = append(out[owner], a)
	}
	return out, rows.Err()
}

func (r *EventsRepo) SetStatus(ctx context.Context, id string, status events.EventStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE events SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}
