package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-care-companion/internal/domain/events"

	"github.com/jmoiron/sqlx"
)

type eventRow struct {
	ID          string `db:"id"`
	Position    int    `db:"position"`
	Title       string `db:"title"`
	Pet         string `db:"pet"`
	Time        string `db:"time_label"`
	Date        string `db:"date_label"`
	FullDate    string `db:"full_date"`
	Type        string `db:"type"`
	Status      string `db:"status"`
	Description string `db:"description"`
	Location    string `db:"location"`
	Notes       string `db:"notes"`
	Reminder    string `db:"reminder"`
	Repeat      string `db:"repeat_rule"`
	Color       string `db:"color"`
	PetImage    string `db:"pet_image"`
}

type attachmentRow struct {
	EventID  string `db:"event_id"`
	ID       string `db:"id"`
	Position int    `db:"position"`
	Name     string `db:"name"`
	Icon     string `db:"icon"`
}

func (r eventRow) toDomain(atts []events.Attachment) events.Event {
	if atts == nil {
		atts = []events.Attachment{}
	}
	return events.Event{
		ID:          r.ID,
		Title:       r.Title,
		Pet:         r.Pet,
		Time:        r.Time,
		Date:        r.Date,
		FullDate:    r.FullDate,
		Type:        events.EventType(r.Type),
		Status:      events.EventStatus(r.Status),
		Description: r.Description,
		Location:    r.Location,
		Notes:       r.Notes,
		Reminder:    r.Reminder,
		Repeat:      r.Repeat,
		Color:       r.Color,
		PetImage:    r.PetImage,
		Attachments: atts,
	}
}

const eventColumns = `id, position, title, pet, time_label, date_label, full_date, type, status,
	description, location, notes, reminder, repeat_rule, color, pet_image`

type EventsRepo struct {
	db *sqlx.DB
}

func NewEventsRepo(db *sqlx.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

// Seed hace upsert del dataset (sin tocar status de filas existentes) y borra
// lo que ya no está en él.
func (r *EventsRepo) Seed(ctx context.Context, evs []events.Event) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]string, 0, len(evs))
	for i, e := range evs {
		if strings.TrimSpace(e.ID) == "" {
			return events.ErrInvalidInput
		}
		ids = append(ids, e.ID)

		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO events (`+eventColumns+`)
			VALUES (:id, :position, :title, :pet, :time_label, :date_label, :full_date, :type, :status,
				:description, :location, :notes, :reminder, :repeat_rule, :color, :pet_image)
			ON CONFLICT(id) DO UPDATE SET
				position = excluded.position,
				title = excluded.title,
				pet = excluded.pet,
				time_label = excluded.time_label,
				date_label = excluded.date_label,
				full_date = excluded.full_date,
				type = excluded.type,
				description = excluded.description,
				location = excluded.location,
				notes = excluded.notes,
				reminder = excluded.reminder,
				repeat_rule = excluded.repeat_rule,
				color = excluded.color,
				pet_image = excluded.pet_image
		`, toRow(i, e))
		if err != nil {
			return fmt.Errorf("seed event %s: %w", e.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM event_attachments WHERE event_id = ?`, e.ID); err != nil {
			return fmt.Errorf("seed event %s attachments: %w", e.ID, err)
		}
		for j, a := range e.Attachments {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO event_attachments (event_id, id, position, name, icon)
				VALUES (?, ?, ?, ?, ?)
			`, e.ID, a.ID, j, a.Name, a.Icon)
			if err != nil {
				return fmt.Errorf("seed event %s attachment %s: %w", e.ID, a.ID, err)
			}
		}
	}

	if err := deleteMissing(ctx, tx, ids); err != nil {
		return err
	}
	return tx.Commit()
}

func deleteMissing(ctx context.Context, tx *sqlx.Tx, ids []string) error {
	if len(ids) == 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM event_attachments`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM events`)
		return err
	}

	for _, q := range []string{
		`DELETE FROM event_attachments WHERE event_id NOT IN (?)`,
		`DELETE FROM events WHERE id NOT IN (?)`,
	} {
		query, args, err := sqlx.In(q, ids)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("prune events: %w", err)
		}
	}
	return nil
}

func (r *EventsRepo) List(ctx context.Context) ([]events.Event, error) {
	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+eventColumns+` FROM events ORDER BY position ASC`); err != nil {
		return nil, err
	}

	var atts []attachmentRow
	if err := r.db.SelectContext(ctx, &atts, `
		SELECT event_id, id, position, name, icon
		FROM event_attachments
		ORDER BY event_id, position ASC
	`); err != nil {
		return nil, err
	}
	byEvent := groupAttachments(atts)

	out := make([]events.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(byEvent[row.ID]))
	}
	return out, nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.Event, error) {
	var row eventRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.Event{}, events.ErrNotFound
		}
		return events.Event{}, err
	}

	var atts []attachmentRow
	if err := r.db.SelectContext(ctx, &atts, `
		SELECT event_id, id, position, name, icon
		FROM event_attachments
		WHERE event_id = ?
		ORDER BY position ASC
	`, id); err != nil {
		return events.Event{}, err
	}
	return row.toDomain(groupAttachments(atts)[id]), nil
}

func (r *EventsRepo) SetStatus(ctx context.Context, id string, status events.EventStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE events SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return events.ErrNotFound
	}
	return nil
}

func toRow(pos int, e events.Event) eventRow {
	return eventRow{
		ID:          e.ID,
		Position:    pos,
		Title:       e.Title,
		Pet:         e.Pet,
		Time:        e.Time,
		Date:        e.Date,
		FullDate:    e.FullDate,
		Type:        string(e.Type),
		Status:      string(e.Status),
		Description: e.Description,
		Location:    e.Location,
		Notes:       e.Notes,
		Reminder:    e.Reminder,
		Repeat:      e.Repeat,
		Color:       e.Color,
		PetImage:    e.PetImage,
	}
}

func groupAttachments(rows []attachmentRow) map[string][]events.Attachment {
	out := make(map[string][]events.Attachment)
	for _, a := range rows {
		out[a.EventID] = append(out[a.EventID], events.Attachment{ID: a.ID, Name: a.Name, Icon: a.Icon})
	}
	return out
}
