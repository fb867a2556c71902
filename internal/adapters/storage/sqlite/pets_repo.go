package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-companion/internal/domain/pets"

	"github.com/jmoiron/sqlx"
)

const birthdayLayout = "2006-01-02"

type petRow struct {
	ID       string `db:"id"`
	Position int    `db:"position"`
	Name     string `db:"name"`
	Breed    string `db:"breed"`
	Age      int    `db:"age"`
	Birthday string `db:"birthday"` // YYYY-MM-DD o ""
	Image    string `db:"image"`
}

func (r petRow) toDomain() (pets.Pet, error) {
	p := pets.Pet{
		ID:    r.ID,
		Name:  r.Name,
		Breed: r.Breed,
		Age:   r.Age,
		Image: r.Image,
	}
	if r.Birthday != "" {
		t, err := time.Parse(birthdayLayout, r.Birthday)
		if err != nil {
			return pets.Pet{}, fmt.Errorf("pet %s: bad birthday %q", r.ID, r.Birthday)
		}
		p.Birthday = t
	}
	return p, nil
}

type PetsRepo struct {
	db *sqlx.DB
}

func NewPetsRepo(db *sqlx.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Seed(ctx context.Context, items []pets.Pet) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed pets: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]string, 0, len(items))
	for i, p := range items {
		if strings.TrimSpace(p.ID) == "" {
			return pets.ErrInvalidInput
		}
		ids = append(ids, p.ID)

		bday := ""
		if !p.Birthday.IsZero() {
			bday = p.Birthday.Format(birthdayLayout)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO pets (id, position, name, breed, age, birthday, image)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				position = excluded.position,
				name = excluded.name,
				breed = excluded.breed,
				age = excluded.age,
				birthday = excluded.birthday,
				image = excluded.image
		`, p.ID, i, p.Name, p.Breed, p.Age, bday, p.Image)
		if err != nil {
			return fmt.Errorf("seed pet %s: %w", p.ID, err)
		}
	}

	if len(ids) == 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM pets`); err != nil {
			return err
		}
	} else {
		query, args, err := sqlx.In(`DELETE FROM pets WHERE id NOT IN (?)`, ids)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("prune pets: %w", err)
		}
	}
	return tx.Commit()
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	var rows []petRow
	if err := r.db.SelectContext(ctx, &rows, `
		SELECT id, position, name, breed, age, birthday, image
		FROM pets
		ORDER BY position ASC
	`); err != nil {
		return nil, err
	}

	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var row petRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, position, name, breed, age, birthday, image
		FROM pets
		WHERE id = ?
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return row.toDomain()
}
