package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-companion/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Seed(ctx context.Context, items []pets.Pet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `UPDATE pets SET position = -1`); err != nil {
		return fmt.Errorf("seed pets: %w", err)
	}
	for i, p := range items {
		if strings.TrimSpace(p.ID) == "" {
			return pets.ErrInvalidInput
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO pets (id, position, name, breed, age, birthday, image)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
			ON CONFLICT (id) DO UPDATE SET
				position = EXCLUDED.position,
				name = EXCLUDED.name,
				breed = EXCLUDED.breed,
				age = EXCLUDED.age,
				birthday = EXCLUDED.birthday,
				image = EXCLUDED.image
		`, p.ID, i, p.Name, p.Breed, p.Age, toNullDate(p.Birthday), p.Image)
		if err != nil {
			return fmt.Errorf("seed pet %s: %w", p.ID, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE position < 0`); err != nil {
		return fmt.Errorf("prune pets: %w", err)
	}
	return tx.Commit()
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var bd sql.NullTime
	if err := s.Scan(&p.ID, &p.Name, &p.Breed, &p.Age, &bd, &p.Image); err != nil {
		return pets.Pet{}, err
	}
	if bd.Valid {
		// ojo: birthday es DATE, pgx lo mapea a medianoche UTC
		p.Birthday = bd.Time.UTC()
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, breed, age, birthday, image
		FROM pets
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	p, err := scanPet(r.db.QueryRowContext(ctx, `
		SELECT id, name, breed, age, birthday, image
		FROM pets
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

// birthday es DATE, lo pasamos como NullTime para simplificar
func toNullDate(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t, Valid: true}
}
