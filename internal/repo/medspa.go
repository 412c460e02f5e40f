package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/moxie-medspa/backend/internal/domain"
)

// MedspaRepo defines the persistence operations for Medspas.
// The service layer depends on this interface, not the Postgres implementation.
type MedspaRepo interface {
	// Create inserts a new medspa and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, m domain.Medspa) (domain.Medspa, error)

	// GetByID retrieves a single medspa by its UUID primary key.
	// Returns domain.ErrNotFound if no medspa with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Medspa, error)

	// ListPaged returns one page of medspas ordered by name and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Medspa, int64, error)

	// Delete removes a medspa together with its appointments and services in
	// one transaction. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgMedspaRepo is the Postgres implementation of MedspaRepo.
type pgMedspaRepo struct {
	db db
}

// NewMedspaRepo constructs a MedspaRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewMedspaRepo(db db) MedspaRepo {
	return &pgMedspaRepo{db: db}
}

const medspaColumns = `id, name, address, phone_number, email_address, created_at, updated_at`

func (r *pgMedspaRepo) Create(ctx context.Context, m domain.Medspa) (domain.Medspa, error) {
	const q = `
		INSERT INTO medspas (name, address, phone_number, email_address)
		VALUES (@name, @address, @phone_number, @email_address)
		RETURNING ` + medspaColumns

	args := pgx.NamedArgs{
		"name":          m.Name,
		"address":       m.Address,
		"phone_number":  m.PhoneNumber,
		"email_address": m.EmailAddress,
	}

	result, err := scanMedspa(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Medspa{}, fmt.Errorf("repo.MedspaRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgMedspaRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Medspa, error) {
	const q = `SELECT ` + medspaColumns + ` FROM medspas WHERE id = @id`

	result, err := scanMedspa(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Medspa{}, fmt.Errorf("repo.MedspaRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgMedspaRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Medspa, int64, error) {
	const q = `
		SELECT ` + medspaColumns + `
		FROM medspas
		ORDER BY name, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.MedspaRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	medspas := []domain.Medspa{}
	for rows.Next() {
		m, err := scanMedspa(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.MedspaRepo.ListPaged: scan: %w", err)
		}
		medspas = append(medspas, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.MedspaRepo.ListPaged: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM medspas`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.MedspaRepo.ListPaged: count: %w", err)
	}
	return medspas, total, nil
}

// Delete removes dependents bottom-up: appointment links, appointments,
// links pointing at this medspa's services, services, then the medspa itself.
// The foreign keys are RESTRICT, so skipping a step fails the transaction.
func (r *pgMedspaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	steps := []string{
		`DELETE FROM appointment_services
		 WHERE appointment_id IN (SELECT id FROM appointments WHERE medspa_id = @id)`,
		`DELETE FROM appointments WHERE medspa_id = @id`,
		`DELETE FROM appointment_services
		 WHERE service_id IN (SELECT id FROM services WHERE medspa_id = @id)`,
		`DELETE FROM services WHERE medspa_id = @id`,
	}
	args := pgx.NamedArgs{"id": id}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, q := range steps {
			if _, err := tx.Exec(ctx, q, args); err != nil {
				return err
			}
		}
		tag, err := tx.Exec(ctx, `DELETE FROM medspas WHERE id = @id`, args)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.MedspaRepo.Delete: %w", err)
	}
	return nil
}

// scanMedspa maps a single database row into a domain.Medspa.
func scanMedspa(s scanner) (domain.Medspa, error) {
	var (
		m  domain.Medspa
		id pgtype.UUID
	)
	err := s.Scan(&id, &m.Name, &m.Address, &m.PhoneNumber, &m.EmailAddress, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Medspa{}, domain.ErrNotFound
		}
		return domain.Medspa{}, err
	}
	m.ID = uuid.UUID(id.Bytes)
	return m, nil
}
