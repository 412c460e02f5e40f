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

// ServiceRepo defines the persistence operations for Services.
type ServiceRepo interface {
	// Create inserts a new service. Returns domain.ErrNotFound if the owning
	// medspa does not exist.
	Create(ctx context.Context, s domain.Service) (domain.Service, error)

	// GetByID retrieves a single service by its UUID.
	// Returns domain.ErrNotFound if no service with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Service, error)

	// GetByIDs resolves many services in one query. Unknown ids are simply
	// absent from the result; callers decide whether that is an error.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Service, error)

	// ListPaged returns one page of services ordered by name and the total
	// count. A nil medspaID lists services of every medspa.
	ListPaged(ctx context.Context, medspaID *uuid.UUID, p domain.PaginationParams) ([]domain.Service, int64, error)

	// Update applies the non-nil fields of patch and returns the updated record.
	// Returns domain.ErrNotFound if no service with that ID exists.
	Update(ctx context.Context, id uuid.UUID, patch domain.ServicePatch) (domain.Service, error)
}

// pgServiceRepo is the Postgres implementation of ServiceRepo.
type pgServiceRepo struct {
	db db
}

// NewServiceRepo constructs a ServiceRepo backed by the provided db connection.
func NewServiceRepo(db db) ServiceRepo {
	return &pgServiceRepo{db: db}
}

const serviceColumns = `id, medspa_id, name, description, price, duration, created_at, updated_at`

func (r *pgServiceRepo) Create(ctx context.Context, s domain.Service) (domain.Service, error) {
	const q = `
		INSERT INTO services (medspa_id, name, description, price, duration)
		VALUES (@medspa_id, @name, @description, @price, @duration)
		RETURNING ` + serviceColumns

	args := pgx.NamedArgs{
		"medspa_id":   s.MedspaID,
		"name":        s.Name,
		"description": s.Description,
		"price":       numericFromDecimal(s.Price),
		"duration":    s.Duration,
	}

	result, err := scanService(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Service{}, fmt.Errorf("repo.ServiceRepo.Create: %w", mapWriteError(err, domain.ErrNotFound))
	}
	return result, nil
}

func (r *pgServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	const q = `SELECT ` + serviceColumns + ` FROM services WHERE id = @id`

	result, err := scanService(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Service{}, fmt.Errorf("repo.ServiceRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgServiceRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Service, error) {
	const q = `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE id = ANY(@ids)
		ORDER BY name, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.ServiceRepo.GetByIDs: %w", err)
	}
	services, err := collectServices(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ServiceRepo.GetByIDs: %w", err)
	}
	return services, nil
}

func (r *pgServiceRepo) ListPaged(ctx context.Context, medspaID *uuid.UUID, p domain.PaginationParams) ([]domain.Service, int64, error) {
	const where = `WHERE (@medspa_id::uuid IS NULL OR medspa_id = @medspa_id::uuid)`
	const q = `
		SELECT ` + serviceColumns + `
		FROM services
		` + where + `
		ORDER BY name, id
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{
		"medspa_id": medspaID,
		"limit":     p.Limit,
		"offset":    p.Offset(),
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ServiceRepo.ListPaged: %w", err)
	}
	services, err := collectServices(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ServiceRepo.ListPaged: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM services `+where, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ServiceRepo.ListPaged: count: %w", err)
	}
	return services, total, nil
}

// Update writes only the columns whose patch field is set; NULL arguments
// fall through COALESCE to the stored value.
func (r *pgServiceRepo) Update(ctx context.Context, id uuid.UUID, patch domain.ServicePatch) (domain.Service, error) {
	const q = `
		UPDATE services
		SET name        = COALESCE(@name::text, name),
		    description = COALESCE(@description::text, description),
		    price       = COALESCE(@price::numeric, price),
		    duration    = COALESCE(@duration::integer, duration),
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + serviceColumns

	price := pgtype.Numeric{}
	if patch.Price != nil {
		price = numericFromDecimal(*patch.Price)
	}

	args := pgx.NamedArgs{
		"id":          id,
		"name":        patch.Name,        // nil becomes NULL
		"description": patch.Description, // nil becomes NULL
		"price":       price,
		"duration":    patch.Duration,
	}

	result, err := scanService(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Service{}, fmt.Errorf("repo.ServiceRepo.Update: %w", err)
	}
	return result, nil
}

func collectServices(rows pgx.Rows) ([]domain.Service, error) {
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return services, nil
}

// scanService maps a single database row into a domain.Service.
func scanService(s scanner) (domain.Service, error) {
	var (
		svc      domain.Service
		id       pgtype.UUID
		medspaID pgtype.UUID
		price    pgtype.Numeric
	)
	err := s.Scan(&id, &medspaID, &svc.Name, &svc.Description, &price, &svc.Duration, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Service{}, domain.ErrNotFound
		}
		return domain.Service{}, err
	}
	svc.ID = uuid.UUID(id.Bytes)
	svc.MedspaID = uuid.UUID(medspaID.Bytes)
	svc.Price = decimalFromNumeric(price)
	return svc, nil
}
