package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/moxie-medspa/backend/internal/domain"
)

// AppointmentRepo defines the persistence operations for Appointments and the
// appointment_services join table.
type AppointmentRepo interface {
	// Create inserts the appointment and links every id in a.ServiceIDs in a
	// single transaction. Returns domain.ErrNotFound, and writes nothing, if
	// the medspa or any service does not exist at insert time.
	Create(ctx context.Context, a domain.Appointment) (domain.Appointment, error)

	// GetByID retrieves an appointment with its linked service ids.
	// Returns domain.ErrNotFound if no appointment with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error)

	// ListPaged returns one page of appointments matching f, ordered by
	// start_time ascending, and the total count.
	ListPaged(ctx context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error)

	// UpdateStatus locks the appointment row, passes the current record to
	// check, and writes next only if check returns nil. Totals and service
	// links are never touched. Returns domain.ErrNotFound if it does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, next domain.Status, check func(current domain.Appointment) error) (domain.Appointment, error)
}

// pgAppointmentRepo is the Postgres implementation of AppointmentRepo.
type pgAppointmentRepo struct {
	db db
}

// NewAppointmentRepo constructs an AppointmentRepo backed by the provided db connection.
func NewAppointmentRepo(db db) AppointmentRepo {
	return &pgAppointmentRepo{db: db}
}

const selectAppointment = `
	SELECT a.id, a.medspa_id, a.start_time, a.total_duration, a.total_price, a.status,
	       a.created_at, a.updated_at,
	       ARRAY(
	           SELECT aps.service_id FROM appointment_services aps
	           WHERE aps.appointment_id = a.id
	           ORDER BY aps.service_id
	       ) AS service_ids
	FROM appointments a`

func (r *pgAppointmentRepo) Create(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	const insertAppointment = `
		INSERT INTO appointments (medspa_id, start_time, total_duration, total_price, status)
		VALUES (@medspa_id, @start_time, @total_duration, @total_price, @status)
		RETURNING id`
	const insertLinks = `
		INSERT INTO appointment_services (appointment_id, service_id)
		SELECT @appointment_id, unnest(@service_ids::uuid[])
		ON CONFLICT DO NOTHING`

	var result domain.Appointment
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var id pgtype.UUID
		err := tx.QueryRow(ctx, insertAppointment, pgx.NamedArgs{
			"medspa_id":      a.MedspaID,
			"start_time":     a.StartTime,
			"total_duration": a.TotalDuration,
			"total_price":    numericFromDecimal(a.TotalPrice),
			"status":         string(a.Status),
		}).Scan(&id)
		if err != nil {
			return mapWriteError(err, domain.Missing("medspa_id", "medspa %s not found", a.MedspaID))
		}

		_, err = tx.Exec(ctx, insertLinks, pgx.NamedArgs{
			"appointment_id": uuid.UUID(id.Bytes),
			"service_ids":    a.ServiceIDs,
		})
		if err != nil {
			return mapWriteError(err, domain.Missing("service_ids", "one or more services no longer exist"))
		}

		result, err = scanAppointment(tx.QueryRow(ctx, selectAppointment+` WHERE a.id = @id`, pgx.NamedArgs{"id": uuid.UUID(id.Bytes)}))
		return err
	})
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("repo.AppointmentRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	result, err := scanAppointment(r.db.QueryRow(ctx, selectAppointment+` WHERE a.id = @id`, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("repo.AppointmentRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged filters by calendar date in the location carried by f.Date, so a
// 23:30 Los Angeles booking stays on its local day even though it is stored
// on the next UTC day.
func (r *pgAppointmentRepo) ListPaged(ctx context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	const where = `
		WHERE (@medspa_id::uuid IS NULL OR a.medspa_id = @medspa_id::uuid)
		  AND (@status::text IS NULL OR a.status = @status::text)
		  AND (@date::date IS NULL OR (a.start_time AT TIME ZONE @tz::text)::date = @date::date)`

	args := appointmentFilterArgs(f)
	args["limit"] = p.Limit
	args["offset"] = p.Offset()

	rows, err := r.db.Query(ctx, selectAppointment+where+` ORDER BY a.start_time, a.id LIMIT @limit OFFSET @offset`, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.AppointmentRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	appointments := []domain.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.AppointmentRepo.ListPaged: scan: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.AppointmentRepo.ListPaged: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM appointments a`+where, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.AppointmentRepo.ListPaged: count: %w", err)
	}
	return appointments, total, nil
}

func (r *pgAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, next domain.Status, check func(current domain.Appointment) error) (domain.Appointment, error) {
	var result domain.Appointment
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		current, err := scanAppointment(tx.QueryRow(ctx, selectAppointment+` WHERE a.id = @id FOR UPDATE OF a`, pgx.NamedArgs{"id": id}))
		if err != nil {
			return err
		}
		if check != nil {
			if err := check(current); err != nil {
				return err
			}
		}
		if current.Status == next {
			result = current
			return nil
		}

		const q = `UPDATE appointments SET status = @status, updated_at = now() WHERE id = @id`
		if _, err := tx.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": string(next)}); err != nil {
			return err
		}

		result, err = scanAppointment(tx.QueryRow(ctx, selectAppointment+` WHERE a.id = @id`, pgx.NamedArgs{"id": id}))
		return err
	})
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("repo.AppointmentRepo.UpdateStatus: %w", err)
	}
	return result, nil
}

// appointmentFilterArgs turns nil filter fields into SQL NULLs.
func appointmentFilterArgs(f domain.AppointmentFilter) pgx.NamedArgs {
	args := pgx.NamedArgs{
		"medspa_id": f.MedspaID,
		"status":    (*string)(nil),
		"date":      (*time.Time)(nil),
		"tz":        "UTC",
	}
	if f.Status != nil {
		s := string(*f.Status)
		args["status"] = &s
	}
	if f.Date != nil {
		// Only the calendar day matters; pin it to midnight UTC so the driver
		// cannot shift it across a day boundary.
		d := time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), 0, 0, 0, 0, time.UTC)
		args["date"] = &d
		args["tz"] = f.Date.Location().String()
	}
	return args
}

// scanAppointment maps a single database row into a domain.Appointment.
func scanAppointment(s scanner) (domain.Appointment, error) {
	var (
		a          domain.Appointment
		id         pgtype.UUID
		medspaID   pgtype.UUID
		price      pgtype.Numeric
		status     string
		serviceIDs []pgtype.UUID
	)
	err := s.Scan(&id, &medspaID, &a.StartTime, &a.TotalDuration, &price, &status,
		&a.CreatedAt, &a.UpdatedAt, &serviceIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Appointment{}, domain.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	a.MedspaID = uuid.UUID(medspaID.Bytes)
	a.TotalPrice = decimalFromNumeric(price)
	a.Status = domain.Status(status)
	a.ServiceIDs = uuidsFromPg(serviceIDs)
	return a, nil
}
