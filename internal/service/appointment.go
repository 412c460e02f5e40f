package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/repo"
)

// CreateAppointmentInput is what a client supplies to book services.
type CreateAppointmentInput struct {
	MedspaID   uuid.UUID
	StartTime  time.Time
	ServiceIDs []uuid.UUID
}

// AppointmentService aggregates services into appointments, governs the
// status lifecycle, and answers appointment queries.
type AppointmentService struct {
	medspas      repo.MedspaRepo
	services     repo.ServiceRepo
	appointments repo.AppointmentRepo
	loc          *time.Location
}

// NewAppointmentService constructs an AppointmentService backed by the
// provided repos. loc is the zone whose calendar days the date filters use;
// nil means UTC.
func NewAppointmentService(medspas repo.MedspaRepo, services repo.ServiceRepo, appointments repo.AppointmentRepo, loc *time.Location) *AppointmentService {
	if loc == nil {
		loc = time.UTC
	}
	return &AppointmentService{medspas: medspas, services: services, appointments: appointments, loc: loc}
}

// Create books the given services at a medspa.
//
// Every service id must resolve, and every service must belong to the same
// medspa; otherwise nothing is written. The totals are the exact sums of the
// services' durations and prices at this moment and are never recomputed.
//
// Returns domain.ErrValidation for an empty service set or a service from
// another medspa, and domain.ErrNotFound for an unknown medspa or service.
// Totals too large for their columns are also a validation error.
func (s *AppointmentService) Create(ctx context.Context, in CreateAppointmentInput) (domain.Appointment, error) {
	ids := dedupe(in.ServiceIDs)
	if len(ids) == 0 {
		return domain.Appointment{}, domain.Invalid("service_ids", "at least one service is required")
	}
	if in.StartTime.IsZero() {
		return domain.Appointment{}, domain.Invalid("start_time", "start time is required")
	}

	if _, err := s.medspas.GetByID(ctx, in.MedspaID); err != nil {
		return domain.Appointment{}, fmt.Errorf("service.AppointmentService.Create: %w", missingAs(err, "medspa_id", "medspa %s not found", in.MedspaID))
	}

	services, err := s.services.GetByIDs(ctx, ids)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("service.AppointmentService.Create: %w", err)
	}
	if err := checkResolved(ids, services, in.MedspaID); err != nil {
		return domain.Appointment{}, err
	}

	duration, price := domain.SumServices(services)
	if price.GreaterThanOrEqual(maxPrice) {
		return domain.Appointment{}, domain.Invalid("service_ids", "total price %s must be less than %s", price.StringFixed(2), maxPrice)
	}
	if duration > maxDuration {
		return domain.Appointment{}, domain.Invalid("service_ids", "total duration %d exceeds %d minutes", duration, maxDuration)
	}
	appt := domain.Appointment{
		MedspaID:      in.MedspaID,
		StartTime:     in.StartTime,
		TotalDuration: duration,
		TotalPrice:    price,
		Status:        domain.StatusScheduled,
		ServiceIDs:    ids,
	}

	result, err := s.appointments.Create(ctx, appt)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("service.AppointmentService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single appointment by ID.
func (s *AppointmentService) GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	result, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("service.AppointmentService.GetByID: %w", err)
	}
	return result, nil
}

// List returns appointments across all medspas, optionally filtered by exact
// status and by the calendar date of start_time.
// Returns domain.ErrValidation if status is not a recognised value.
func (s *AppointmentService) List(ctx context.Context, status *string, date *time.Time, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	f := domain.AppointmentFilter{Date: s.localDay(date)}
	if status != nil {
		st, err := domain.ParseStatus(*status)
		if err != nil {
			return nil, 0, err
		}
		f.Status = &st
	}
	return s.list(ctx, "service.AppointmentService.List", f, p)
}

// ListByMedspa returns the appointments of one medspa, optionally limited to
// a calendar date. Returns domain.ErrNotFound if the medspa does not exist.
func (s *AppointmentService) ListByMedspa(ctx context.Context, medspaID uuid.UUID, date *time.Time, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	if _, err := s.medspas.GetByID(ctx, medspaID); err != nil {
		return nil, 0, fmt.Errorf("service.AppointmentService.ListByMedspa: %w", missingAs(err, "medspa_id", "medspa %s not found", medspaID))
	}
	f := domain.AppointmentFilter{MedspaID: &medspaID, Date: s.localDay(date)}
	return s.list(ctx, "service.AppointmentService.ListByMedspa", f, p)
}

// UpdateStatus moves an appointment to a new status.
//
// The value is checked against the recognised set before touching storage, so
// an unknown value fails with domain.ErrValidation and leaves the stored status
// unchanged. Only scheduled appointments may change; completed and canceled
// are terminal (domain.ErrInvalidTransition). Re-applying the current status
// is a no-op.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (domain.Appointment, error) {
	next, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Appointment{}, err
	}

	result, err := s.appointments.UpdateStatus(ctx, id, next, func(current domain.Appointment) error {
		return current.Status.CheckTransition(next)
	})
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("service.AppointmentService.UpdateStatus: %w", err)
	}
	return result, nil
}

func (s *AppointmentService) list(ctx context.Context, op string, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	appointments, total, err := s.appointments.ListPaged(ctx, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	return appointments, total, nil
}

// localDay re-anchors a calendar date in the service's zone.
func (s *AppointmentService) localDay(date *time.Time) *time.Time {
	if date == nil {
		return nil
	}
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.loc)
	return &d
}

// checkResolved fails if any requested id is missing from found, or if a
// found service belongs to a different medspa.
func checkResolved(ids []uuid.UUID, found []domain.Service, medspaID uuid.UUID) error {
	byID := make(map[uuid.UUID]domain.Service, len(found))
	for _, svc := range found {
		byID[svc.ID] = svc
	}
	for _, id := range ids {
		svc, ok := byID[id]
		if !ok {
			return domain.Missing("service_ids", "service %s not found", id)
		}
		if svc.MedspaID != medspaID {
			return domain.Invalid("service_ids", "service %s does not belong to medspa %s", id, medspaID)
		}
	}
	return nil
}

// dedupe drops repeated ids, keeping first-seen order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
