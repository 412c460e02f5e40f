package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/repo"
)

// ---- mock repos ------------------------------------------------------------
// Hand-written test doubles. Set only the function fields a test needs; an
// unexpected call panics on the nil func, which fails the test loudly.

type mockMedspaRepo struct {
	create    func(ctx context.Context, m domain.Medspa) (domain.Medspa, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Medspa, error)
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.Medspa, int64, error)
	delete    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockMedspaRepo) Create(ctx context.Context, ms domain.Medspa) (domain.Medspa, error) {
	return m.create(ctx, ms)
}
func (m *mockMedspaRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Medspa, error) {
	return m.getByID(ctx, id)
}
func (m *mockMedspaRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Medspa, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockMedspaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockMedspaRepo must satisfy repo.MedspaRepo.
var _ repo.MedspaRepo = (*mockMedspaRepo)(nil)

type mockServiceRepo struct {
	create    func(ctx context.Context, s domain.Service) (domain.Service, error)
	getByID   func(ctx context.Context, id uuid.UUID) (domain.Service, error)
	getByIDs  func(ctx context.Context, ids []uuid.UUID) ([]domain.Service, error)
	listPaged func(ctx context.Context, medspaID *uuid.UUID, p domain.PaginationParams) ([]domain.Service, int64, error)
	update    func(ctx context.Context, id uuid.UUID, patch domain.ServicePatch) (domain.Service, error)
}

func (m *mockServiceRepo) Create(ctx context.Context, s domain.Service) (domain.Service, error) {
	return m.create(ctx, s)
}
func (m *mockServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	return m.getByID(ctx, id)
}
func (m *mockServiceRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Service, error) {
	return m.getByIDs(ctx, ids)
}
func (m *mockServiceRepo) ListPaged(ctx context.Context, medspaID *uuid.UUID, p domain.PaginationParams) ([]domain.Service, int64, error) {
	return m.listPaged(ctx, medspaID, p)
}
func (m *mockServiceRepo) Update(ctx context.Context, id uuid.UUID, patch domain.ServicePatch) (domain.Service, error) {
	return m.update(ctx, id, patch)
}

// compile-time check: mockServiceRepo must satisfy repo.ServiceRepo.
var _ repo.ServiceRepo = (*mockServiceRepo)(nil)

type mockAppointmentRepo struct {
	create       func(ctx context.Context, a domain.Appointment) (domain.Appointment, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	listPaged    func(ctx context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error)
	updateStatus func(ctx context.Context, id uuid.UUID, next domain.Status, check func(domain.Appointment) error) (domain.Appointment, error)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	return m.create(ctx, a)
}
func (m *mockAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	return m.getByID(ctx, id)
}
func (m *mockAppointmentRepo) ListPaged(ctx context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	return m.listPaged(ctx, f, p)
}
func (m *mockAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, next domain.Status, check func(domain.Appointment) error) (domain.Appointment, error) {
	return m.updateStatus(ctx, id, next, check)
}

// compile-time check: mockAppointmentRepo must satisfy repo.AppointmentRepo.
var _ repo.AppointmentRepo = (*mockAppointmentRepo)(nil)

// memAppointmentRepo keeps appointments in a map and honours the check
// callback the way the Postgres implementation does, so lifecycle scenarios
// can run end to end without a database.
type memAppointmentRepo struct {
	rows map[uuid.UUID]domain.Appointment
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{rows: map[uuid.UUID]domain.Appointment{}}
}

func (m *memAppointmentRepo) Create(_ context.Context, a domain.Appointment) (domain.Appointment, error) {
	a.ID = uuid.New()
	m.rows[a.ID] = a
	return a, nil
}
func (m *memAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Appointment, error) {
	a, ok := m.rows[id]
	if !ok {
		return domain.Appointment{}, domain.ErrNotFound
	}
	return a, nil
}
func (m *memAppointmentRepo) ListPaged(context.Context, domain.AppointmentFilter, domain.PaginationParams) ([]domain.Appointment, int64, error) {
	out := make([]domain.Appointment, 0, len(m.rows))
	for _, a := range m.rows {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}
func (m *memAppointmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, next domain.Status, check func(domain.Appointment) error) (domain.Appointment, error) {
	a, ok := m.rows[id]
	if !ok {
		return domain.Appointment{}, domain.ErrNotFound
	}
	if check != nil {
		if err := check(a); err != nil {
			return domain.Appointment{}, err
		}
	}
	a.Status = next
	m.rows[id] = a
	return a, nil
}

var _ repo.AppointmentRepo = (*memAppointmentRepo)(nil)
