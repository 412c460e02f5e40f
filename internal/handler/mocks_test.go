package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/handler"
	"github.com/moxie-medspa/backend/internal/handler/gen"
	"github.com/moxie-medspa/backend/internal/service"
)

// mockCatalog is a test double for handler.CatalogServicer.
// Set only the method fields your test needs.
type mockCatalog struct {
	createMedspa  func(ctx context.Context, m domain.Medspa) (domain.Medspa, error)
	getMedspa     func(ctx context.Context, id uuid.UUID) (domain.Medspa, error)
	listMedspas   func(ctx context.Context, p domain.PaginationParams) ([]domain.Medspa, int64, error)
	deleteMedspa  func(ctx context.Context, id uuid.UUID) error
	createService func(ctx context.Context, s domain.Service) (domain.Service, error)
	getService    func(ctx context.Context, id uuid.UUID) (domain.Service, error)
	listServices  func(ctx context.Context, medspaID *uuid.UUID, p domain.PaginationParams) ([]domain.Service, int64, error)
	updateService func(ctx context.Context, id uuid.UUID, patch domain.ServicePatch) (domain.Service, error)
}

func (m *mockCatalog) CreateMedspa(ctx context.Context, ms domain.Medspa) (domain.Medspa, error) {
	return m.createMedspa(ctx, ms)
}
func (m *mockCatalog) GetMedspa(ctx context.Context, id uuid.UUID) (domain.Medspa, error) {
	return m.getMedspa(ctx, id)
}
func (m *mockCatalog) ListMedspas(ctx context.Context, p domain.PaginationParams) ([]domain.Medspa, int64, error) {
	return m.listMedspas(ctx, p)
}
func (m *mockCatalog) DeleteMedspa(ctx context.Context, id uuid.UUID) error {
	return m.deleteMedspa(ctx, id)
}
func (m *mockCatalog) CreateService(ctx context.Context, s domain.Service) (domain.Service, error) {
	return m.createService(ctx, s)
}
func (m *mockCatalog) GetService(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	return m.getService(ctx, id)
}
func (m *mockCatalog) ListServices(ctx context.Context, medspaID *uuid.UUID, p domain.PaginationParams) ([]domain.Service, int64, error) {
	return m.listServices(ctx, medspaID, p)
}
func (m *mockCatalog) UpdateService(ctx context.Context, id uuid.UUID, patch domain.ServicePatch) (domain.Service, error) {
	return m.updateService(ctx, id, patch)
}

// compile-time check: mockCatalog must satisfy handler.CatalogServicer.
var _ handler.CatalogServicer = (*mockCatalog)(nil)

// mockAppointments is a test double for handler.AppointmentServicer.
type mockAppointments struct {
	create       func(ctx context.Context, in service.CreateAppointmentInput) (domain.Appointment, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	list         func(ctx context.Context, status *string, date *time.Time, p domain.PaginationParams) ([]domain.Appointment, int64, error)
	listByMedspa func(ctx context.Context, medspaID uuid.UUID, date *time.Time, p domain.PaginationParams) ([]domain.Appointment, int64, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status string) (domain.Appointment, error)
}

func (m *mockAppointments) Create(ctx context.Context, in service.CreateAppointmentInput) (domain.Appointment, error) {
	return m.create(ctx, in)
}
func (m *mockAppointments) GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	return m.getByID(ctx, id)
}
func (m *mockAppointments) List(ctx context.Context, status *string, date *time.Time, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	return m.list(ctx, status, date, p)
}
func (m *mockAppointments) ListByMedspa(ctx context.Context, medspaID uuid.UUID, date *time.Time, p domain.PaginationParams) ([]domain.Appointment, int64, error) {
	return m.listByMedspa(ctx, medspaID, date, p)
}
func (m *mockAppointments) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (domain.Appointment, error) {
	return m.updateStatus(ctx, id, status)
}

// compile-time check: mockAppointments must satisfy handler.AppointmentServicer.
var _ handler.AppointmentServicer = (*mockAppointments)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the generated
// router, the same way main.go mounts it in production.
func newHTTPHandler(catalog handler.CatalogServicer, appts handler.AppointmentServicer) http.Handler {
	return mount(handler.NewServer(catalog, appts, nil, []byte("openapi: 3.0.3\n")))
}

func mount(srv *handler.Server) http.Handler {
	return gen.HandlerWithOptions(gen.NewStrictHandlerWithOptions(srv, nil, srv.StrictOptions()), srv.ChiOptions())
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func jsonBodyRaw(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}

// do runs one request through h and returns the recorder.
func do(h http.Handler, method, target string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

// fieldOf returns the offending field of an error body, or "" if none.
func fieldOf(d gen.ErrorDetail) string {
	if d.Field == nil {
		return ""
	}
	return *d.Field
}
