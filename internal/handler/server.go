// Package handler implements the HTTP handlers for the medspa booking API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource files (health.go, medspa.go, service.go,
// appointment.go) but share the same Server struct.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/handler/gen"
	"github.com/moxie-medspa/backend/internal/service"
)

// CatalogServicer defines the medspa and service operations the handlers
// depend on. Defining the interface here, in the consumer package, lets
// handler tests inject a mock without touching the database.
type CatalogServicer interface {
	CreateMedspa(ctx context.Context, m domain.Medspa) (domain.Medspa, error)
	GetMedspa(ctx context.Context, id uuid.UUID) (domain.Medspa, error)
	ListMedspas(ctx context.Context, p domain.PaginationParams) ([]domain.Medspa, int64, error)
	DeleteMedspa(ctx context.Context, id uuid.UUID) error

	CreateService(ctx context.Context, svc domain.Service) (domain.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (domain.Service, error)
	ListServices(ctx context.Context, medspaID *uuid.UUID, p domain.PaginationParams) ([]domain.Service, int64, error)
	UpdateService(ctx context.Context, id uuid.UUID, patch domain.ServicePatch) (domain.Service, error)
}

// AppointmentServicer defines the appointment operations the handlers depend on.
type AppointmentServicer interface {
	Create(ctx context.Context, in service.CreateAppointmentInput) (domain.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	List(ctx context.Context, status *string, date *time.Time, p domain.PaginationParams) ([]domain.Appointment, int64, error)
	ListByMedspa(ctx context.Context, medspaID uuid.UUID, date *time.Time, p domain.PaginationParams) ([]domain.Appointment, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (domain.Appointment, error)
}

// ReadyCheck is a named dependency checked by GET /readyz.
type ReadyCheck struct {
	Name  string
	Check func(context.Context) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, server.StrictOptions()).
type Server struct {
	catalog      CatalogServicer
	appointments AppointmentServicer
	log          *slog.Logger
	checks       []ReadyCheck
	document     []byte
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// document is served verbatim at GET /openapi.yaml; checks are run by
// GET /readyz. A nil log falls back to slog.Default().
func NewServer(catalog CatalogServicer, appointments AppointmentServicer, log *slog.Logger, document []byte, checks ...ReadyCheck) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		catalog:      catalog,
		appointments: appointments,
		log:          log,
		document:     document,
		checks:       checks,
	}
}

// StrictOptions routes body decoding failures and unexpected handler errors
// through the API's JSON error format.
func (s *Server) StrictOptions() gen.StrictHTTPServerOptions {
	return gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.HandleRequestError,
		ResponseErrorHandlerFunc: s.HandleResponseError,
	}
}

// ChiOptions does the same for path and query parameters that fail to bind.
func (s *Server) ChiOptions() gen.ChiServerOptions {
	return gen.ChiServerOptions{ErrorHandlerFunc: s.HandleRequestError}
}
