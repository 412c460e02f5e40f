package handler

import (
	"context"
	"errors"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/handler/gen"
	"github.com/moxie-medspa/backend/internal/service"
)

// CreateAppointment handles POST /appointments.
func (s *Server) CreateAppointment(ctx context.Context, req gen.CreateAppointmentRequestObject) (gen.CreateAppointmentResponseObject, error) {
	body := req.Body
	if body.MedspaId == nil {
		return gen.CreateAppointment422JSONResponse(errorBody(domain.Invalid("medspa_id", "medspa_id is required"))), nil
	}
	if body.StartTime == nil {
		return gen.CreateAppointment422JSONResponse(errorBody(domain.Invalid("start_time", "start_time is required"))), nil
	}

	created, err := s.appointments.Create(ctx, service.CreateAppointmentInput{
		MedspaID:   *body.MedspaId,
		StartTime:  *body.StartTime,
		ServiceIDs: body.ServiceIds,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.CreateAppointment404JSONResponse(errorBody(err)), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.CreateAppointment422JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.CreateAppointment201JSONResponse(appointmentToResponse(created)), nil
}

// ListAppointments handles GET /appointments.
// ?status= filters by exact status; ?start_date=YYYY-MM-DD by calendar day.
func (s *Server) ListAppointments(ctx context.Context, req gen.ListAppointmentsRequestObject) (gen.ListAppointmentsResponseObject, error) {
	var status *string
	if req.Params.Status != nil {
		v := string(*req.Params.Status)
		status = &v
	}
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)

	appts, total, err := s.appointments.List(ctx, status, dateOf(req.Params.StartDate), params)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListAppointments422JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.ListAppointments200JSONResponse{
		Data:       appointmentsToResponse(appts),
		Pagination: pagination(params, total),
	}, nil
}

// GetAppointment handles GET /appointments/{id}.
func (s *Server) GetAppointment(ctx context.Context, req gen.GetAppointmentRequestObject) (gen.GetAppointmentResponseObject, error) {
	appt, err := s.appointments.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetAppointment404JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.GetAppointment200JSONResponse(appointmentToResponse(appt)), nil
}

// UpdateAppointmentStatus handles PATCH /appointments/{id}/status.
func (s *Server) UpdateAppointmentStatus(ctx context.Context, req gen.UpdateAppointmentStatusRequestObject) (gen.UpdateAppointmentStatusResponseObject, error) {
	if req.Body.Status == nil {
		return gen.UpdateAppointmentStatus422JSONResponse(errorBody(domain.Invalid("status", "status is required"))), nil
	}

	updated, err := s.appointments.UpdateStatus(ctx, req.Id, string(*req.Body.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdateAppointmentStatus404JSONResponse(errorBody(err)), nil
		case errors.Is(err, domain.ErrInvalidTransition):
			return gen.UpdateAppointmentStatus409JSONResponse(errorBody(err)), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdateAppointmentStatus422JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.UpdateAppointmentStatus200JSONResponse(appointmentToResponse(updated)), nil
}

// dateOf unwraps an optional YYYY-MM-DD query value.
func dateOf(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
