package handler

import (
	"context"
	"errors"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/handler/gen"
)

// CreateMedspa handles POST /medspas.
func (s *Server) CreateMedspa(ctx context.Context, req gen.CreateMedspaRequestObject) (gen.CreateMedspaResponseObject, error) {
	created, err := s.catalog.CreateMedspa(ctx, requestToMedspa(req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateMedspa422JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.CreateMedspa201JSONResponse(medspaToResponse(created)), nil
}

// ListMedspas handles GET /medspas.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListMedspas(ctx context.Context, req gen.ListMedspasRequestObject) (gen.ListMedspasResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	medspas, total, err := s.catalog.ListMedspas(ctx, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Medspa, len(medspas))
	for i, m := range medspas {
		data[i] = medspaToResponse(m)
	}
	return gen.ListMedspas200JSONResponse{Data: data, Pagination: pagination(params, total)}, nil
}

// GetMedspa handles GET /medspas/{id}.
func (s *Server) GetMedspa(ctx context.Context, req gen.GetMedspaRequestObject) (gen.GetMedspaResponseObject, error) {
	m, err := s.catalog.GetMedspa(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetMedspa404JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.GetMedspa200JSONResponse(medspaToResponse(m)), nil
}

// DeleteMedspa handles DELETE /medspas/{id}. Its services and appointments
// are removed with it.
func (s *Server) DeleteMedspa(ctx context.Context, req gen.DeleteMedspaRequestObject) (gen.DeleteMedspaResponseObject, error) {
	if err := s.catalog.DeleteMedspa(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteMedspa404JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.DeleteMedspa204Response{}, nil
}

// ListAppointmentsByMedspa handles GET /medspas/{id}/appointments.
// ?date=YYYY-MM-DD limits results to one calendar day.
func (s *Server) ListAppointmentsByMedspa(ctx context.Context, req gen.ListAppointmentsByMedspaRequestObject) (gen.ListAppointmentsByMedspaResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	appts, total, err := s.appointments.ListByMedspa(ctx, req.Id, dateOf(req.Params.Date), params)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListAppointmentsByMedspa404JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.ListAppointmentsByMedspa200JSONResponse{
		Data:       appointmentsToResponse(appts),
		Pagination: pagination(params, total),
	}, nil
}
