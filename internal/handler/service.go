package handler

import (
	"context"
	"errors"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/handler/gen"
)

// CreateService handles POST /services.
func (s *Server) CreateService(ctx context.Context, req gen.CreateServiceRequestObject) (gen.CreateServiceResponseObject, error) {
	svc, err := requestToService(req.Body)
	if err != nil {
		return gen.CreateService422JSONResponse(errorBody(err)), nil
	}

	created, err := s.catalog.CreateService(ctx, svc)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.CreateService404JSONResponse(errorBody(err)), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.CreateService422JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.CreateService201JSONResponse(serviceToResponse(created)), nil
}

// ListServices handles GET /services. ?medspa_id= restricts the list to one
// medspa; an unknown medspa yields an empty page.
func (s *Server) ListServices(ctx context.Context, req gen.ListServicesRequestObject) (gen.ListServicesResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	services, total, err := s.catalog.ListServices(ctx, req.Params.MedspaId, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Service, len(services))
	for i, svc := range services {
		data[i] = serviceToResponse(svc)
	}
	return gen.ListServices200JSONResponse{Data: data, Pagination: pagination(params, total)}, nil
}

// GetService handles GET /services/{id}.
func (s *Server) GetService(ctx context.Context, req gen.GetServiceRequestObject) (gen.GetServiceResponseObject, error) {
	svc, err := s.catalog.GetService(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetService404JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.GetService200JSONResponse(serviceToResponse(svc)), nil
}

// UpdateService handles PATCH /services/{id}. Omitted fields are untouched.
// Existing appointments keep the totals they were booked with.
func (s *Server) UpdateService(ctx context.Context, req gen.UpdateServiceRequestObject) (gen.UpdateServiceResponseObject, error) {
	updated, err := s.catalog.UpdateService(ctx, req.Id, requestToServicePatch(req.Body))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdateService404JSONResponse(errorBody(err)), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdateService422JSONResponse(errorBody(err)), nil
		}
		return nil, err
	}
	return gen.UpdateService200JSONResponse(serviceToResponse(updated)), nil
}
