package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/moxie-medspa/backend/internal/domain"
	"github.com/moxie-medspa/backend/internal/handler/gen"
)

// errorBody renders a service-layer error as the API error body. A
// domain.FieldError supplies the message and the offending field.
func errorBody(err error) gen.ErrorResponse {
	detail := gen.ErrorDetail{Code: errorCode(err), Message: err.Error()}
	var fe *domain.FieldError
	switch {
	case errors.As(err, &fe):
		detail.Message = fe.Message
		if fe.Field != "" {
			field := fe.Field
			detail.Field = &field
		}
	case errors.Is(err, domain.ErrNotFound):
		detail.Message = "resource not found"
	}
	return gen.ErrorResponse{Error: detail}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "validation_error"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	}
	return "internal_error"
}

// notFoundBody is the 404 body for a missing path resource.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// HandleRequestError answers requests rejected before a handler runs:
// unbindable path or query parameters, malformed JSON, oversized bodies.
func (s *Server) HandleRequestError(w http.ResponseWriter, _ *http.Request, err error) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		writeJSON(w, http.StatusRequestEntityTooLarge, gen.ErrorResponse{Error: gen.ErrorDetail{
			Code:    "body_too_large",
			Message: "request body too large",
		}})
		return
	}

	detail := gen.ErrorDetail{Code: "bad_request", Message: err.Error()}
	if name := paramName(err); name != "" {
		detail.Field = &name
		detail.Message = "invalid value for " + name
	}
	writeJSON(w, http.StatusBadRequest, gen.ErrorResponse{Error: detail})
}

// HandleResponseError logs an error no handler mapped and answers with a
// generic 500 that leaks nothing about the cause.
func (s *Server) HandleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, gen.ErrorResponse{Error: gen.ErrorDetail{
		Code:    "internal_error",
		Message: "internal server error",
	}})
}

// paramName extracts the parameter a binding error refers to.
func paramName(err error) string {
	var invalid *gen.InvalidParamFormatError
	var required *gen.RequiredParamError
	var tooMany *gen.TooManyValuesForParamError
	switch {
	case errors.As(err, &invalid):
		return invalid.ParamName
	case errors.As(err, &required):
		return required.ParamName
	case errors.As(err, &tooMany):
		return tooMany.ParamName
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
