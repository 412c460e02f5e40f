// Package middleware holds the HTTP middleware the medspa API mounts ahead of
// its routes.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler lets browser clients served from allowedOrigins call the
// API. Origins are matched exactly, e.g. "https://front-desk.example.com".
//
// PATCH is needed for service edits and status changes. The trace headers
// let a browser-side tracer join the server span, and X-Request-Id is
// exposed so the front desk can quote it when reporting a failed booking.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Traceparent", "Tracestate"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return c.Handler
}
