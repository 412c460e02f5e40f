package handler

import (
	"bytes"
	"context"
	"time"

	"github.com/moxie-medspa/backend/internal/handler/gen"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the process is running.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetReady handles GET /readyz. Every registered check gets two seconds;
// any failure turns the response into a 503 listing the failing checks.
func (s *Server) GetReady(ctx context.Context, _ gen.GetReadyRequestObject) (gen.GetReadyResponseObject, error) {
	failures := map[string]string{}
	for _, check := range s.checks {
		if check.Check == nil {
			continue
		}
		cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := check.Check(cctx)
		cancel()
		if err != nil {
			name := check.Name
			if name == "" {
				name = "dependency"
			}
			failures[name] = err.Error()
		}
	}
	if len(failures) > 0 {
		return gen.GetReady503JSONResponse{Status: "unavailable", Checks: &failures}, nil
	}
	return gen.GetReady200JSONResponse{Status: "ok"}, nil
}

// GetAPIDocument handles GET /openapi.yaml.
func (s *Server) GetAPIDocument(_ context.Context, _ gen.GetAPIDocumentRequestObject) (gen.GetAPIDocumentResponseObject, error) {
	if len(s.document) == 0 {
		return gen.GetAPIDocument404JSONResponse(notFoundBody("no API document in this build")), nil
	}
	return gen.GetAPIDocument200ApplicationyamlResponse{
		Body:          bytes.NewReader(s.document),
		ContentLength: int64(len(s.document)),
	}, nil
}
