package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moxie-medspa/backend/internal/middleware"
)

// Requests rejected by the generated layer keep the JSON error format
// instead of falling back to text/plain.

func TestRequestError_UnbindableQueryNamesParam(t *testing.T) {
	rec := do(newHTTPHandler(&mockCatalog{}, nil), http.MethodGet, "/services?limit=ten", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "bad_request", detail.Code)
	assert.Equal(t, "limit", fieldOf(detail))
	assert.Equal(t, "invalid value for limit", detail.Message)
}

func TestRequestError_EmptyBody(t *testing.T) {
	rec := do(newHTTPHandler(&mockCatalog{}, nil), http.MethodPost, "/medspas", jsonBodyRaw(""))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "bad_request", detail.Code)
	assert.Empty(t, fieldOf(detail))
}

func TestRequestError_BadPriceIsBadRequest(t *testing.T) {
	rec := do(newHTTPHandler(&mockCatalog{}, nil), http.MethodPost, "/services",
		jsonBodyRaw(`{"medspa_id":"`+uuid.NewString()+`","name":"x","price":"cheap","duration":1}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestError_OversizedBodyIs413(t *testing.T) {
	h := middleware.NewMaxBodySizeHandler(32)(newHTTPHandler(&mockCatalog{}, nil))
	body := `{"name":"` + strings.Repeat("a", 64) + `","email_address":"a@b.co"}`

	// Unknown length, so the limit is only hit while decoding.
	req := httptest.NewRequest(http.MethodPost, "/medspas", strings.NewReader(body))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "body_too_large", decodeError(t, rec).Code)
}
