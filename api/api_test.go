package api_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moxie-medspa/backend/api"
)

// TestOpenAPI_DocumentsEveryRoute guards against routes added to the router
// without a matching path in the embedded document.
func TestOpenAPI_DocumentsEveryRoute(t *testing.T) {
	require.NotEmpty(t, api.OpenAPI)
	doc := string(api.OpenAPI)

	assert.True(t, strings.HasPrefix(doc, "openapi: 3."))
	for _, path := range []string{
		"/healthz:",
		"/readyz:",
		"/openapi.yaml:",
		"/medspas:",
		"/medspas/{id}:",
		"/medspas/{id}/appointments:",
		"/services:",
		"/services/{id}:",
		"/appointments:",
		"/appointments/{id}:",
		"/appointments/{id}/status:",
	} {
		assert.Contains(t, doc, "\n  "+path, "missing path %s", path)
	}
}
