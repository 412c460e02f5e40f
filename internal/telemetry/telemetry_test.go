package telemetry_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/moxie-medspa/backend/internal/config"
	"github.com/moxie-medspa/backend/internal/telemetry"
)

func TestSetup_DisabledIsNoop(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), config.Telemetry{Enabled: false})

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

// The propagator is installed even when export is off, so inbound
// traceparent headers still reach the request context.
func TestSetup_InstallsTraceContextPropagator(t *testing.T) {
	_, err := telemetry.Setup(context.Background(), config.Telemetry{Enabled: false})
	require.NoError(t, err)

	h := http.Header{}
	h.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	ctx := otel.GetTextMapPropagator().Extract(context.Background(), propagation.HeaderCarrier(h))

	out := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, out)
	assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", out["traceparent"])
}

// otlptracegrpc connects lazily, so enabling export against an unreachable
// endpoint still succeeds at startup.
func TestSetup_EnabledBuildsProvider(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), config.Telemetry{
		Enabled:      true,
		ServiceName:  "medspa-api-test",
		OTLPEndpoint: "127.0.0.1:1",
		SampleRatio:  1,
	})

	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
