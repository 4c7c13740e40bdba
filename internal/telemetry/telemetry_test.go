package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDisabled(t *testing.T) {
	t.Setenv(endpointEnv, "")

	cfg := Config{}
	assert.False(t, cfg.Enabled())

	shutdown, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	// The global provider is untouched, so spans are no-ops but still usable.
	_, span := Tracer("test").Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
}

func TestConfigEnabled(t *testing.T) {
	t.Setenv(endpointEnv, "")
	assert.True(t, Config{Endpoint: "http://localhost:4318"}.Enabled())

	t.Setenv(endpointEnv, "http://collector:4318")
	assert.True(t, Config{}.Enabled())
}
