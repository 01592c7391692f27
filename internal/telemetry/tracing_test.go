package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupTracing_Disabled(t *testing.T) {
	shutdown, err := SetupTracing("")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupTracing_WritesSpans(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	path := filepath.Join(t.TempDir(), "trace.jsonl")

	shutdown, err := SetupTracing(path)
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "repair-bug")
	span.End()

	require.NoError(t, shutdown(context.Background()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Name":"repair-bug"`)
	assert.Contains(t, string(raw), instrumentationName)
}

func TestSetupTracing_UnwritablePath(t *testing.T) {
	_, err := SetupTracing(filepath.Join(t.TempDir(), "missing", "trace.jsonl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open trace file")
}
