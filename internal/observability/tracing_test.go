package observability

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"svw.info/advent/internal/config"
)

func TestStdoutExporterFlushesOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewTracerProvider(config.ObservabilityConfig{TraceExporter: "stdout", TraceSampleRate: 1}, &buf)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "solve")
	span.SetAttributes(attribute.Int("puzzle.day", 4))
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))
	out := buf.String()
	assert.Contains(t, out, `"Name":"solve"`)
	assert.Contains(t, out, `"puzzle.day"`)
	assert.Contains(t, out, `"advent"`)
}

func TestSampleRateZeroDropsSpans(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewTracerProvider(config.ObservabilityConfig{TraceExporter: "stdout"}, &buf)
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "solve")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Empty(t, buf.String())
}

func TestNoExporterStillRecords(t *testing.T) {
	tp, err := NewTracerProvider(config.ObservabilityConfig{TraceExporter: "none", TraceSampleRate: 1}, nil)
	require.NoError(t, err)
	defer tp.Shutdown(context.Background())

	_, span := tp.Tracer("test").Start(context.Background(), "solve")
	defer span.End()
	assert.True(t, span.IsRecording())
}

func TestRejectsBadConfig(t *testing.T) {
	_, err := NewTracerProvider(config.ObservabilityConfig{TraceExporter: "zipkin"}, nil)
	assert.ErrorIs(t, err, ErrExporter)

	_, err = NewTracerProvider(config.ObservabilityConfig{TraceSampleRate: 1.5}, nil)
	assert.ErrorContains(t, err, "sample rate")
}

func TestInstallSetsGlobalProvider(t *testing.T) {
	tp, err := Install(config.ObservabilityConfig{TraceSampleRate: 1}, nil)
	require.NoError(t, err)
	defer tp.Shutdown(context.Background())

	assert.Same(t, tp, otel.GetTracerProvider())
}
