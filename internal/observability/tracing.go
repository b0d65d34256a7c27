// Package observability builds the process-wide OpenTelemetry tracer provider.
package observability

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"svw.info/advent/internal/config"
)

const serviceName = "advent"

// ErrExporter is returned for an unknown trace exporter name.
var ErrExporter = errors.New("observability: unknown trace exporter")

// NewTracerProvider builds an SDK provider from cfg. The "stdout" exporter
// writes finished spans as JSON to w; "none" or an empty name records spans
// without exporting them. Callers own Shutdown, which flushes pending spans.
func NewTracerProvider(cfg config.ObservabilityConfig, w io.Writer) (*sdktrace.TracerProvider, error) {
	rate := cfg.TraceSampleRate
	if rate < 0 || rate > 1 {
		return nil, fmt.Errorf("observability: trace sample rate %v outside [0, 1]", rate)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))),
	}
	switch name := strings.ToLower(strings.TrimSpace(cfg.TraceExporter)); name {
	case "", "none":
	case "stdout":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("observability: stdout exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exp))
	default:
		return nil, fmt.Errorf("%w: %q", ErrExporter, name)
	}
	return sdktrace.NewTracerProvider(opts...), nil
}

// Install builds the provider and registers it as the global one.
func Install(cfg config.ObservabilityConfig, w io.Writer) (*sdktrace.TracerProvider, error) {
	tp, err := NewTracerProvider(cfg, w)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	return tp, nil
}
