package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "slider/carousel"

// Provider owns the tracer provider used for navigation spans.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// NewOTLPProvider creates an OTLP/HTTP provider if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if endpoint not configured (disabled).
func NewOTLPProvider(ctx context.Context) (*Provider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "slider"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return &Provider{
		provider: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		),
	}, nil
}

// NewProvider wraps an existing SDK provider (tests use a span recorder).
func NewProvider(tp *sdktrace.TracerProvider) *Provider {
	return &Provider{provider: tp}
}

// Tracer returns the carousel tracer. A nil Provider yields a no-op tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil || p.provider == nil {
		return noop.NewTracerProvider().Tracer(tracerName)
	}
	return p.provider.Tracer(tracerName)
}

// Shutdown flushes and closes the exporter
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
