package telemetry

import (
	"github.com/abgdnv/catalogue/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// NewTracerProvider creates the process tracer provider and installs it globally.
// No exporter is registered: spans only give log records a trace_id.
// A disabled config yields a provider that samples nothing.
func NewTracerProvider(serviceName string, cfg config.TracingConfig) *tracesdk.TracerProvider {
	sampler := tracesdk.NeverSample()
	if cfg.Enabled {
		sampler = tracesdk.TraceIDRatioBased(cfg.SamplingRatio)
	}
	tp := tracesdk.NewTracerProvider(
		tracesdk.WithSampler(tracesdk.ParentBased(sampler)),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	return tp
}
