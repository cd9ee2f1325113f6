package telemetry

import (
	"context"
	"testing"

	"github.com/abgdnv/catalogue/pkg/config"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
)

func Test_NewTracerProvider(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.TracingConfig
		expected bool
	}{
		{
			name:     "Enabled with full sampling",
			cfg:      config.TracingConfig{Enabled: true, SamplingRatio: 1},
			expected: true,
		},
		{
			name:     "Enabled with zero ratio",
			cfg:      config.TracingConfig{Enabled: true, SamplingRatio: 0},
			expected: false,
		},
		{
			name:     "Disabled",
			cfg:      config.TracingConfig{Enabled: false, SamplingRatio: 1},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			tp := NewTracerProvider("catalogue-test", tc.cfg)
			t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

			// when
			_, span := tp.Tracer("test").Start(context.Background(), "op")
			span.End()

			// then
			assert.Equal(t, tc.expected, span.SpanContext().IsSampled())
		})
	}
}

func Test_NewTracerProvider_InstallsOnlyTracerProvider(t *testing.T) {
	tp := NewTracerProvider("catalogue-test", config.TracingConfig{Enabled: true, SamplingRatio: 1})
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	assert.Same(t, tp, otel.GetTracerProvider())
	assert.Empty(t, otel.GetTextMapPropagator().Fields(), "nothing crosses a process boundary, no propagator is installed")
}
