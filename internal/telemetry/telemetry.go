package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tasktracker/internal/config"
)

type Params struct {
	fx.In
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *zap.Logger
}

// NewTracerProvider installs the global tracer provider. Spans are exported
// over OTLP/gRPC only when an endpoint is configured; otherwise a no-op
// provider is used.
func NewTracerProvider(p Params) (trace.TracerProvider, error) {
	if p.Config.OtelEndpoint == "" {
		provider := noop.NewTracerProvider()
		otel.SetTracerProvider(provider)
		p.Logger.Debug("tracing disabled, no OTLP endpoint configured")
		return provider, nil
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpointURL(p.Config.OtelEndpoint),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", p.Config.ServiceName),
		)),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Shutdown(ctx)
		},
	})

	p.Logger.Info("tracing enabled", zap.String("endpoint", p.Config.OtelEndpoint))
	return provider, nil
}
