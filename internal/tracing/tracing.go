package tracing

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider останавливает экспорт спанов при завершении приложения.
type Provider interface {
	Shutdown(ctx context.Context) error
}

type noopProvider struct{}

func (noopProvider) Shutdown(context.Context) error { return nil }

// New настраивает глобальный TracerProvider с экспортом по OTLP/gRPC.
// Без cfg.Endpoint трейсинг выключен и остаётся noop провайдер otel.
func New(ctx context.Context, cfg config.Tracing, env string) (Provider, error) {
	if cfg.Endpoint == "" {
		return noopProvider{}, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("deployment.environment", env),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	return tp, nil
}
