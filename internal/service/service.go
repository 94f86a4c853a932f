package service

import (
	"context"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/SergeyBogomolovv/sneaker-store/internal/service")

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

// Carrier - интеграция со службой доставки.
type Carrier interface {
	VerifyAddress(ctx context.Context, addr entities.Address) (entities.AddressVerification, error)
	CreateShipment(ctx context.Context, to entities.Address, parcel entities.Parcel) (entities.ShipmentQuote, error)
	BuyLabel(ctx context.Context, req entities.LabelRequest) (entities.Label, error)
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
