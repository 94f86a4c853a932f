package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
)

type checkoutService struct {
	logger   *slog.Logger
	carrier  Carrier
	fallback Carrier
}

// NewCheckoutService создаёт сервис проверки адреса и расчёта доставки.
// Ошибки carrier никогда не доходят до покупателя: ответ берётся из fallback.
func NewCheckoutService(logger *slog.Logger, carrier Carrier, fallback Carrier) *checkoutService {
	return &checkoutService{
		logger:   logger.With(slog.String("service", "checkout")),
		carrier:  carrier,
		fallback: fallback,
	}
}

func (s *checkoutService) ValidateAddress(ctx context.Context, addr entities.Address) entities.AddressVerification {
	ctx, span := startSpan(ctx, "checkoutService.ValidateAddress")
	defer span.End()

	res, err := s.carrier.VerifyAddress(ctx, addr)
	if err == nil {
		return res
	}

	carrierFallbacks.WithLabelValues("verify_address").Inc()
	s.logger.WarnContext(ctx, "address verification failed, assuming address is valid", slog.Any("error", err))

	res, _ = s.fallback.VerifyAddress(ctx, addr)
	return res
}

func (s *checkoutService) ShippingRates(ctx context.Context, to *entities.Address, parcel *entities.Parcel) (entities.ShipmentQuote, error) {
	if to == nil || parcel == nil {
		return entities.ShipmentQuote{}, entities.ErrQuoteInput
	}

	ctx, span := startSpan(ctx, "checkoutService.ShippingRates")
	defer span.End()

	p := *parcel
	if p.Height <= 0 {
		p.Height = p.Width
	}

	quote, err := s.carrier.CreateShipment(ctx, *to, p)
	if err == nil {
		return quote, nil
	}

	carrierFallbacks.WithLabelValues("create_shipment").Inc()
	s.logger.WarnContext(ctx, "shipping quote failed, using mock rate", slog.Any("error", err))

	quote, _ = s.fallback.CreateShipment(ctx, *to, p)
	return quote, nil
}
