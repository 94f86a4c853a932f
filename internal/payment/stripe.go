package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"
	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"

	"github.com/sony/gobreaker"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"golang.org/x/text/currency"
)

const metadataOrderID = "order_id"

type StripeGateway struct {
	logger   *slog.Logger
	api      *client.API
	cb       *gobreaker.CircuitBreaker
	currency string
	timeout  time.Duration
}

type Option func(*options)

type options struct {
	backends *stripe.Backends
}

// WithBackends подменяет транспорт Stripe, например на тестовый сервер.
func WithBackends(b *stripe.Backends) Option {
	return func(o *options) {
		o.backends = b
	}
}

func NewStripeGateway(logger *slog.Logger, cfg config.Stripe, opts ...Option) (*StripeGateway, error) {
	if cfg.APIKey == "" {
		return nil, entities.ErrNotConfigured
	}

	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", cfg.Currency, err)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.backends == nil {
		o.backends = stripe.NewBackends(&http.Client{Timeout: cfg.Timeout})
	}

	logger = logger.With(slog.String("gateway", "stripe"))

	return &StripeGateway{
		logger:   logger,
		api:      client.New(cfg.APIKey, o.backends),
		cb:       utils.NewBreaker("stripe", logger),
		currency: strings.ToLower(unit.String()),
		timeout:  cfg.Timeout,
	}, nil
}

// CreateCheckoutSession создаёт сессию оплаты. order_id кладётся в metadata
// и сессии, и payment intent, чтобы вебхук мог найти заказ.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req entities.PaymentSessionRequest) (entities.PaymentSession, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := g.sessionParams(req)
	params.Context = ctx

	res, err := g.cb.Execute(func() (any, error) {
		return g.api.CheckoutSessions.New(params)
	})
	if err != nil {
		return entities.PaymentSession{}, fmt.Errorf("failed to create checkout session: %w", err)
	}
	session := res.(*stripe.CheckoutSession)

	raw, err := rawSession(session)
	if err != nil {
		g.logger.WarnContext(ctx, "failed to encode checkout session", slog.Any("error", err))
	}

	return entities.PaymentSession{
		ID:  session.ID,
		URL: session.URL,
		Raw: raw,
	}, nil
}

func (g *StripeGateway) sessionParams(req entities.PaymentSessionRequest) *stripe.CheckoutSessionParams {
	cur := g.currency
	if req.Currency != "" {
		cur = strings.ToLower(req.Currency)
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, it := range req.Items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(it.Name),
		}
		if it.Image != "" {
			product.Images = stripe.StringSlice([]string{it.Image})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(cur),
				ProductData: product,
				UnitAmount:  stripe.Int64(it.UnitAmount),
			},
			Quantity: stripe.Int64(it.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems:  lineItems,
		ShippingOptions: []*stripe.CheckoutSessionShippingOptionParams{
			{
				ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
					Type:        stripe.String("fixed_amount"),
					DisplayName: stripe.String(shippingName(req.ShippingName)),
					FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
						Amount:   stripe.Int64(req.ShippingCost),
						Currency: stripe.String(cur),
					},
				},
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{metadataOrderID: req.OrderID},
		},
	}
	params.AddMetadata(metadataOrderID, req.OrderID)
	return params
}

func shippingName(name string) string {
	if name == "" {
		return "Shipping"
	}
	return name
}

func rawSession(s *stripe.CheckoutSession) ([]byte, error) {
	if s.LastResponse != nil && len(s.LastResponse.RawJSON) > 0 {
		return s.LastResponse.RawJSON, nil
	}
	return json.Marshal(s)
}
