package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"net/url"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/trm"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.LineItem) error
}

type Pricer interface {
	CountPrice(ctx context.Context, queries []entities.PriceQuery) ([]entities.PricedItem, error)
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req entities.PaymentSessionRequest) (entities.PaymentSession, error)
}

type OrderConfig struct {
	FrontendURL string
	Currency    string
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	pricer    Pricer
	gateway   PaymentGateway
	publisher EventPublisher
	cfg       OrderConfig
	retry     utils.RetryConfig
}

// NewOrderService создаёт сервис оформления заказов.
// gateway может быть nil, тогда платёжная сессия не создаётся.
func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	pricer Pricer,
	gateway PaymentGateway,
	publisher EventPublisher,
	cfg OrderConfig,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		pricer:    pricer,
		gateway:   gateway,
		publisher: publisher,
		cfg:       cfg,
		retry: utils.RetryConfig{
			InitialDelay: 50 * time.Millisecond,
			MaxAttempts:  3,
			Multiplier:   2,
		},
	}
}

// CreateOrder оформляет заказ и возвращает ссылку, на которую нужно отправить покупателя.
func (s *orderService) CreateOrder(ctx context.Context, req entities.CheckoutRequest) (_ string, err error) {
	ctx, span := startSpan(ctx, "orderService.CreateOrder")
	defer func() { finishSpan(span, err) }()

	if err := req.Validate(); err != nil {
		return "", err
	}

	items, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return "", err
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total)
	}
	subtotal = subtotal.Round(2)
	shippingPrice := req.Shipping.Price.Round(2)

	orderID, err := newOrderID()
	if err != nil {
		return "", err
	}
	secret, err := newOrderSecret()
	if err != nil {
		return "", err
	}

	transactionURL := s.transactionURL(orderID, secret)

	order := entities.Order{
		OrderID:        orderID,
		OrderSecret:    secret,
		UserID:         req.UserID,
		PaymentStatus:  entities.PaymentUnpaid,
		ShippingStatus: entities.ShippingWaiting,
		Contact:        *req.Customer,
		Items:          items,
		ShippingID:     req.Shipping.ShipmentID,
		RateID:         req.Shipping.RateID,
		ShippingName:   req.Shipping.Name,
		ShippingPrice:  shippingPrice,
		Subtotal:       subtotal,
		Total:          shippingPrice.Add(subtotal),
	}

	paymentURL := transactionURL
	kind := "transaction"
	if s.gateway != nil {
		session, err := s.gateway.CreateCheckoutSession(ctx, s.sessionRequest(order, transactionURL))
		if err != nil {
			// Заказ всё равно создаётся, покупатель попадёт на страницу транзакции
			paymentSessionFailures.Inc()
			s.logger.ErrorContext(ctx, "failed to create payment session",
				slog.Any("error", err), slog.String("order_id", orderID))
		} else {
			order.StripeID = session.ID
			order.StripeURL = session.URL
			order.StripeRequest = session.Raw
			paymentURL = session.URL
			kind = "session"
		}
	}

	err = utils.Retry(ctx, s.retry, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return err
			}
			return s.repo.SaveItems(ctx, order.OrderID, order.Items)
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to save order: %w", err)
	}

	ordersCreated.WithLabelValues(kind).Inc()
	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", orderID),
		slog.String("total", order.Total.StringFixed(2)),
		slog.String("payment", kind),
	)

	s.publish(ctx, entities.OrderEvent{
		Type:          entities.EventOrderCreated,
		OrderID:       order.OrderID,
		UserID:        order.UserID,
		PaymentStatus: order.PaymentStatus,
		Total:         order.Total.StringFixed(2),
		OccurredAt:    time.Now().UTC(),
	})

	return paymentURL, nil
}

// Цены берутся только из каталога, цены клиента игнорируются.
func (s *orderService) priceItems(ctx context.Context, cart []entities.CheckoutItem) ([]entities.LineItem, error) {
	queries := make([]entities.PriceQuery, len(cart))
	for i, it := range cart {
		queries[i] = entities.PriceQuery{ProductID: it.ProductID, VariantID: it.VariantID}
	}

	priced, err := s.pricer.CountPrice(ctx, queries)
	if err != nil {
		return nil, fmt.Errorf("failed to count price: %w", err)
	}
	if len(priced) != len(cart) {
		return nil, fmt.Errorf("pricer returned %d items for %d cart items", len(priced), len(cart))
	}

	items := make([]entities.LineItem, 0, len(cart))
	for i, p := range priced {
		if !p.Resolved() || cart[i].Quantity < 1 {
			return nil, &entities.ItemUnavailableError{
				Index:     i,
				ProductID: cart[i].ProductID,
				VariantID: cart[i].VariantID,
			}
		}

		qty := decimal.NewFromInt(int64(cart[i].Quantity))
		items = append(items, entities.LineItem{
			ProductID:   p.Product.ID,
			Thumbnail:   p.Product.Thumbnail,
			Quantity:    cart[i].Quantity,
			Price:       p.Variant.Price,
			Total:       p.Variant.Price.Mul(qty).Round(2),
			Variant:     p.Variant.Name,
			ProductName: p.Product.Name,
		})
	}
	return items, nil
}

func (s *orderService) sessionRequest(order entities.Order, transactionURL string) entities.PaymentSessionRequest {
	lineItems := make([]entities.PaymentLineItem, 0, len(order.Items))
	for _, it := range order.Items {
		name := it.ProductName
		if it.Variant != "" {
			name = fmt.Sprintf("%s - %s", it.ProductName, it.Variant)
		}
		lineItems = append(lineItems, entities.PaymentLineItem{
			Name:       name,
			Image:      it.Thumbnail,
			UnitAmount: entities.MinorUnits(it.Price),
			Quantity:   int64(it.Quantity),
		})
	}

	return entities.PaymentSessionRequest{
		OrderID:      order.OrderID,
		SuccessURL:   transactionURL,
		CancelURL:    s.cfg.FrontendURL,
		Currency:     s.cfg.Currency,
		Items:        lineItems,
		ShippingName: order.ShippingName,
		ShippingCost: entities.MinorUnits(order.ShippingPrice),
	}
}

func (s *orderService) transactionURL(orderID, secret string) string {
	return fmt.Sprintf("%s/transaction/%s?secret=%s",
		s.cfg.FrontendURL, url.PathEscape(orderID), url.QueryEscape(secret))
}

func (s *orderService) publish(ctx context.Context, event entities.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order event",
			slog.Any("error", err), slog.String("type", string(event.Type)), slog.String("order_id", event.OrderID))
	}
}

func newOrderID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate order id: %w", err)
	}
	return id.String(), nil
}

// Секрет - пятизначное число от 10000 до 99999.
func newOrderSecret() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return "", fmt.Errorf("failed to generate order secret: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+10000), nil
}
