package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/internal/service"
	mocks "github.com/SergeyBogomolovv/sneaker-store/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/sneaker-store/pkg/trm/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var orderCfg = service.OrderConfig{FrontendURL: "https://shop.test", Currency: "usd"}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func airMax() entities.Product {
	return entities.Product{
		ID:        1,
		Name:      "Air Max",
		Thumbnail: "https://cdn.test/air-max.png",
		Variants: []entities.Variant{
			{ID: 10, Name: "42", Price: decimal.RequireFromString("50")},
			{ID: 11, Name: "43", Price: decimal.RequireFromString("19.99")},
		},
	}
}

func resolved(p entities.Product, variantID int64) entities.PricedItem {
	v, _ := p.Variant(variantID)
	return entities.PricedItem{
		Query:   entities.PriceQuery{ProductID: p.ID, VariantID: variantID},
		Product: &p,
		Variant: &v,
	}
}

func checkoutRequest(items ...entities.CheckoutItem) entities.CheckoutRequest {
	return entities.CheckoutRequest{
		Items: items,
		Shipping: &entities.ShippingChoice{
			ShipmentID: "shp_1",
			RateID:     "rate_1",
			Name:       "USPS",
			Price:      decimal.RequireFromString("10"),
		},
		Customer: &entities.Contact{Name: "John", Email: "john@example.com"},
	}
}

type orderDeps struct {
	tx        *txMocks.MockManager
	repo      *mocks.MockOrderRepo
	pricer    *mocks.MockPricer
	gateway   *mocks.MockPaymentGateway
	publisher *mocks.MockEventPublisher
}

func newOrderDeps(t *testing.T) orderDeps {
	d := orderDeps{
		tx:        txMocks.NewMockManager(t),
		repo:      mocks.NewMockOrderRepo(t),
		pricer:    mocks.NewMockPricer(t),
		gateway:   mocks.NewMockPaymentGateway(t),
		publisher: mocks.NewMockEventPublisher(t),
	}
	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return d
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	full := checkoutRequest(entities.CheckoutItem{ProductID: 1, VariantID: 10, Quantity: 1})

	noItems := full
	noItems.Items = nil
	noShipping := full
	noShipping.Shipping = nil
	noCustomer := full
	noCustomer.Customer = nil

	testCases := []struct {
		name    string
		req     entities.CheckoutRequest
		wantErr error
	}{
		{name: "no items", req: noItems, wantErr: entities.ErrItemsMissing},
		{name: "no shipping", req: noShipping, wantErr: entities.ErrShippingMissing},
		{name: "no customer", req: noCustomer, wantErr: entities.ErrCustomerMissing},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			svc := service.NewOrderService(discardLogger(), d.tx, d.repo, d.pricer, d.gateway, d.publisher, orderCfg)

			_, err := svc.CreateOrder(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestOrderService_CreateOrder_UnavailableItem(t *testing.T) {
	testCases := []struct {
		name   string
		item   entities.CheckoutItem
		priced entities.PricedItem
	}{
		{
			name:   "unknown product",
			item:   entities.CheckoutItem{ProductID: 99, VariantID: 1, Quantity: 1},
			priced: entities.PricedItem{Query: entities.PriceQuery{ProductID: 99, VariantID: 1}},
		},
		{
			name: "unknown variant",
			item: entities.CheckoutItem{ProductID: 1, VariantID: 999, Quantity: 1},
			priced: func() entities.PricedItem {
				p := airMax()
				return entities.PricedItem{Query: entities.PriceQuery{ProductID: 1, VariantID: 999}, Product: &p}
			}(),
		},
		{
			name:   "zero quantity",
			item:   entities.CheckoutItem{ProductID: 1, VariantID: 10, Quantity: 0},
			priced: resolved(airMax(), 10),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			ok := entities.CheckoutItem{ProductID: 1, VariantID: 10, Quantity: 1}
			d.pricer.EXPECT().
				CountPrice(mock.Anything, mock.Anything).
				Return([]entities.PricedItem{resolved(airMax(), 10), tc.priced}, nil).Once()

			svc := service.NewOrderService(discardLogger(), d.tx, d.repo, d.pricer, d.gateway, d.publisher, orderCfg)

			_, err := svc.CreateOrder(context.Background(), checkoutRequest(ok, tc.item))

			var unavailable *entities.ItemUnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, 1, unavailable.Index)
			assert.EqualError(t, err, "item 2 is not available")
		})
	}
}

func TestOrderService_CreateOrder_WithoutGateway(t *testing.T) {
	d := newOrderDeps(t)

	d.pricer.EXPECT().
		CountPrice(mock.Anything, []entities.PriceQuery{{ProductID: 1, VariantID: 10}}).
		Return([]entities.PricedItem{resolved(airMax(), 10)}, nil).Once()

	var saved entities.Order
	d.repo.EXPECT().
		SaveOrder(mock.Anything, mock.Anything).
		Run(func(_ context.Context, o entities.Order) { saved = o }).
		Return(nil).Once()
	d.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	d.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool {
			return e.Type == entities.EventOrderCreated && e.Total == "110.00"
		})).
		Return(nil).Once()

	svc := service.NewOrderService(discardLogger(), d.tx, d.repo, d.pricer, nil, d.publisher, orderCfg)

	req := checkoutRequest(entities.CheckoutItem{ProductID: 1, VariantID: 10, Quantity: 2})
	url, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.Regexp(t, `^https://shop\.test/transaction/[0-9a-f-]{36}\?secret=[1-9]\d{4}$`, url)
	assert.Equal(t, "100.00", saved.Subtotal.StringFixed(2))
	assert.True(t, saved.Total.Equal(decimal.NewFromInt(110)))
	assert.Equal(t, entities.PaymentUnpaid, saved.PaymentStatus)
	assert.Equal(t, entities.ShippingWaiting, saved.ShippingStatus)
	assert.Contains(t, url, saved.OrderID)
	assert.Contains(t, url, "secret="+saved.OrderSecret)
	assert.Empty(t, saved.StripeID)

	require.Len(t, saved.Items, 1)
	assert.Equal(t, "100.00", saved.Items[0].Total.StringFixed(2))
	assert.Equal(t, "Air Max", saved.Items[0].ProductName)
	assert.Equal(t, "42", saved.Items[0].Variant)
}

func TestOrderService_CreateOrder_Gateway(t *testing.T) {
	testCases := []struct {
		name       string
		session    entities.PaymentSession
		sessionErr error
		wantURL    func(url string) bool
		wantStripe string
	}{
		{
			name:       "session created",
			session:    entities.PaymentSession{ID: "cs_1", URL: "https://checkout.stripe.test/cs_1", Raw: []byte(`{}`)},
			wantURL:    func(url string) bool { return url == "https://checkout.stripe.test/cs_1" },
			wantStripe: "cs_1",
		},
		{
			name:       "gateway fails, transaction url returned",
			sessionErr: errors.New("stripe is down"),
			wantURL: func(url string) bool {
				return strings.HasPrefix(url, "https://shop.test/transaction/")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)

			d.pricer.EXPECT().
				CountPrice(mock.Anything, mock.Anything).
				Return([]entities.PricedItem{resolved(airMax(), 10), resolved(airMax(), 11)}, nil).Once()

			var sessionReq entities.PaymentSessionRequest
			d.gateway.EXPECT().
				CreateCheckoutSession(mock.Anything, mock.Anything).
				Run(func(_ context.Context, req entities.PaymentSessionRequest) { sessionReq = req }).
				Return(tc.session, tc.sessionErr).Once()

			var saved entities.Order
			d.repo.EXPECT().
				SaveOrder(mock.Anything, mock.Anything).
				Run(func(_ context.Context, o entities.Order) { saved = o }).
				Return(nil).Once()
			d.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("kafka is down")).Once()

			svc := service.NewOrderService(discardLogger(), d.tx, d.repo, d.pricer, d.gateway, d.publisher, orderCfg)

			req := checkoutRequest(
				entities.CheckoutItem{ProductID: 1, VariantID: 10, Quantity: 1},
				entities.CheckoutItem{ProductID: 1, VariantID: 11, Quantity: 3},
			)
			url, err := svc.CreateOrder(context.Background(), req)
			require.NoError(t, err)

			assert.True(t, tc.wantURL(url), url)
			assert.Equal(t, tc.wantStripe, saved.StripeID)
			assert.Equal(t, "109.97", saved.Subtotal.StringFixed(2))
			assert.Equal(t, "119.97", saved.Total.StringFixed(2))

			assert.Equal(t, saved.OrderID, sessionReq.OrderID)
			assert.Equal(t, "usd", sessionReq.Currency)
			assert.Equal(t, "https://shop.test", sessionReq.CancelURL)
			assert.Equal(t, int64(1000), sessionReq.ShippingCost)
			assert.Equal(t, []entities.PaymentLineItem{
				{Name: "Air Max - 42", Image: "https://cdn.test/air-max.png", UnitAmount: 5000, Quantity: 1},
				{Name: "Air Max - 43", Image: "https://cdn.test/air-max.png", UnitAmount: 1999, Quantity: 3},
			}, sessionReq.Items)
		})
	}
}

func TestOrderService_CreateOrder_Save(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockOrderRepo, publisher *mocks.MockEventPublisher)
		wantErr      error
	}{
		{
			name: "retry works (first attempt fails, second succeeds)",
			mockBehavior: func(repo *mocks.MockOrderRepo, publisher *mocks.MockEventPublisher) {
				// первая попытка - SaveItems падает
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Twice()
				repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("temporary error")).Once()
				// вторая попытка - всё ок
				repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "all attempts fail",
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockEventPublisher) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbError).Times(3)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newOrderDeps(t)
			d.pricer.EXPECT().
				CountPrice(mock.Anything, mock.Anything).
				Return([]entities.PricedItem{resolved(airMax(), 10)}, nil).Once()
			tc.mockBehavior(d.repo, d.publisher)

			svc := service.NewOrderService(discardLogger(), d.tx, d.repo, d.pricer, nil, d.publisher, orderCfg)

			_, err := svc.CreateOrder(context.Background(), checkoutRequest(entities.CheckoutItem{ProductID: 1, VariantID: 10, Quantity: 1}))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
