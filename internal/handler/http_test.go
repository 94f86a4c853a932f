package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/internal/handler"
	mocks "github.com/SergeyBogomolovv/sneaker-store/internal/handler/mocks"
	"github.com/SergeyBogomolovv/sneaker-store/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type initer interface {
	Init(r chi.Router)
}

// newRouter собирает роутер с обработчиком. Непустой userID имитирует авторизованного пользователя.
func newRouter(h initer, userID string) chi.Router {
	r := chi.NewRouter()
	if userID != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), userID)))
			})
		})
	}
	h.Init(r)
	return r
}

func serve(t *testing.T, r http.Handler, method, target, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

type orderMocks struct {
	creator *mocks.MockOrderCreator
	pricer  *mocks.MockPriceCounter
	querier *mocks.MockOrderQuerier
}

func newOrderHandler(t *testing.T) (*handler.OrderHandler, orderMocks) {
	m := orderMocks{
		creator: mocks.NewMockOrderCreator(t),
		pricer:  mocks.NewMockPriceCounter(t),
		querier: mocks.NewMockOrderQuerier(t),
	}
	return handler.NewOrderHandler(discardLogger(), m.creator, m.pricer, m.querier), m
}

const createBody = `{
	"data": {
		"items": [{"id": 1, "variant_id": 10, "qty": 2, "price": 1, "display_name": "Air Max - 42", "image": "x.png"}],
		"shipping": {"id": "shp_1", "id_rate": "rate_1", "name": "USPS", "price": 10},
		"customer": {
			"name": "John", "email": "john@example.com", "phone_number": "+15550000000",
			"street_address": "1 Main St", "country": "US", "state": "TX", "city": "Austin", "zip_code": "78701"
		}
	}
}`

func TestOrderHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		userID       string
		mockBehavior func(m orderMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			body:   createBody,
			userID: "7",
			mockBehavior: func(m orderMocks) {
				m.creator.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(req entities.CheckoutRequest) bool {
						return req.UserID == "7" &&
							len(req.Items) == 1 &&
							req.Items[0] == (entities.CheckoutItem{ProductID: 1, VariantID: 10, Quantity: 2}) &&
							req.Shipping.ShipmentID == "shp_1" &&
							req.Shipping.RateID == "rate_1" &&
							req.Shipping.Price.Equal(decimal.NewFromInt(10)) &&
							req.Customer.Address == "1 Main St" &&
							req.Customer.Zip == "78701"
					})).
					Return("https://checkout.stripe.test/cs_1", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"url":"https://checkout.stripe.test/cs_1"}`,
		},
		{
			name: "items missing",
			body: `{"shipping": {"id": "shp_1", "id_rate": "rate_1", "price": 10}}`,
			mockBehavior: func(m orderMocks) {
				m.creator.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return("", entities.ErrItemsMissing).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"items data is missing"`,
		},
		{
			name: "empty body",
			mockBehavior: func(m orderMocks) {
				m.creator.EXPECT().CreateOrder(mock.Anything, entities.CheckoutRequest{Items: []entities.CheckoutItem{}}).
					Return("", entities.ErrItemsMissing).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"items data is missing"`,
		},
		{
			name: "item not available",
			body: createBody,
			mockBehavior: func(m orderMocks) {
				m.creator.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return("", &entities.ItemUnavailableError{Index: 0, ProductID: 1, VariantID: 10}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"item 1 is not available"`,
		},
		{
			name:         "invalid customer email",
			body:         strings.Replace(createBody, "john@example.com", "not-an-email", 1),
			mockBehavior: func(m orderMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"CreateOrderRequest.Customer.Email":"email"`,
		},
		{
			name:         "zero quantity",
			body:         strings.Replace(createBody, `"qty": 2`, `"qty": 0`, 1),
			mockBehavior: func(m orderMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"CreateOrderRequest.Items[0].Qty":"gte"`,
		},
		{
			name:         "negative shipping price",
			body:         strings.Replace(createBody, `"price": 10`, `"price": -1`, 1),
			mockBehavior: func(m orderMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"CreateOrderRequest.Shipping.Price":"gte"`,
		},
		{
			name:         "malformed json",
			body:         `{"items": [`,
			mockBehavior: func(m orderMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "persistence failure",
			body: createBody,
			mockBehavior: func(m orderMocks) {
				m.creator.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return("", errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"Failed to create order"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newOrderHandler(t)
			tc.mockBehavior(m)

			status, body := serve(t, newRouter(h, tc.userID), http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_CountPrice(t *testing.T) {
	product := &entities.Product{ID: 1, Name: "Air Max", Thumbnail: "air.png"}
	variant := &entities.Variant{ID: 10, Name: "42", Price: decimal.RequireFromString("129.99"), Width: 20, Length: 30, Height: 12, Weight: 2}

	t.Run("unauthorized", func(t *testing.T) {
		h, _ := newOrderHandler(t)
		status, _ := serve(t, newRouter(h, ""), http.MethodPost, "/orders/checkout/count-price",
			`{"data": {"items": [{"productId": 1, "variantId": 10}]}}`)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("success", func(t *testing.T) {
		h, m := newOrderHandler(t)
		m.pricer.EXPECT().
			CountPrice(mock.Anything, []entities.PriceQuery{{ProductID: 1, VariantID: 10}, {ProductID: 2, VariantID: 5}}).
			Return([]entities.PricedItem{
				{Query: entities.PriceQuery{ProductID: 1, VariantID: 10}, Product: product, Variant: variant},
				{Query: entities.PriceQuery{ProductID: 2, VariantID: 5}},
			}, nil).Once()

		status, body := serve(t, newRouter(h, "7"), http.MethodPost, "/orders/checkout/count-price",
			`{"data": {"items": [{"productId": 1, "variantId": 10}, {"productId": 2, "variantId": 5}]}}`)
		require.Equal(t, http.StatusOK, status)

		var items []map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &items))
		require.Len(t, items, 2)
		assert.Equal(t, map[string]any{
			"id": 1.0, "image": "air.png", "name": "Air Max",
			"variant_id": 10.0, "variant_name": "42", "price": 129.99,
			"width": 20.0, "length": 30.0, "height": 12.0, "weight": 2.0,
		}, items[0])
		assert.Empty(t, items[1])
	})

	t.Run("empty items", func(t *testing.T) {
		h, _ := newOrderHandler(t)
		status, body := serve(t, newRouter(h, "7"), http.MethodPost, "/orders/checkout/count-price", `{"data": {"items": []}}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"CountPriceRequest.Items":"min"`)
	})
}

func sampleOrder() entities.Order {
	return entities.Order{
		OrderID:        "0199-order",
		OrderSecret:    "12345",
		UserID:         "7",
		PaymentStatus:  entities.PaymentSucceeded,
		ShippingStatus: entities.ShippingWaiting,
		Contact:        entities.Contact{Name: "John", Email: "john@example.com", Address: "1 Main St"},
		Items: []entities.LineItem{{
			ProductID: 1, Thumbnail: "air.png", Quantity: 2,
			Price: decimal.RequireFromString("50"), Total: decimal.RequireFromString("100"),
			Variant: "42", ProductName: "Air Max",
		}},
		ShippingID:    "shp_1",
		RateID:        "rate_1",
		ShippingName:  "USPS",
		ShippingPrice: decimal.RequireFromString("10"),
		Subtotal:      decimal.RequireFromString("100"),
		Total:         decimal.RequireFromString("110"),
		StripeURL:     "https://checkout.stripe.test/cs_1",
		StripeRequest: []byte(`{"id":"cs_1"}`),
		TrackingCode:  "9400100000000000000000",
		ShippingLabel: []byte(`{"id":"shp_1"}`),
		StripeWebhook: []byte(`{"id":"evt_1"}`),
		CreatedAt:     time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestOrderHandler_GetOrderWithSecret(t *testing.T) {
	testCases := []struct {
		name         string
		target       string
		mockBehavior func(m orderMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			target: "/orders/transaction/0199-order?secret=12345",
			mockBehavior: func(m orderMocks) {
				m.querier.EXPECT().GetOrderWithSecret(mock.Anything, "0199-order", "12345").
					Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"0199-order"`,
		},
		{
			name:         "secret missing",
			target:       "/orders/transaction/0199-order",
			mockBehavior: func(m orderMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Order ID and secret are required"`,
		},
		{
			name:   "wrong secret",
			target: "/orders/transaction/0199-order?secret=00000",
			mockBehavior: func(m orderMocks) {
				m.querier.EXPECT().GetOrderWithSecret(mock.Anything, "0199-order", "00000").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"Order not found"`,
		},
		{
			name:   "internal error",
			target: "/orders/transaction/0199-order?secret=12345",
			mockBehavior: func(m orderMocks) {
				m.querier.EXPECT().GetOrderWithSecret(mock.Anything, "0199-order", "12345").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"Failed to get order"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newOrderHandler(t)
			tc.mockBehavior(m)

			status, body := serve(t, newRouter(h, ""), http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_OrderProjection(t *testing.T) {
	h, m := newOrderHandler(t)
	m.querier.EXPECT().GetMyOrder(mock.Anything, "0199-order", "7").Return(sampleOrder(), nil).Once()

	status, body := serve(t, newRouter(h, "7"), http.MethodGet, "/orders/me/transaction/0199-order", "")
	require.Equal(t, http.StatusOK, status)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, "0199-order", resp["order_id"])
	assert.Equal(t, 110.0, resp["total"])
	assert.Equal(t, "SUCCEEDED", resp["payment_status"])
	assert.Equal(t, "2025-01-02T03:04:05Z", resp["createdAt"])

	for _, hidden := range []string{"order_secret", "stripe_request", "stripe_response_webhook", "shipping_label", "shipping_id", "rate_id"} {
		assert.NotContains(t, resp, hidden)
	}
	assert.NotContains(t, body, "12345")
	assert.NotContains(t, body, "shp_1")

	products, ok := resp["products"].([]any)
	require.True(t, ok)
	require.Len(t, products, 1)
	assert.Equal(t, "air.png", products[0].(map[string]any)["thumbnail"])
}

func TestOrderHandler_GetMyOrder(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		h, _ := newOrderHandler(t)
		status, _ := serve(t, newRouter(h, ""), http.MethodGet, "/orders/me/transaction/0199-order", "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("other user order", func(t *testing.T) {
		h, m := newOrderHandler(t)
		m.querier.EXPECT().GetMyOrder(mock.Anything, "0199-order", "8").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		status, body := serve(t, newRouter(h, "8"), http.MethodGet, "/orders/me/transaction/0199-order", "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Contains(t, body, `"Order not found"`)
	})
}

func TestOrderHandler_ListMyOrders(t *testing.T) {
	testCases := []struct {
		name         string
		userID       string
		target       string
		mockBehavior func(m orderMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:       "unauthorized",
			target:     "/orders/me/transaction",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "success with filter",
			userID: "7",
			target: "/orders/me/transaction?status=SUCCEEDED&page=2&pageSize=10",
			mockBehavior: func(m orderMocks) {
				m.querier.EXPECT().
					ListMyOrders(mock.Anything, entities.OrderFilter{UserID: "7", Status: entities.PaymentSucceeded, Page: 2, PageSize: 10}).
					Return(entities.OrderPage{
						Orders:     []entities.Order{sampleOrder()},
						Pagination: entities.Pagination{Page: 2, PageSize: 10, PageCount: 2, Total: 11},
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"meta":{"pagination":{"page":2,"pageSize":10,"pageCount":2,"total":11}}`,
		},
		{
			name:   "empty list",
			userID: "7",
			target: "/orders/me/transaction",
			mockBehavior: func(m orderMocks) {
				m.querier.EXPECT().ListMyOrders(mock.Anything, entities.OrderFilter{UserID: "7"}).
					Return(entities.OrderPage{Pagination: entities.Pagination{Page: 1, PageSize: 25}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"results":[]`,
		},
		{
			name:       "unknown status",
			userID:     "7",
			target:     "/orders/me/transaction?status=PAID",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"ListOrdersQuery.Status":"oneof"`,
		},
		{
			name:       "bad page",
			userID:     "7",
			target:     "/orders/me/transaction?page=abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid pagination parameters"`,
		},
		{
			name:   "internal error",
			userID: "7",
			target: "/orders/me/transaction",
			mockBehavior: func(m orderMocks) {
				m.querier.EXPECT().ListMyOrders(mock.Anything, mock.Anything).
					Return(entities.OrderPage{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"Failed to get orders"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := newOrderHandler(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(m)
			}

			status, body := serve(t, newRouter(h, tc.userID), http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
