package payment_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"
	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

var stripeCfg = config.Stripe{APIKey: "sk_test_123", Currency: "USD", Timeout: 5 * time.Second}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBackends(serverURL string) *stripe.Backends {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(serverURL),
		HTTPClient:        &http.Client{Timeout: 5 * time.Second},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return &stripe.Backends{API: backend, Connect: backend, Uploads: backend}
}

func TestNewStripeGateway(t *testing.T) {
	_, err := payment.NewStripeGateway(discardLogger(), config.Stripe{Currency: "USD", Timeout: time.Second})
	assert.ErrorIs(t, err, entities.ErrNotConfigured)

	_, err = payment.NewStripeGateway(discardLogger(), config.Stripe{APIKey: "sk", Currency: "XXZ", Timeout: time.Second})
	assert.Error(t, err)
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`)
	}))
	defer srv.Close()

	gw, err := payment.NewStripeGateway(discardLogger(), stripeCfg, payment.WithBackends(testBackends(srv.URL)))
	require.NoError(t, err)

	session, err := gw.CreateCheckoutSession(context.Background(), entities.PaymentSessionRequest{
		OrderID:    "order-1",
		SuccessURL: "https://shop.test/transaction/order-1?secret=12345",
		CancelURL:  "https://shop.test",
		Items: []entities.PaymentLineItem{
			{Name: "Air Max - 42", Image: "https://cdn.test/air-max.png", UnitAmount: 5000, Quantity: 2},
		},
		ShippingName: "USPS",
		ShippingCost: 1000,
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.URL)
	assert.NotEmpty(t, session.Raw)

	assert.Equal(t, "payment", form.Get("mode"))
	assert.Equal(t, "order-1", form.Get("metadata[order_id]"))
	assert.Equal(t, "order-1", form.Get("payment_intent_data[metadata][order_id]"))
	assert.Equal(t, "usd", form.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "5000", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "Air Max - 42", form.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "2", form.Get("line_items[0][quantity]"))
	assert.Equal(t, "1000", form.Get("shipping_options[0][shipping_rate_data][fixed_amount][amount]"))
	assert.Equal(t, "fixed_amount", form.Get("shipping_options[0][shipping_rate_data][type]"))
}

func TestStripeGateway_CreateCheckoutSession_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"No such price"}}`)
	}))
	defer srv.Close()

	gw, err := payment.NewStripeGateway(discardLogger(), stripeCfg, payment.WithBackends(testBackends(srv.URL)))
	require.NoError(t, err)

	_, err = gw.CreateCheckoutSession(context.Background(), entities.PaymentSessionRequest{OrderID: "order-1"})
	assert.Error(t, err)
}
