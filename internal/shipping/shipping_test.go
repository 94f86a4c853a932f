package shipping_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"
	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/internal/shipping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// redirectTransport отправляет все запросы клиента EasyPost на тестовый сервер.
type redirectTransport struct {
	target *url.URL
}

func (rt redirectTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = rt.target.Scheme
	r.URL.Host = rt.target.Host
	r.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(r)
}

func newEasyPost(t *testing.T, handler http.HandlerFunc) *shipping.EasyPost {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	target, err := url.Parse(srv.URL)
	require.NoError(t, err)

	ep, err := shipping.NewEasyPost(
		discardLogger(),
		config.EasyPost{APIKey: "EZTK_test", Timeout: 5 * time.Second},
		&http.Client{Transport: redirectTransport{target: target}, Timeout: 5 * time.Second},
	)
	require.NoError(t, err)
	return ep
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestNewEasyPost_NotConfigured(t *testing.T) {
	_, err := shipping.NewEasyPost(discardLogger(), config.EasyPost{Timeout: time.Second}, nil)
	assert.ErrorIs(t, err, entities.ErrNotConfigured)
}

func TestEasyPost_VerifyAddress(t *testing.T) {
	ep := newEasyPost(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/addresses"), r.URL.Path)
		writeJSON(w, http.StatusCreated, `{
			"id": "adr_1",
			"object": "Address",
			"verifications": {
				"zip4": {"success": true, "errors": []},
				"delivery": {
					"success": false,
					"errors": [{"code": "E.ADDRESS.NOT_FOUND", "field": "address", "message": "Address not found"}],
					"details": {"latitude": 37.79, "longitude": -122.4, "time_zone": "America/Los_Angeles"}
				}
			}
		}`)
	})

	res, err := ep.VerifyAddress(context.Background(), entities.Address{Street1: "1 Nowhere", City: "SF", Country: "US"})
	require.NoError(t, err)

	assert.False(t, res.IsVerified)
	assert.True(t, res.ZIP4.Success)
	assert.False(t, res.Delivery.Success)
	require.Len(t, res.Delivery.Errors, 1)
	assert.Equal(t, "E.ADDRESS.NOT_FOUND", res.Delivery.Errors[0].Code)
	assert.Equal(t, "America/Los_Angeles", res.Delivery.Details["time_zone"])
}

func TestEasyPost_CreateShipment(t *testing.T) {
	var body map[string]any
	ep := newEasyPost(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/shipments"), r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusCreated, `{
			"id": "shp_1",
			"object": "Shipment",
			"rates": [
				{"id": "rate_a", "object": "Rate", "service": "Priority", "carrier": "USPS", "rate": "7.90", "currency": "USD"},
				{"id": "rate_b", "object": "Rate", "service": "Ground", "carrier": "UPS", "rate": "12.40", "currency": "USD"}
			]
		}`)
	})

	quote, err := ep.CreateShipment(context.Background(),
		entities.Address{Name: "John", Street1: "1 Main St", City: "Austin", State: "TX", Zip: "78701", Country: "US"},
		entities.Parcel{Length: 10, Width: 5, Height: 5, Weight: 2},
	)
	require.NoError(t, err)

	assert.Equal(t, "shp_1", quote.ID)
	assert.Equal(t, []entities.Rate{
		{ID: "rate_a", Object: "Rate", Service: "Priority", Carrier: "USPS", Rate: "7.90", Currency: "USD"},
		{ID: "rate_b", Object: "Rate", Service: "Ground", Carrier: "UPS", Rate: "12.40", Currency: "USD"},
	}, quote.Rates)

	shipment, ok := body["shipment"].(map[string]any)
	require.True(t, ok, "request body: %v", body)
	from, ok := shipment["from_address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "417 Montgomery Street", from["street1"])
}

func TestEasyPost_BuyLabel(t *testing.T) {
	ep := newEasyPost(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/shipments/shp_1/buy"), r.URL.Path)
		writeJSON(w, http.StatusOK, `{
			"id": "shp_1",
			"object": "Shipment",
			"tracking_code": "9400100000000000000000",
			"tracker": {"id": "trk_1", "public_url": "https://track.easypost.com/trk_1"},
			"postage_label": {"id": "pl_1", "label_url": "https://easypost-files.test/label.png"}
		}`)
	})

	label, err := ep.BuyLabel(context.Background(), entities.LabelRequest{OrderID: "order-1", ShipmentID: "shp_1", RateID: "rate_a"})
	require.NoError(t, err)

	assert.Equal(t, "9400100000000000000000", label.TrackingCode)
	assert.Equal(t, "https://track.easypost.com/trk_1", label.TrackingURL)
	assert.Equal(t, "https://easypost-files.test/label.png", label.LabelURL)
	assert.NotEmpty(t, label.Raw)
}

func TestEasyPost_BuyLabel_Error(t *testing.T) {
	ep := newEasyPost(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, `{"error": {"code": "SHIPMENT.INVALID_PARAMS", "message": "Invalid rate"}}`)
	})

	_, err := ep.BuyLabel(context.Background(), entities.LabelRequest{ShipmentID: "shp_1", RateID: "rate_x"})
	assert.Error(t, err)
}

func TestMock(t *testing.T) {
	m := shipping.NewMock()
	ctx := context.Background()

	verification, err := m.VerifyAddress(ctx, entities.Address{})
	require.NoError(t, err)
	assert.True(t, verification.IsVerified)
	assert.Equal(t, "UTC", verification.Delivery.Details["time_zone"])

	quote, err := m.CreateShipment(ctx, entities.Address{}, entities.Parcel{})
	require.NoError(t, err)
	assert.Equal(t, shipping.MockShipmentID, quote.ID)
	require.Len(t, quote.Rates, 1)
	assert.Equal(t, "10.00", quote.Rates[0].Rate)

	first, err := m.BuyLabel(ctx, entities.LabelRequest{OrderID: "0199-ab", ShipmentID: quote.ID, RateID: "rate_1"})
	require.NoError(t, err)
	second, err := m.BuyLabel(ctx, entities.LabelRequest{OrderID: "0199-ab", ShipmentID: quote.ID, RateID: "rate_1"})
	require.NoError(t, err)
	assert.Equal(t, "MOCK0199AB", first.TrackingCode)
	assert.Equal(t, first, second)
}

type stubCarrier struct {
	calls int
}

func (s *stubCarrier) BuyLabel(context.Context, entities.LabelRequest) (entities.Label, error) {
	s.calls++
	return entities.Label{TrackingCode: "REAL"}, nil
}

func TestLabelRouter(t *testing.T) {
	carrier := &stubCarrier{}
	router := shipping.NewLabelRouter(carrier, shipping.NewMock())

	label, err := router.BuyLabel(context.Background(), entities.LabelRequest{OrderID: "o1", ShipmentID: shipping.MockShipmentID})
	require.NoError(t, err)
	assert.Equal(t, "MOCKO1", label.TrackingCode)
	assert.Zero(t, carrier.calls)

	label, err = router.BuyLabel(context.Background(), entities.LabelRequest{OrderID: "o1", ShipmentID: "shp_1"})
	require.NoError(t, err)
	assert.Equal(t, "REAL", label.TrackingCode)
	assert.Equal(t, 1, carrier.calls)
}
