package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stripe/stripe-go/v76/webhook"
)

type Item struct {
	ID        int64 `json:"id"`
	VariantID int64 `json:"variant_id"`
	Qty       int   `json:"qty"`
}

type Shipping struct {
	ID     string  `json:"id"`
	IDRate string  `json:"id_rate"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

type Customer struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	StreetAddress string `json:"street_address"`
	Country       string `json:"country"`
	State         string `json:"state"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code"`
}

type Order struct {
	Items    []Item   `json:"items"`
	Shipping Shipping `json:"shipping"`
	Customer Customer `json:"customer"`
}

// Тарифы заглушки перевозчика, этикетка покупается без EasyPost.
func generateRandomOrder() Order {
	addr := gofakeit.Address()
	return Order{
		Items: []Item{
			{ID: 1, VariantID: 1, Qty: gofakeit.Number(1, 2)},
		},
		Shipping: Shipping{ID: "mock_shipment_id", IDRate: "rate_1", Name: "USPS", Price: 10},
		Customer: Customer{
			Name:          gofakeit.Name(),
			Email:         gofakeit.Email(),
			PhoneNumber:   gofakeit.Phone(),
			StreetAddress: addr.Street,
			Country:       "US",
			State:         addr.State,
			City:          addr.City,
			ZipCode:       addr.Zip,
		},
	}
}

func postJSON(ctx context.Context, target string, body []byte, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %d %s", target, res.StatusCode, data)
	}
	return data, nil
}

func createOrder(ctx context.Context, api string) (string, error) {
	body, err := json.Marshal(map[string]Order{"data": generateRandomOrder()})
	if err != nil {
		return "", err
	}
	data, err := postJSON(ctx, api+"/orders", body, nil)
	if err != nil {
		return "", err
	}

	var res struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return "", err
	}

	// Без Stripe приходит ссылка вида /transaction/{id}?secret=...
	u, err := url.Parse(res.URL)
	if err != nil {
		return "", err
	}
	return path.Base(u.Path), nil
}

func sendPaymentEvent(ctx context.Context, api, secret, orderID string) error {
	payload, err := json.Marshal(map[string]any{
		"id":     "evt_" + gofakeit.LetterN(16),
		"object": "event",
		"type":   "payment_intent.succeeded",
		"data": map[string]any{
			"object": map[string]any{
				"id":       "pi_" + gofakeit.LetterN(16),
				"object":   "payment_intent",
				"metadata": map[string]string{"order_id": orderID},
			},
		},
	})
	if err != nil {
		return err
	}

	header := http.Header{}
	if secret != "" {
		signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
			Payload:   payload,
			Secret:    secret,
			Timestamp: time.Now(),
		})
		header.Set("Stripe-Signature", signed.Header)
	}

	_, err = postJSON(ctx, api+"/orders/checkout/webhook-stripe", payload, header)
	return err
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func main() {
	api := env("API_URL", "http://localhost:1337")
	secret := env("STRIPE_WEBHOOK_SECRET", "")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			orderID, err := createOrder(ctx, api)
			if err != nil {
				log.Println("failed to create order:", err)
				continue
			}
			if err := sendPaymentEvent(ctx, api, secret, orderID); err != nil {
				log.Println("failed to send payment event:", err)
				continue
			}
			log.Println("order paid", orderID)
		case <-ctx.Done():
			return
		}
	}
}
