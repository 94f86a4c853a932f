package payment

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const SignatureHeader = "Stripe-Signature"

type WebhookVerifier struct {
	secret string
}

// NewWebhookVerifier создаёт проверку подписи вебхуков.
// С пустым секретом подпись не проверяется, это допустимо только вне production.
func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

func (v *WebhookVerifier) Enabled() bool {
	return v.secret != ""
}

// Verify проверяет подпись и разбирает событие.
func (v *WebhookVerifier) Verify(payload []byte, signature string) (entities.PaymentEvent, error) {
	if v.Enabled() {
		if err := webhook.ValidatePayload(payload, signature, v.secret); err != nil {
			return entities.PaymentEvent{}, fmt.Errorf("%w: %w", entities.ErrInvalidSignature, err)
		}
	}
	return ParseEvent(payload)
}

var ErrMalformedEvent = errors.New("malformed event payload")

func ParseEvent(payload []byte) (entities.PaymentEvent, error) {
	var ev stripe.Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return entities.PaymentEvent{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	if ev.Type == "" {
		return entities.PaymentEvent{}, ErrMalformedEvent
	}

	return entities.PaymentEvent{
		ID:      ev.ID,
		Type:    string(ev.Type),
		OrderID: eventOrderID(ev),
		Payload: payload,
	}, nil
}

func eventOrderID(ev stripe.Event) string {
	if ev.Data == nil || ev.Data.Object == nil {
		return ""
	}
	md, ok := ev.Data.Object["metadata"].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := md[metadataOrderID].(string)
	return id
}
