package entities

import (
	"slices"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentUnpaid    PaymentStatus = "UNPAID"
	PaymentExpired   PaymentStatus = "EXPIRED"
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentOnProcess PaymentStatus = "ON_PROCESS"
	PaymentCanceled  PaymentStatus = "CANCELED"
	PaymentFailed    PaymentStatus = "FAILED"
)

var eventStatuses = map[string]PaymentStatus{
	"checkout.session.expired":      PaymentExpired,
	"charged.succeeded":             PaymentSucceeded,
	"payment_intent.succeeded":      PaymentSucceeded,
	"payment_intent.payment_failed": PaymentFailed,
	"payment_intent.processing":     PaymentOnProcess,
	"payment_intent.canceled":       PaymentCanceled,
}

var handledStatuses = []PaymentStatus{
	PaymentExpired,
	PaymentSucceeded,
	PaymentOnProcess,
	PaymentCanceled,
	PaymentFailed,
}

// PaymentStatusFromEvent нормализует тип события провайдера.
// Неизвестные типы возвращаются как есть.
func PaymentStatusFromEvent(eventType string) PaymentStatus {
	if status, ok := eventStatuses[eventType]; ok {
		return status
	}
	return PaymentStatus(eventType)
}

func (s PaymentStatus) Handled() bool {
	return slices.Contains(handledStatuses, s)
}

func (s PaymentStatus) String() string {
	return string(s)
}

// PaymentEvent - проверенное событие вебхука.
type PaymentEvent struct {
	ID      string
	Type    string
	OrderID string
	Payload []byte
}

type PaymentLineItem struct {
	Name       string
	Image      string
	UnitAmount int64
	Quantity   int64
}

type PaymentSessionRequest struct {
	OrderID      string
	SuccessURL   string
	CancelURL    string
	Currency     string
	Items        []PaymentLineItem
	ShippingName string
	ShippingCost int64
}

type PaymentSession struct {
	ID  string
	URL string
	Raw []byte
}

// MinorUnits переводит сумму в центы.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
