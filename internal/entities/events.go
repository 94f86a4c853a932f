package entities

import "time"

type OrderEventType string

const (
	EventOrderCreated         OrderEventType = "order.created"
	EventPaymentStatusChanged OrderEventType = "order.payment_status_changed"
	EventLabelPurchased       OrderEventType = "order.label_purchased"
)

// OrderEvent публикуется в шину после изменения заказа.
type OrderEvent struct {
	Type          OrderEventType `json:"type"`
	OrderID       string         `json:"order_id"`
	UserID        string         `json:"user_id,omitempty"`
	PaymentStatus PaymentStatus  `json:"payment_status"`
	TrackingCode  string         `json:"tracking_code,omitempty"`
	Total         string         `json:"total,omitempty"`
	OccurredAt    time.Time      `json:"occurred_at"`
}
