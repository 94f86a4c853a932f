package entities

import (
	"github.com/shopspring/decimal"
)

type Address struct {
	Name    string
	Company string
	Street1 string
	Street2 string
	City    string
	State   string
	Zip     string
	Country string
	Phone   string
	Email   string
}

type Parcel struct {
	Length float64
	Width  float64
	Height float64
	Weight float64
}

type VerificationError struct {
	Code       string `json:"code,omitempty"`
	Field      string `json:"field,omitempty"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

type VerificationResult struct {
	Success bool                `json:"success"`
	Errors  []VerificationError `json:"errors"`
	Details map[string]any      `json:"details"`
}

type AddressVerification struct {
	IsVerified bool
	ZIP4       VerificationResult
	Delivery   VerificationResult
}

type Rate struct {
	ID       string
	Object   string
	Service  string
	Carrier  string
	Rate     string
	Currency string
}

type ShipmentQuote struct {
	ID    string
	Rates []Rate
}

type LabelRequest struct {
	OrderID    string
	ShipmentID string
	RateID     string
}

type Label struct {
	TrackingCode string
	TrackingURL  string
	LabelURL     string
	Raw          []byte
}

type CheckoutItem struct {
	ProductID int64
	VariantID int64
	Quantity  int
}

type ShippingChoice struct {
	ShipmentID string
	RateID     string
	Name       string
	Price      decimal.Decimal
}

// CheckoutRequest - запрос на оформление заказа.
// Указатели позволяют отличить отсутствующий блок от пустого.
type CheckoutRequest struct {
	UserID   string
	Items    []CheckoutItem
	Shipping *ShippingChoice
	Customer *Contact
}

func (r CheckoutRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrItemsMissing
	}
	if r.Shipping == nil {
		return ErrShippingMissing
	}
	if r.Customer == nil {
		return ErrCustomerMissing
	}
	return nil
}
