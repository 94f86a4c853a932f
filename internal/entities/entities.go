package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order not found")

	ErrItemsMissing    = errors.New("items data is missing")
	ErrShippingMissing = errors.New("shipping data is missing")
	ErrCustomerMissing = errors.New("customer data is missing")

	ErrQuoteInput = errors.New("address and parcel data are required")

	ErrStatusNotHandled = errors.New("status not handled")
	ErrEventOrderID     = errors.New("event has no order_id in metadata")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrLabelInProgress  = errors.New("label purchase is in progress")

	ErrNotConfigured = errors.New("provider is not configured")
)

// ItemUnavailableError - позицию корзины нет в каталоге.
type ItemUnavailableError struct {
	Index     int
	ProductID int64
	VariantID int64
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("item %d is not available", e.Index+1)
}

// Marshal кодирует значение для кэша.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte, v any) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(v)
}

func init() {
	gob.Register(FeaturedSneaker{})
	gob.Register(ReviewSummary{})
	gob.Register(Product{})
	gob.Register(Variant{})
}
