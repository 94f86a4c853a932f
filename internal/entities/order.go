package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShippingStatus string

const ShippingWaiting ShippingStatus = "WAITING"

type Contact struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Country string
	State   string
	City    string
	Zip     string
}

type LineItem struct {
	ProductID   int64
	Thumbnail   string
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
	Variant     string
	ProductName string
}

type Order struct {
	OrderID     string
	OrderSecret string
	// пустая строка для анонимных заказов
	UserID string

	PaymentStatus  PaymentStatus
	ShippingStatus ShippingStatus

	Contact Contact
	Items   []LineItem

	ShippingID    string
	RateID        string
	ShippingName  string
	ShippingPrice decimal.Decimal
	Subtotal      decimal.Decimal
	Total         decimal.Decimal

	StripeID      string
	StripeURL     string
	StripeRequest []byte

	TrackingCode  string
	TrackingURL   string
	LabelImage    string
	ShippingLabel []byte

	StripeWebhook []byte

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLabel сообщает, куплена ли уже этикетка для заказа.
func (o Order) HasLabel() bool {
	return o.TrackingCode != ""
}

type OrderFilter struct {
	UserID   string
	Status   PaymentStatus
	Page     int
	PageSize int
}

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

func (f *OrderFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

func (f OrderFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type Pagination struct {
	Page      int
	PageSize  int
	PageCount int
	Total     int
}

func NewPagination(f OrderFilter, total int) Pagination {
	pageCount := 0
	if f.PageSize > 0 {
		pageCount = (total + f.PageSize - 1) / f.PageSize
	}
	return Pagination{
		Page:      f.Page,
		PageSize:  f.PageSize,
		PageCount: pageCount,
		Total:     total,
	}
}

type OrderPage struct {
	Orders     []Order
	Pagination Pagination
}

// LabelUpdate описывает результат обработки платёжного события.
type LabelUpdate struct {
	OrderID       string
	PaymentStatus PaymentStatus
	Event         []byte
	Label         *Label
}
