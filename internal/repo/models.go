package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"

	"github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"order_id", "order_secret", "user_id", "payment_status", "shipping_status",
	"contact_name", "contact_email", "contact_phone", "contact_address",
	"contact_country", "contact_state", "contact_city", "contact_zip",
	"shipping_id", "rate_id", "shipping_name", "shipping_price", "subtotal", "total",
	"stripe_id", "stripe_url", "stripe_request",
	"tracking_code", "tracking_url", "label_image", "shipping_label",
	"stripe_response_webhook", "created_at", "updated_at",
}

type Order struct {
	OrderID        string         `db:"order_id"`
	OrderSecret    string         `db:"order_secret"`
	UserID         sql.NullString `db:"user_id"`
	PaymentStatus  string         `db:"payment_status"`
	ShippingStatus string         `db:"shipping_status"`

	ContactName    string         `db:"contact_name"`
	ContactEmail   string         `db:"contact_email"`
	ContactPhone   sql.NullString `db:"contact_phone"`
	ContactAddress string         `db:"contact_address"`
	ContactCountry string         `db:"contact_country"`
	ContactState   sql.NullString `db:"contact_state"`
	ContactCity    string         `db:"contact_city"`
	ContactZip     string         `db:"contact_zip"`

	ShippingID    string          `db:"shipping_id"`
	RateID        string          `db:"rate_id"`
	ShippingName  sql.NullString  `db:"shipping_name"`
	ShippingPrice decimal.Decimal `db:"shipping_price"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	Total         decimal.Decimal `db:"total"`

	StripeID      sql.NullString `db:"stripe_id"`
	StripeURL     sql.NullString `db:"stripe_url"`
	StripeRequest []byte         `db:"stripe_request"`

	TrackingCode  sql.NullString `db:"tracking_code"`
	TrackingURL   sql.NullString `db:"tracking_url"`
	LabelImage    sql.NullString `db:"label_image"`
	ShippingLabel []byte         `db:"shipping_label"`

	StripeWebhook []byte `db:"stripe_response_webhook"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Item struct {
	OrderID     string          `db:"order_id"`
	ProductID   int64           `db:"product_id"`
	Thumbnail   sql.NullString  `db:"thumbnail_url"`
	Quantity    int             `db:"quantity"`
	Price       decimal.Decimal `db:"price"`
	Total       decimal.Decimal `db:"total"`
	Variant     sql.NullString  `db:"variant"`
	ProductName string          `db:"product_name"`
}

type Product struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Slug      string         `db:"slug"`
	Thumbnail sql.NullString `db:"thumbnail_url"`
	Images    pq.StringArray `db:"images"`
	Brand     sql.NullString `db:"brand"`
	Category  sql.NullString `db:"category"`
}

type Variant struct {
	ID        int64           `db:"id"`
	ProductID int64           `db:"product_id"`
	Name      string          `db:"variant_name"`
	Price     decimal.Decimal `db:"variant_price"`
	Length    int             `db:"length"`
	Width     int             `db:"width"`
	Height    int             `db:"height"`
	Weight    int             `db:"weight"`
}

func OrderToEntity(o Order, items []Item) entities.Order {
	return entities.Order{
		OrderID:        o.OrderID,
		OrderSecret:    o.OrderSecret,
		UserID:         nullStringToString(o.UserID),
		PaymentStatus:  entities.PaymentStatus(o.PaymentStatus),
		ShippingStatus: entities.ShippingStatus(o.ShippingStatus),
		Contact: entities.Contact{
			Name:    o.ContactName,
			Email:   o.ContactEmail,
			Phone:   nullStringToString(o.ContactPhone),
			Address: o.ContactAddress,
			Country: o.ContactCountry,
			State:   nullStringToString(o.ContactState),
			City:    o.ContactCity,
			Zip:     o.ContactZip,
		},
		Items:         lo.Map(items, func(it Item, _ int) entities.LineItem { return ItemToEntity(it) }),
		ShippingID:    o.ShippingID,
		RateID:        o.RateID,
		ShippingName:  nullStringToString(o.ShippingName),
		ShippingPrice: o.ShippingPrice,
		Subtotal:      o.Subtotal,
		Total:         o.Total,
		StripeID:      nullStringToString(o.StripeID),
		StripeURL:     nullStringToString(o.StripeURL),
		StripeRequest: o.StripeRequest,
		TrackingCode:  nullStringToString(o.TrackingCode),
		TrackingURL:   nullStringToString(o.TrackingURL),
		LabelImage:    nullStringToString(o.LabelImage),
		ShippingLabel: o.ShippingLabel,
		StripeWebhook: o.StripeWebhook,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func ItemToEntity(it Item) entities.LineItem {
	return entities.LineItem{
		ProductID:   it.ProductID,
		Thumbnail:   nullStringToString(it.Thumbnail),
		Quantity:    it.Quantity,
		Price:       it.Price,
		Total:       it.Total,
		Variant:     nullStringToString(it.Variant),
		ProductName: it.ProductName,
	}
}

func ProductToEntity(p Product, variants []Variant) entities.Product {
	return entities.Product{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		Thumbnail: nullStringToString(p.Thumbnail),
		Images:    []string(p.Images),
		Brand:     nullStringToString(p.Brand),
		Category:  nullStringToString(p.Category),
		Variants: lo.Map(variants, func(v Variant, _ int) entities.Variant {
			return entities.Variant{
				ID:     v.ID,
				Name:   v.Name,
				Price:  v.Price,
				Length: v.Length,
				Width:  v.Width,
				Height: v.Height,
				Weight: v.Weight,
			}
		}),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
