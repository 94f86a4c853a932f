package handler

import (
	"reflect"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// decimal.Decimal проверяется как число
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// CartItem позиция корзины для пересчёта цены
type CartItem struct {
	ProductID int64 `json:"productId" validate:"gt=0"`
	VariantID int64 `json:"variantId" validate:"gte=0"`
}

// CountPriceRequest запрос пересчёта корзины
type CountPriceRequest struct {
	Items []CartItem `json:"items" validate:"required,min=1,dive"`
}

// PricedItem позиция с ценой из каталога. Ненайденные поля отсутствуют.
type PricedItem struct {
	ID          *int64   `json:"id,omitempty"`
	Image       string   `json:"image,omitempty"`
	Name        string   `json:"name,omitempty"`
	VariantID   *int64   `json:"variant_id,omitempty"`
	VariantName string   `json:"variant_name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Width       *int     `json:"width,omitempty"`
	Length      *int     `json:"length,omitempty"`
	Height      *int     `json:"height,omitempty"`
	Weight      *int     `json:"weight,omitempty"`
}

func PricedItemToJSON(i entities.PricedItem) PricedItem {
	var out PricedItem
	if p := i.Product; p != nil {
		out.ID = lo.ToPtr(p.ID)
		out.Image = p.Thumbnail
		out.Name = p.Name
	}
	if v := i.Variant; v != nil {
		out.VariantID = lo.ToPtr(v.ID)
		out.VariantName = v.Name
		out.Price = lo.ToPtr(v.Price.InexactFloat64())
		out.Width = lo.ToPtr(v.Width)
		out.Length = lo.ToPtr(v.Length)
		out.Height = lo.ToPtr(v.Height)
		out.Weight = lo.ToPtr(v.Weight)
	}
	return out
}

// OrderItemRequest позиция заказа. Цена, название и картинка клиента не используются.
type OrderItemRequest struct {
	ID          int64   `json:"id" validate:"gt=0"`
	VariantID   int64   `json:"variant_id" validate:"gt=0"`
	Qty         int     `json:"qty" validate:"gte=1"`
	Price       float64 `json:"price,omitempty"`
	DisplayName string  `json:"display_name,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// ShippingRequest выбранный тариф доставки
type ShippingRequest struct {
	ID     string          `json:"id" validate:"required"`
	IDRate string          `json:"id_rate" validate:"required"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price" swaggertype:"number" validate:"gte=0"`
}

// CustomerRequest контакты покупателя
type CustomerRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	PhoneNumber   string `json:"phone_number"`
	StreetAddress string `json:"street_address" validate:"required"`
	Country       string `json:"country" validate:"required"`
	State         string `json:"state"`
	City          string `json:"city" validate:"required"`
	ZipCode       string `json:"zip_code" validate:"required"`
}

// CreateOrderRequest запрос на оформление заказа
type CreateOrderRequest struct {
	Items    []OrderItemRequest `json:"items" validate:"omitempty,dive"`
	Shipping *ShippingRequest   `json:"shipping" validate:"omitempty"`
	Customer *CustomerRequest   `json:"customer" validate:"omitempty"`
}

func (r CreateOrderRequest) ToEntity(userID string) entities.CheckoutRequest {
	req := entities.CheckoutRequest{
		UserID: userID,
		Items: lo.Map(r.Items, func(it OrderItemRequest, _ int) entities.CheckoutItem {
			return entities.CheckoutItem{ProductID: it.ID, VariantID: it.VariantID, Quantity: it.Qty}
		}),
	}
	if s := r.Shipping; s != nil {
		req.Shipping = &entities.ShippingChoice{
			ShipmentID: s.ID,
			RateID:     s.IDRate,
			Name:       s.Name,
			Price:      s.Price,
		}
	}
	if c := r.Customer; c != nil {
		req.Customer = &entities.Contact{
			Name:    c.Name,
			Email:   c.Email,
			Phone:   c.PhoneNumber,
			Address: c.StreetAddress,
			Country: c.Country,
			State:   c.State,
			City:    c.City,
			Zip:     c.ZipCode,
		}
	}
	return req
}

// CreateOrderResponse ссылка на оплату или страницу заказа
type CreateOrderResponse struct {
	URL string `json:"url"`
}

// AddressRequest адрес доставки
type AddressRequest struct {
	Name          string `json:"name,omitempty"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	Country       string `json:"country"`
	PhoneNumber   string `json:"phone_number"`
}

func (a AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		Name:    a.Name,
		Street1: a.StreetAddress,
		City:    a.City,
		State:   a.State,
		Zip:     a.ZipCode,
		Country: a.Country,
		Phone:   a.PhoneNumber,
	}
}

// VerificationDetails результаты проверок перевозчика
type VerificationDetails struct {
	ZIP4     entities.VerificationResult `json:"zip4"`
	Delivery entities.VerificationResult `json:"delivery"`
}

// AddressVerificationResponse результат проверки адреса
type AddressVerificationResponse struct {
	IsVerified bool                `json:"isVerified"`
	Data       VerificationDetails `json:"data"`
}

func AddressVerificationToJSON(v entities.AddressVerification) AddressVerificationResponse {
	return AddressVerificationResponse{
		IsVerified: v.IsVerified,
		Data: VerificationDetails{
			ZIP4:     v.ZIP4,
			Delivery: v.Delivery,
		},
	}
}

// ParcelRequest размеры посылки
type ParcelRequest struct {
	Length float64 `json:"length" validate:"gte=0"`
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

// ShippingRateRequest запрос тарифов доставки
type ShippingRateRequest struct {
	Address *AddressRequest `json:"address" validate:"omitempty"`
	Parcel  *ParcelRequest  `json:"parcel" validate:"omitempty"`
}

func (r ShippingRateRequest) ToEntity() (*entities.Address, *entities.Parcel) {
	var (
		addr   *entities.Address
		parcel *entities.Parcel
	)
	if r.Address != nil {
		addr = lo.ToPtr(r.Address.ToEntity())
	}
	if p := r.Parcel; p != nil {
		parcel = &entities.Parcel{Length: p.Length, Width: p.Width, Height: p.Height, Weight: p.Weight}
	}
	return addr, parcel
}

// Rate тариф перевозчика
type Rate struct {
	ID       string `json:"id"`
	Object   string `json:"object"`
	Service  string `json:"service"`
	Carrier  string `json:"carrier"`
	Rate     string `json:"rate"`
	Currency string `json:"currency"`
}

// ShipmentResponse отправление с доступными тарифами
type ShipmentResponse struct {
	ID    string `json:"id"`
	Rates []Rate `json:"rates"`
}

func ShipmentQuoteToJSON(q entities.ShipmentQuote) ShipmentResponse {
	return ShipmentResponse{
		ID: q.ID,
		Rates: lo.Map(q.Rates, func(r entities.Rate, _ int) Rate {
			return Rate{
				ID:       r.ID,
				Object:   r.Object,
				Service:  r.Service,
				Carrier:  r.Carrier,
				Rate:     r.Rate,
				Currency: r.Currency,
			}
		}),
	}
}

// CustomerContact контакты покупателя в заказе
type CustomerContact struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Country     string `json:"country"`
	State       string `json:"state"`
	City        string `json:"city"`
	ZipCode     string `json:"zip_code"`
}

// OrderProduct позиция заказа
type OrderProduct struct {
	ProductID   int64   `json:"product_id"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	ProductName string  `json:"product_name"`
	Variant     string  `json:"variant"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// Order заказ без секрета и служебных данных провайдеров
type Order struct {
	OrderID        string          `json:"order_id"`
	TrackingCode   string          `json:"tracking_code"`
	TrackingURL    string          `json:"tracking_url"`
	StripeURL      string          `json:"stripe_url"`
	ShippingName   string          `json:"shipping_name"`
	Subtotal       float64         `json:"subtotal"`
	ShippingPrice  float64         `json:"shipping_price"`
	Total          float64         `json:"total"`
	PaymentStatus  string          `json:"payment_status"`
	ShippingStatus string          `json:"shipping_status"`
	Customer       CustomerContact `json:"customer_contact"`
	Products       []OrderProduct  `json:"products"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		OrderID:        o.OrderID,
		TrackingCode:   o.TrackingCode,
		TrackingURL:    o.TrackingURL,
		StripeURL:      o.StripeURL,
		ShippingName:   o.ShippingName,
		Subtotal:       o.Subtotal.InexactFloat64(),
		ShippingPrice:  o.ShippingPrice.InexactFloat64(),
		Total:          o.Total.InexactFloat64(),
		PaymentStatus:  o.PaymentStatus.String(),
		ShippingStatus: string(o.ShippingStatus),
		Customer: CustomerContact{
			Name:        o.Contact.Name,
			Email:       o.Contact.Email,
			PhoneNumber: o.Contact.Phone,
			Address:     o.Contact.Address,
			Country:     o.Contact.Country,
			State:       o.Contact.State,
			City:        o.Contact.City,
			ZipCode:     o.Contact.Zip,
		},
		Products: lo.Map(o.Items, func(it entities.LineItem, _ int) OrderProduct {
			return OrderProduct{
				ProductID:   it.ProductID,
				Thumbnail:   it.Thumbnail,
				ProductName: it.ProductName,
				Variant:     it.Variant,
				Quantity:    it.Quantity,
				Price:       it.Price.InexactFloat64(),
				Total:       it.Total.InexactFloat64(),
			}
		}),
		CreatedAt: o.CreatedAt,
	}
}

// ListOrdersQuery параметры списка заказов
type ListOrdersQuery struct {
	Status   string `validate:"omitempty,oneof=UNPAID EXPIRED SUCCEEDED ON_PROCESS CANCELED FAILED"`
	Page     int    `validate:"gte=0"`
	PageSize int    `validate:"gte=0"`
}

// Pagination параметры страницы
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// PageMeta метаданные списка
type PageMeta struct {
	Pagination Pagination `json:"pagination"`
}

// OrderListResponse страница заказов пользователя
type OrderListResponse struct {
	Results []Order  `json:"results"`
	Meta    PageMeta `json:"meta"`
}

func OrderPageToJSON(p entities.OrderPage) OrderListResponse {
	return OrderListResponse{
		Results: lo.Map(p.Orders, func(o entities.Order, _ int) Order { return OrderEntityToJSON(o) }),
		Meta: PageMeta{Pagination: Pagination{
			Page:      p.Pagination.Page,
			PageSize:  p.Pagination.PageSize,
			PageCount: p.Pagination.PageCount,
			Total:     p.Pagination.Total,
		}},
	}
}

// Variant вариант товара
type Variant struct {
	ID     int64   `json:"id"`
	Name   string  `json:"variant_name"`
	Price  float64 `json:"variant_price"`
	Length int     `json:"length"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Weight int     `json:"weight"`
}

// Product товар витрины
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Images    []string  `json:"images"`
	Brand     string    `json:"brand,omitempty"`
	Category  string    `json:"category,omitempty"`
	Variants  []Variant `json:"product_variant"`
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:        p.ID,
		Name:      p.Name,
		Slug:      p.Slug,
		Thumbnail: p.Thumbnail,
		Images:    lo.Ternary(p.Images == nil, []string{}, p.Images),
		Brand:     p.Brand,
		Category:  p.Category,
		Variants: lo.Map(p.Variants, func(v entities.Variant, _ int) Variant {
			return Variant{
				ID:     v.ID,
				Name:   v.Name,
				Price:  v.Price.InexactFloat64(),
				Length: v.Length,
				Width:  v.Width,
				Height: v.Height,
				Weight: v.Weight,
			}
		}),
	}
}

// FeaturedProducts товары главной страницы
type FeaturedProducts struct {
	Products []Product `json:"products"`
}

// FeaturedSneakerResponse ответ в формате CMS
type FeaturedSneakerResponse struct {
	Data FeaturedProducts `json:"data"`
}

func FeaturedSneakerToJSON(f entities.FeaturedSneaker) FeaturedSneakerResponse {
	return FeaturedSneakerResponse{Data: FeaturedProducts{
		Products: lo.Map(f.Products, func(p entities.Product, _ int) Product { return ProductEntityToJSON(p) }),
	}}
}

// ReviewSummaryResponse сводка отзывов товара
type ReviewSummaryResponse struct {
	TotalReviews  int     `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
}

// SignInRequest вход по email и паролю
type SignInRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// AuthUser пользователь провайдера
type AuthUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

// AuthResponse токен и пользователь
type AuthResponse struct {
	JWT  string   `json:"jwt"`
	User AuthUser `json:"user"`
}
