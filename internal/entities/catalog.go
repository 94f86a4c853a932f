package entities

import (
	"github.com/shopspring/decimal"
)

type Variant struct {
	ID     int64
	Name   string
	Price  decimal.Decimal
	Length int
	Width  int
	Height int
	Weight int
}

type Product struct {
	ID        int64
	Name      string
	Slug      string
	Thumbnail string
	Images    []string
	Brand     string
	Category  string
	Variants  []Variant
}

func (p Product) Variant(id int64) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

type PriceQuery struct {
	ProductID int64
	VariantID int64
}

// PricedItem - позиция корзины с ценой из каталога.
// Product == nil или Variant == nil означает, что позицию не удалось найти.
type PricedItem struct {
	Query   PriceQuery
	Product *Product
	Variant *Variant
}

func (i PricedItem) Resolved() bool {
	return i.Product != nil && i.Variant != nil
}

type ReviewSummary struct {
	TotalReviews  int
	AverageRating float64
}

type FeaturedSneaker struct {
	Products []Product
}
