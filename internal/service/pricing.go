package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"

	"github.com/samber/lo"
)

type ProductCatalog interface {
	ProductsByIDs(ctx context.Context, ids []int64) ([]entities.Product, error)
}

type pricingService struct {
	logger  *slog.Logger
	catalog ProductCatalog
}

func NewPricingService(logger *slog.Logger, catalog ProductCatalog) *pricingService {
	return &pricingService{
		logger:  logger.With(slog.String("service", "pricing")),
		catalog: catalog,
	}
}

// CountPrice пересчитывает позиции корзины по данным каталога.
// Ненайденные товары и варианты остаются пустыми, ошибкой это не считается.
func (s *pricingService) CountPrice(ctx context.Context, queries []entities.PriceQuery) (_ []entities.PricedItem, err error) {
	ctx, span := startSpan(ctx, "pricingService.CountPrice")
	defer func() { finishSpan(span, err) }()

	if len(queries) == 0 {
		return []entities.PricedItem{}, nil
	}

	ids := lo.Uniq(lo.Map(queries, func(q entities.PriceQuery, _ int) int64 { return q.ProductID }))

	products, err := s.catalog.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	byID := lo.KeyBy(products, func(p entities.Product) int64 { return p.ID })

	items := make([]entities.PricedItem, 0, len(queries))
	for _, q := range queries {
		item := entities.PricedItem{Query: q}

		if product, ok := byID[q.ProductID]; ok {
			item.Product = &product
			if variant, ok := product.Variant(q.VariantID); ok {
				item.Variant = &variant
			}
		}

		if !item.Resolved() {
			s.logger.DebugContext(ctx, "cart item not resolved",
				slog.Int64("product_id", q.ProductID), slog.Int64("variant_id", q.VariantID))
		}
		items = append(items, item)
	}

	return items, nil
}
