package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/samber/lo"
)

var productColumns = []string{
	"p.id", "p.name", "p.slug", "p.thumbnail_url", "p.images", "p.brand", "p.category",
}

// ProductsByIDs возвращает товары вместе с вариантами одним батчем.
func (r *postgresRepo) ProductsByIDs(ctx context.Context, ids []int64) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select(productColumns...).
		From("products p").
		Where(sq.Eq{"p.id": lo.Uniq(ids)}).
		OrderBy("p.id").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	return r.withVariants(ctx, products)
}

func (r *postgresRepo) FeaturedProducts(ctx context.Context) ([]entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("featured_sneakers f").
		Join("products p ON p.id = f.product_id").
		OrderBy("f.position", "p.id").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select featured products: %w", err)
	}

	return r.withVariants(ctx, products)
}

// VisibleRatings возвращает оценки опубликованных отзывов товара.
func (r *postgresRepo) VisibleRatings(ctx context.Context, slug string) ([]int, error) {
	query, args := r.qb.Select("r.rating").
		From("product_reviews r").
		Join("products p ON p.id = r.product_id").
		Where(sq.Eq{"p.slug": slug, "r.show_review": true}).
		MustSql()

	var ratings []int
	if err := r.selectContext(ctx, &ratings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select ratings: %w", err)
	}
	return ratings, nil
}

func (r *postgresRepo) withVariants(ctx context.Context, products []Product) ([]entities.Product, error) {
	if len(products) == 0 {
		return []entities.Product{}, nil
	}

	ids := lo.Map(products, func(p Product, _ int) int64 { return p.ID })

	query, args := r.qb.Select(
		"id", "product_id", "variant_name", "variant_price",
		"length", "width", "height", "weight",
	).
		From("product_variants").
		Where(sq.Eq{"product_id": ids}).
		OrderBy("product_id", "id").
		MustSql()

	var variants []Variant
	if err := r.selectContext(ctx, &variants, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select variants: %w", err)
	}

	byProduct := lo.GroupBy(variants, func(v Variant) int64 { return v.ProductID })

	return lo.Map(products, func(p Product, _ int) entities.Product {
		return ProductToEntity(p, byProduct[p.ID])
	}), nil
}
