package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
)

type StorefrontCatalog interface {
	FeaturedProducts(ctx context.Context) ([]entities.Product, error)
	VisibleRatings(ctx context.Context, slug string) ([]int, error)
}

const featuredCacheKey = "featured-sneaker"

type storefrontService struct {
	logger  *slog.Logger
	catalog StorefrontCatalog
	cache   Cache
}

func NewStorefrontService(logger *slog.Logger, catalog StorefrontCatalog, cache Cache) *storefrontService {
	return &storefrontService{
		logger:  logger.With(slog.String("service", "storefront")),
		catalog: catalog,
		cache:   cache,
	}
}

func (s *storefrontService) FeaturedSneaker(ctx context.Context) (entities.FeaturedSneaker, error) {
	var featured entities.FeaturedSneaker
	if s.fromCache(featuredCacheKey, &featured) {
		return featured, nil
	}

	products, err := s.catalog.FeaturedProducts(ctx)
	if err != nil {
		return entities.FeaturedSneaker{}, fmt.Errorf("failed to get featured products: %w", err)
	}

	featured = entities.FeaturedSneaker{Products: products}
	s.toCache(featuredCacheKey, featured)
	return featured, nil
}

func (s *storefrontService) ReviewSummary(ctx context.Context, slug string) (entities.ReviewSummary, error) {
	key := "reviews:" + slug

	var summary entities.ReviewSummary
	if s.fromCache(key, &summary) {
		return summary, nil
	}

	ratings, err := s.catalog.VisibleRatings(ctx, slug)
	if err != nil {
		return entities.ReviewSummary{}, fmt.Errorf("failed to get ratings: %w", err)
	}

	summary = entities.ReviewSummary{TotalReviews: len(ratings)}
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		summary.AverageRating = float64(sum) / float64(len(ratings))
	}

	s.toCache(key, summary)
	return summary, nil
}

func (s *storefrontService) fromCache(key string, v any) bool {
	data, ok := s.cache.Get(key)
	if !ok {
		return false
	}
	if err := entities.Unmarshal(data, v); err != nil {
		s.logger.Error("failed to unmarshal cached value", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (s *storefrontService) toCache(key string, v any) {
	data, err := entities.Marshal(v)
	if err != nil {
		s.logger.Error("failed to marshal value for cache", slog.String("key", key), slog.Any("error", err))
		return
	}
	s.cache.Set(key, data)
}
