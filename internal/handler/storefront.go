package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type Storefront interface {
	FeaturedSneaker(ctx context.Context) (entities.FeaturedSneaker, error)
	ReviewSummary(ctx context.Context, slug string) (entities.ReviewSummary, error)
}

type StorefrontHandler struct {
	logger *slog.Logger
	svc    Storefront
}

func NewStorefrontHandler(logger *slog.Logger, svc Storefront) *StorefrontHandler {
	return &StorefrontHandler{
		logger: logger.With(slog.String("handler", "storefront")),
		svc:    svc,
	}
}

func (h *StorefrontHandler) Init(r chi.Router) {
	r.Get("/featured-sneaker", h.FeaturedSneaker)
	r.Get("/product-reviews/{slug}/count", h.ReviewCount)
}

// FeaturedSneaker возвращает товары главной страницы.
// @Summary      Товары главной страницы
// @Description  При ошибке возвращается пустой список
// @Tags         storefront
// @Produce      json
// @Success      200  {object}  FeaturedSneakerResponse
// @Router       /featured-sneaker [get]
func (h *StorefrontHandler) FeaturedSneaker(w http.ResponseWriter, r *http.Request) {
	featured, err := h.svc.FeaturedSneaker(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get featured sneaker", slog.Any("error", err))
		featured = entities.FeaturedSneaker{}
	}

	res := FeaturedSneakerToJSON(featured)
	if res.Data.Products == nil {
		res.Data.Products = []Product{}
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// ReviewCount возвращает число видимых отзывов и средний рейтинг.
// @Summary      Сводка отзывов товара
// @Description  При ошибке возвращаются нули
// @Tags         storefront
// @Produce      json
// @Param        slug  path      string  true  "Slug товара"
// @Success      200  {object}  ReviewSummaryResponse
// @Router       /product-reviews/{slug}/count [get]
func (h *StorefrontHandler) ReviewCount(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	summary, err := h.svc.ReviewSummary(r.Context(), slug)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get review summary", slog.Any("error", err), slog.String("slug", slug))
		summary = entities.ReviewSummary{}
	}

	utils.WriteJSON(w, ReviewSummaryResponse{
		TotalReviews:  summary.TotalReviews,
		AverageRating: summary.AverageRating,
	}, http.StatusOK)
}
