package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"

	"golang.org/x/sync/errgroup"
)

type OrderReader interface {
	GetOrderWithSecret(ctx context.Context, orderID, secret string) (entities.Order, error)
	GetUserOrder(ctx context.Context, orderID, userID string) (entities.Order, error)
	ListUserOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	CountUserOrders(ctx context.Context, f entities.OrderFilter) (int, error)
}

type queryService struct {
	logger *slog.Logger
	repo   OrderReader
}

func NewQueryService(logger *slog.Logger, repo OrderReader) *queryService {
	return &queryService{
		logger: logger.With(slog.String("service", "query")),
		repo:   repo,
	}
}

func (s *queryService) GetOrderWithSecret(ctx context.Context, orderID, secret string) (entities.Order, error) {
	if orderID == "" || secret == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return s.repo.GetOrderWithSecret(ctx, orderID, secret)
}

// GetMyOrder ищет заказ только среди заказов пользователя.
// Чужой заказ выглядит как несуществующий.
func (s *queryService) GetMyOrder(ctx context.Context, orderID, userID string) (entities.Order, error) {
	if orderID == "" || userID == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return s.repo.GetUserOrder(ctx, orderID, userID)
}

func (s *queryService) ListMyOrders(ctx context.Context, f entities.OrderFilter) (entities.OrderPage, error) {
	f.Normalize()

	var (
		orders []entities.Order
		total  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.repo.ListUserOrders(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountUserOrders(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.OrderPage{}, err
	}

	return entities.OrderPage{
		Orders:     orders,
		Pagination: entities.NewPagination(f, total),
	}, nil
}
