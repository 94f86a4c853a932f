package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/internal/service"
	mocks "github.com/SergeyBogomolovv/sneaker-store/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueryService_GetOrderWithSecret(t *testing.T) {
	order := entities.Order{OrderID: "order-1"}

	testCases := []struct {
		name         string
		orderID      string
		secret       string
		mockBehavior func(repo *mocks.MockOrderReader)
		want         entities.Order
		wantErr      error
	}{
		{
			name:    "found",
			orderID: "order-1",
			secret:  "12345",
			mockBehavior: func(repo *mocks.MockOrderReader) {
				repo.EXPECT().GetOrderWithSecret(mock.Anything, "order-1", "12345").Return(order, nil).Once()
			},
			want: order,
		},
		{
			name:    "wrong secret",
			orderID: "order-1",
			secret:  "54321",
			mockBehavior: func(repo *mocks.MockOrderReader) {
				repo.EXPECT().GetOrderWithSecret(mock.Anything, "order-1", "54321").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:         "empty secret",
			orderID:      "order-1",
			mockBehavior: func(*mocks.MockOrderReader) {},
			wantErr:      entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderReader(t)
			tc.mockBehavior(repo)

			svc := service.NewQueryService(discardLogger(), repo)
			got, err := svc.GetOrderWithSecret(context.Background(), tc.orderID, tc.secret)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQueryService_GetMyOrder(t *testing.T) {
	repo := mocks.NewMockOrderReader(t)
	repo.EXPECT().GetUserOrder(mock.Anything, "order-1", "user-2").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	svc := service.NewQueryService(discardLogger(), repo)

	_, err := svc.GetMyOrder(context.Background(), "order-1", "user-2")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	_, err = svc.GetMyOrder(context.Background(), "order-1", "")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestQueryService_ListMyOrders(t *testing.T) {
	orders := []entities.Order{{OrderID: "b"}, {OrderID: "a"}}
	normalized := entities.OrderFilter{UserID: "user-1", Status: entities.PaymentSucceeded, Page: 2, PageSize: 100}

	t.Run("paginates", func(t *testing.T) {
		repo := mocks.NewMockOrderReader(t)
		repo.EXPECT().ListUserOrders(mock.Anything, normalized).Return(orders, nil).Once()
		repo.EXPECT().CountUserOrders(mock.Anything, normalized).Return(201, nil).Once()

		svc := service.NewQueryService(discardLogger(), repo)

		page, err := svc.ListMyOrders(context.Background(), entities.OrderFilter{
			UserID:   "user-1",
			Status:   entities.PaymentSucceeded,
			Page:     2,
			PageSize: 500,
		})
		require.NoError(t, err)
		assert.Equal(t, orders, page.Orders)
		assert.Equal(t, entities.Pagination{Page: 2, PageSize: 100, PageCount: 3, Total: 201}, page.Pagination)
	})

	t.Run("count fails", func(t *testing.T) {
		dbErr := errors.New("db error")
		repo := mocks.NewMockOrderReader(t)
		repo.EXPECT().ListUserOrders(mock.Anything, mock.Anything).Return(orders, nil).Maybe()
		repo.EXPECT().CountUserOrders(mock.Anything, mock.Anything).Return(0, dbErr).Once()

		svc := service.NewQueryService(discardLogger(), repo)

		_, err := svc.ListMyOrders(context.Background(), entities.OrderFilter{UserID: "user-1"})
		assert.ErrorIs(t, err, dbErr)
	})
}
