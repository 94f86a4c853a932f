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

func TestPricingService_CountPrice(t *testing.T) {
	t.Run("resolves items with one lookup", func(t *testing.T) {
		catalog := mocks.NewMockProductCatalog(t)
		catalog.EXPECT().
			ProductsByIDs(mock.Anything, []int64{1, 7}).
			Return([]entities.Product{airMax()}, nil).Once()

		svc := service.NewPricingService(discardLogger(), catalog)

		items, err := svc.CountPrice(context.Background(), []entities.PriceQuery{
			{ProductID: 1, VariantID: 10},
			{ProductID: 1, VariantID: 11},
			{ProductID: 7, VariantID: 1},
			{ProductID: 1, VariantID: 99},
		})
		require.NoError(t, err)
		require.Len(t, items, 4)

		assert.True(t, items[0].Resolved())
		assert.Equal(t, "50", items[0].Variant.Price.String())
		assert.True(t, items[1].Resolved())
		assert.Equal(t, "43", items[1].Variant.Name)

		assert.Nil(t, items[2].Product)
		assert.Nil(t, items[2].Variant)

		assert.NotNil(t, items[3].Product)
		assert.Nil(t, items[3].Variant)
	})

	t.Run("empty input", func(t *testing.T) {
		svc := service.NewPricingService(discardLogger(), mocks.NewMockProductCatalog(t))

		items, err := svc.CountPrice(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("catalog fails", func(t *testing.T) {
		dbErr := errors.New("db error")
		catalog := mocks.NewMockProductCatalog(t)
		catalog.EXPECT().ProductsByIDs(mock.Anything, mock.Anything).Return(nil, dbErr).Once()

		svc := service.NewPricingService(discardLogger(), catalog)

		_, err := svc.CountPrice(context.Background(), []entities.PriceQuery{{ProductID: 1, VariantID: 10}})
		assert.ErrorIs(t, err, dbErr)
	})
}
