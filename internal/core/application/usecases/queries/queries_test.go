package queries_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"seller/internal/core/application/usecases/queries"
	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"
	"seller/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func TestNewListBuyerOrdersQuery(t *testing.T) {
	t.Run("should accept bounds", func(t *testing.T) {
		for _, size := range []int{1, queries.MaxPageSize} {
			q, err := queries.NewListBuyerOrdersQuery(" buyer ", 0, size)

			require.NoError(t, err)
			require.NoError(t, q.Validate())
			assert.Equal(t, "buyer", q.BuyerID())
			assert.Equal(t, size, q.Size())
		}
	})

	t.Run("should reject bad parameters together", func(t *testing.T) {
		_, err := queries.NewListBuyerOrdersQuery("", -1, queries.MaxPageSize+1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should cap the page", func(t *testing.T) {
		q, err := queries.NewListBuyerOrdersQuery("buyer", queries.MaxPage, queries.MaxPageSize)
		require.NoError(t, err)
		assert.Equal(t, int64(queries.MaxPage)*int64(queries.MaxPageSize), q.Offset())

		for _, page := range []int{queries.MaxPage + 1, math.MaxInt} {
			_, err := queries.NewListBuyerOrdersQuery("buyer", page, queries.MaxPageSize)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), "page")
		}
	})

	t.Run("offset skips whole pages", func(t *testing.T) {
		q, err := queries.NewListBuyerOrdersQuery("buyer", 3, 20)

		require.NoError(t, err)
		assert.Equal(t, int64(60), q.Offset())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, queries.ListBuyerOrdersQuery{}.Validate(), queries.ErrListBuyerOrdersQueryIsNotConstructed)
	})
}

func TestNewGetExpiredUnpaidOrdersQuery(t *testing.T) {
	cutoff := time.Now()

	q, err := queries.NewGetExpiredUnpaidOrdersQuery(cutoff, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, q.Limit())
	assert.True(t, q.CreatedBefore().Equal(cutoff))

	_, err = queries.NewGetExpiredUnpaidOrdersQuery(time.Time{}, 0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	buyer, _ := order.NewBuyer("Ann", "555-0100", "1 Main St", "buyer-1")
	price, _ := kernel.MoneyFromString("10.00")
	stored, err := order.NewOrder(kernel.NewUUID(), buyer, []order.LineItem{
		{ProductID: "A", ProductName: "Apple", UnitPrice: price, Quantity: 3},
	})
	require.NoError(t, err)

	t.Run("should map the order and its lines", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()
		query, _ := queries.NewGetOrderQuery(stored.ID())

		got, err := queries.NewGetOrderQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "buyer-1", got.BuyerID)
		assert.Equal(t, "Ann", got.BuyerName)
		assert.Equal(t, "30.00", got.Total.StringFixed(2))
		assert.Equal(t, order.PayWait, got.PayStatus)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, "A", got.Lines[0].ProductID)
		assert.True(t, got.Lines[0].UnitPrice.Equal(price.Amount()))
	})

	t.Run("should translate missing order", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("Get", mock.Anything, stored.ID()).Return(nil, errs.NewObjectNotFoundError("order", stored.ID())).Once()
		query, _ := queries.NewGetOrderQuery(stored.ID())

		_, err := queries.NewGetOrderQueryHandler(reader).Handle(t.Context(), query)

		require.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("should pass through other errors", func(t *testing.T) {
		reader := new(MockOrderReader)
		reader.On("Get", mock.Anything, stored.ID()).Return(nil, errors.New("db down")).Once()
		query, _ := queries.NewGetOrderQuery(stored.ID())

		_, err := queries.NewGetOrderQueryHandler(reader).Handle(t.Context(), query)

		require.EqualError(t, err, "db down")
	})

	t.Run("should reject unconstructed query", func(t *testing.T) {
		_, err := queries.NewGetOrderQueryHandler(new(MockOrderReader)).Handle(t.Context(), queries.GetOrderQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}
