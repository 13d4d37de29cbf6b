package order_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"
	"seller/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func buyer(t *testing.T) order.Buyer {
	t.Helper()
	b, err := order.NewBuyer("Ann", "555-0100", "1 Main St", "buyer-1")
	require.NoError(t, err)
	return b
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), buyer(t), []order.LineItem{
		{ProductID: "A", ProductName: "Apple", UnitPrice: money(t, "10.00"), Quantity: 1},
		{ProductID: "B", ProductName: "Banana", UnitPrice: money(t, "5.00"), Quantity: 2},
	})
	require.NoError(t, err)
	return o
}

func TestNewBuyer(t *testing.T) {
	t.Run("should trim fields", func(t *testing.T) {
		b, err := order.NewBuyer(" Ann ", "555", " street ", " b-1")

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, "Ann", b.Name())
		assert.Equal(t, "street", b.Address())
		assert.Equal(t, "b-1", b.ID())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := order.NewBuyer("", " ", "addr", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "buyer name")
		assert.Contains(t, err.Error(), "buyer phone")
		assert.Contains(t, err.Error(), "buyer id")
		assert.NotContains(t, err.Error(), "buyer address")
	})

	t.Run("should reject fields longer than their columns", func(t *testing.T) {
		_, err := order.NewBuyer(
			strings.Repeat("n", order.MaxBuyerNameLength+1),
			"555",
			strings.Repeat("a", order.MaxBuyerAddressLength+1),
			"b-1",
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "buyer name length")
		assert.Contains(t, err.Error(), "buyer address length")
		assert.NotContains(t, err.Error(), "buyer phone")
	})

	t.Run("should count characters, not bytes", func(t *testing.T) {
		b, err := order.NewBuyer(strings.Repeat("я", order.MaxBuyerNameLength), "555", "addr", "b-1")

		require.NoError(t, err)
		assert.Equal(t, order.MaxBuyerNameLength, len([]rune(b.Name())))
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var b order.Buyer

		require.ErrorIs(t, b.Validate(), order.ErrBuyerIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should compute exact total and start as new and unpaid", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "20.00", o.Total().String())
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, order.PayWait, o.PayStatus())
		assert.False(t, o.IsPaid())
		assert.False(t, o.CreatedAt().IsZero())
		require.Len(t, o.Lines(), 2)

		for _, l := range o.Lines() {
			assert.True(t, l.OrderID().IsEqual(o.ID()))
			require.NoError(t, l.ID().Validate())
		}
		assert.False(t, o.Lines()[0].ID().IsEqual(o.Lines()[1].ID()))
		assert.Equal(t, "10.00", o.Lines()[1].Subtotal().String())
	})

	t.Run("should record created event", func(t *testing.T) {
		o := newOrder(t)

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventOrderCreated, events[0].Type)
		assert.True(t, events[0].OrderID.IsEqual(o.ID()))
		assert.Equal(t, "buyer-1", events[0].BuyerID)
		assert.Equal(t, order.New, events[0].Status)

		o.ClearDomainEvents()
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject empty items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), buyer(t), nil)

		require.ErrorIs(t, err, order.ErrOrderDetailEmpty)
		assert.Nil(t, o)
	})

	t.Run("should reject invalid lines", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), buyer(t), []order.LineItem{
			{ProductID: "A", UnitPrice: money(t, "1.00"), Quantity: 0},
			{ProductID: "", UnitPrice: money(t, "1.00"), Quantity: 1},
		})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "line 0")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "0 is quantity")
		assert.Contains(t, err.Error(), "line 1")
		assert.Contains(t, err.Error(), "product id")
	})

	t.Run("should reject quantities above the line maximum", func(t *testing.T) {
		for _, qty := range []int{order.MaxLineQuantity + 1, math.MaxInt} {
			o, err := order.NewOrder(kernel.NewUUID(), buyer(t), []order.LineItem{
				{ProductID: "A", UnitPrice: money(t, "1.00"), Quantity: qty},
			})

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, o)
		}
	})

	t.Run("should accept the line maximum", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), buyer(t), []order.LineItem{
			{ProductID: "A", UnitPrice: money(t, "0.50"), Quantity: order.MaxLineQuantity},
		})

		require.NoError(t, err)
		assert.Equal(t, "4999.50", o.Total().String())
		assert.Equal(t, "4999.50", o.Lines()[0].Subtotal().String())
	})

	t.Run("should reject invalid id and buyer together", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, order.Buyer{}, nil)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, order.ErrBuyerIsNotConstructed)
	})

	t.Run("lines slice is a copy", func(t *testing.T) {
		o := newOrder(t)

		lines := o.Lines()
		lines[0] = nil

		assert.NotNil(t, o.Lines()[0])
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should restore without lines", func(t *testing.T) {
		o, err := order.RestoreOrder(id, buyer(t), money(t, "7.50"), order.Finished, order.PaySuccess, created, created, nil)

		require.NoError(t, err)
		assert.False(t, o.HasLines())
		assert.Equal(t, "7.50", o.Total().String())
		assert.Equal(t, created, o.CreatedAt())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		_, err := order.RestoreOrder(id, buyer(t), money(t, "1"), order.Unknown, order.PayUnknown, created, created, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "pay status")
	})

	t.Run("should reject foreign lines", func(t *testing.T) {
		line, err := order.RestoreLine(kernel.NewUUID(), kernel.NewUUID(), "A", "Apple", money(t, "1"), 1)
		require.NoError(t, err)

		_, err = order.RestoreOrder(id, buyer(t), money(t, "1"), order.New, order.PayWait, created, created, []*order.Line{line})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "belongs to order")
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel new order", func(t *testing.T) {
		o := newOrder(t)
		o.ClearDomainEvents()

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Canceled, o.Status())
		require.Len(t, o.DomainEvents(), 1)
		assert.Equal(t, order.EventOrderCanceled, o.DomainEvents()[0].Type)
	})

	t.Run("should cancel paid order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Pay())

		require.NoError(t, o.Cancel())
		assert.True(t, o.IsPaid())
	})

	t.Run("should not cancel finished order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Finish())
		o.ClearDomainEvents()

		err := o.Cancel()

		require.ErrorIs(t, err, order.ErrOrderStatusInvalid)
		assert.Contains(t, err.Error(), o.ID().String())
		assert.Equal(t, order.Finished, o.Status())
		assert.Empty(t, o.DomainEvents())
	})
}

func TestOrder_Pay(t *testing.T) {
	t.Run("should pay without changing status", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Pay())

		assert.Equal(t, order.PaySuccess, o.PayStatus())
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, order.EventOrderPaid, o.DomainEvents()[1].Type)
	})

	t.Run("should not pay twice", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Pay())

		require.ErrorIs(t, o.Pay(), order.ErrOrderPayStatusInvalid)
	})

	t.Run("status is checked before pay status", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Pay())
		require.NoError(t, o.Cancel())

		err := o.Pay()

		require.ErrorIs(t, err, order.ErrOrderStatusInvalid)
		require.NotErrorIs(t, err, order.ErrOrderPayStatusInvalid)
	})
}

func TestOrder_Finish(t *testing.T) {
	t.Run("should finish unpaid order", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Finish())

		assert.Equal(t, order.Finished, o.Status())
		assert.Equal(t, order.PayWait, o.PayStatus())
	})

	t.Run("should not finish canceled order", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.Finish(), order.ErrOrderStatusInvalid)
	})

	t.Run("end to end pay then finish", func(t *testing.T) {
		o := newOrder(t)
		require.Equal(t, "20.00", o.Total().String())

		require.NoError(t, o.Pay())
		require.NoError(t, o.Finish())

		assert.Equal(t, order.Finished, o.Status())
		assert.Equal(t, order.PaySuccess, o.PayStatus())
		events := o.DomainEvents()
		require.Len(t, events, 3)
		assert.Equal(t, order.EventOrderFinished, events[2].Type)
		assert.Equal(t, order.PaySuccess, events[2].PayStatus)
	})
}
