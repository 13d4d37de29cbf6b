package commands_test

import (
	"context"
	"testing"

	"seller/internal/core/application/usecases/commands"
	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"
	"seller/internal/core/domain/model/product"
	"seller/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Lookup(ctx context.Context, productID string) (*product.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductCatalog) AdjustStock(ctx context.Context, adjustments []product.StockAdjustment) error {
	args := m.Called(ctx, adjustments)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductCatalog() ports.ProductCatalog {
	args := m.Called()
	return args.Get(0).(ports.ProductCatalog)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// MockOrderUoWFactory hands out a MockUoW, which also satisfies commands.OrderUoW.
type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRefundService struct{ mock.Mock }

func (m *MockRefundService) Refund(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustProduct(t *testing.T, id, name, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, name, mustMoney(t, price), stock, product.StatusUp)
	require.NoError(t, err)
	return p
}

func mustBuyer(t *testing.T) order.Buyer {
	t.Helper()
	b, err := order.NewBuyer("Ann", "555-0100", "1 Main St", "buyer-1")
	require.NoError(t, err)
	return b
}

// newStoredOrder returns a New/Wait order for A×1 @ 10.00 and B×2 @ 5.00.
func newStoredOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), mustBuyer(t), []order.LineItem{
		{ProductID: "A", ProductName: "Apple", UnitPrice: mustMoney(t, "10.00"), Quantity: 1},
		{ProductID: "B", ProductName: "Banana", UnitPrice: mustMoney(t, "5.00"), Quantity: 2},
	})
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}
