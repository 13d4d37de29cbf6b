package commands

import (
	"context"
	"fmt"

	"seller/internal/core/domain/model/order"
	"seller/internal/core/domain/model/product"
	"seller/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders.
//
// Prices and names are read from the catalog, the order is stored with its
// lines, and stock is decremented last. Off-sale products are refused like
// unknown ones. All of it happens in one transaction: an unknown product or a
// stock shortage leaves no order, no lines, and no stock change behind.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.StockAllocator
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewStockAllocator(),
	}
}

// Handle creates the order and returns it with its lines and total.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog := uow.ProductCatalog()
	items := cmd.Items()
	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		p, err := catalog.Lookup(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !p.IsOnSale() {
			return nil, fmt.Errorf("%w: %s", product.ErrProductOffSale, p.ID())
		}

		lineItems = append(lineItems, order.LineItem{
			ProductID:   p.ID(),
			ProductName: p.Name(),
			UnitPrice:   p.Price(),
			Quantity:    item.Quantity,
		})
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.Buyer(), lineItems)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	adjustments, err := h.allocator.Reserve(created)
	if err != nil {
		return nil, err
	}

	if err = catalog.AdjustStock(ctx, adjustments); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
