package commands

import (
	"context"
	"fmt"

	"seller/internal/core/domain/model/order"
	"seller/internal/core/domain/services"
	"seller/internal/core/ports"
)

// CancelOrderCommandHandler cancels orders.
//
// The order must be New. After the status is saved, every line is returned to
// stock and, when the order was already paid, the payment is refunded. Any
// failure rolls the whole cancellation back.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	refunds    ports.RefundService
	allocator  services.StockAllocator
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, refunds ports.RefundService) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		refunds:    refunds,
		allocator:  services.NewStockAllocator(),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	o, err := loadOrder(ctx, repo, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Cancel(); err != nil {
		return nil, err
	}

	if err = saveOrder(ctx, repo, o); err != nil {
		return nil, err
	}

	adjustments, err := h.allocator.Release(o)
	if err != nil {
		return nil, err
	}

	if err = uow.ProductCatalog().AdjustStock(ctx, adjustments); err != nil {
		return nil, err
	}

	if o.IsPaid() {
		if err = h.refunds.Refund(ctx, o); err != nil {
			return nil, fmt.Errorf("refund order %s: %w", o.ID(), err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
