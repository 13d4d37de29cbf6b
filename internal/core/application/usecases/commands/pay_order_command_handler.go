package commands

import (
	"context"

	"seller/internal/core/domain/model/order"
)

// PayOrderCommandHandler marks orders as paid. Only a New order waiting for
// payment can be paid; its status stays New.
type PayOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPayOrderCommandHandler(uowFactory OrderUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
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

	if err = o.Pay(); err != nil {
		return nil, err
	}

	if err = saveOrder(ctx, repo, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
