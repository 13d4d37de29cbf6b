package commands

import (
	"context"

	"seller/internal/core/domain/model/order"
)

// FinishOrderCommandHandler closes New orders as Finished. The pay status is
// not checked, so an unpaid order can be finished.
type FinishOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewFinishOrderCommandHandler(uowFactory OrderUoWFactory) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) (*order.Order, error) {
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

	if err = o.Finish(); err != nil {
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
