package commands

import (
	"context"
	"errors"
	"fmt"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"
	"seller/internal/core/ports"
	"seller/internal/pkg/errs"
)

func loadOrder(ctx context.Context, repo ports.OrderRepository, id kernel.UUID) (*order.Order, error) {
	o, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", order.ErrOrderNotFound, id)
		}
		return nil, err
	}
	return o, nil
}

func saveOrder(ctx context.Context, repo ports.OrderRepository, o *order.Order) error {
	if err := repo.Update(ctx, o); err != nil {
		return fmt.Errorf("%w: %s: %w", order.ErrOrderUpdateFailed, o.ID(), err)
	}
	return nil
}
