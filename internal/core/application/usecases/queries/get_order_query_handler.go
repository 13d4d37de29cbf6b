package queries

import (
	"context"
	"errors"
	"fmt"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"
	"seller/internal/pkg/errs"
)

// OrderReader loads an order with its lines outside of any transaction.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// GetOrderQueryHandler resolves GetOrderQuery. A missing header is reported as
// order.ErrOrderNotFound, a header without lines as order.ErrOrderDetailNotFound.
type GetOrderQueryHandler struct {
	reader OrderReader
}

func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return GetOrderQueryResponse{}, fmt.Errorf("%w: %s", order.ErrOrderNotFound, query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	if !o.HasLines() {
		return GetOrderQueryResponse{}, fmt.Errorf("%w: %s", order.ErrOrderDetailNotFound, query.OrderID())
	}

	return NewGetOrderQueryResponse(o), nil
}
