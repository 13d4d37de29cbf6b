package ports

import (
	"context"

	"seller/internal/core/domain/model/order"
)

// EventPublisher delivers order lifecycle events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}

// RefundService returns the payment of a canceled order to the buyer.
type RefundService interface {
	Refund(ctx context.Context, aggregate *order.Order) error
}
