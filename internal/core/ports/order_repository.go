// Package ports defines the contracts between the order lifecycle and the
// infrastructure around it: persistence, the product catalog, event
// publication, and payment refunds.
package ports

import (
	"context"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order header together with all of its lines.
	// The order must not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, pay status, and update time of an existing order.
	// Lines are never rewritten. Returns an error wrapping errs.ErrObjectNotFound
	// when no row was updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines. Returns an error wrapping
	// errs.ErrObjectNotFound when the header does not exist; a header without
	// lines is returned as is.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
