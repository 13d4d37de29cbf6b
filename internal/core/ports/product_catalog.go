package ports

import (
	"context"

	"seller/internal/core/domain/model/product"
)

// ProductCatalog resolves products and adjusts their stock.
type ProductCatalog interface {
	// Lookup returns the current state of a product, or an error wrapping
	// product.ErrProductNotFound.
	Lookup(ctx context.Context, productID string) (*product.Product, error)

	// AdjustStock applies every adjustment or none of them. A delta that would
	// make stock negative fails with product.ErrProductStockInsufficient.
	AdjustStock(ctx context.Context, adjustments []product.StockAdjustment) error
}
