package services

import (
	"fmt"
	"math"
	"sort"

	"seller/internal/core/domain/model/order"
	"seller/internal/core/domain/model/product"
	"seller/internal/pkg/errs"
)

// StockAllocator computes the stock changes caused by an order.
//
// Lines of the same product are merged into one adjustment, and adjustments
// are sorted by product id. Concurrent orders therefore lock product rows in
// the same order.
//
// Example usage:
//
//	allocator := NewStockAllocator()
//	adjustments, err := allocator.Reserve(o)
//	if err != nil {
//	    return err
//	}
//	err = catalog.AdjustStock(ctx, adjustments)
type StockAllocator struct{}

func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

// Reserve returns negative deltas taking every line of o out of stock.
func (StockAllocator) Reserve(o *order.Order) ([]product.StockAdjustment, error) {
	return allocate(o, -1)
}

// Release returns positive deltas putting every line of o back into stock.
func (StockAllocator) Release(o *order.Order) ([]product.StockAdjustment, error) {
	return allocate(o, 1)
}

func allocate(o *order.Order, sign int) ([]product.StockAdjustment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !o.HasLines() {
		return nil, fmt.Errorf("%w: %s", order.ErrOrderDetailEmpty, o.ID())
	}

	totals := make(map[string]int)
	for _, l := range o.Lines() {
		sum := totals[l.ProductID()]
		if sum > math.MaxInt-l.Quantity() {
			return nil, errs.NewValueIsOutOfRangeError("quantity of product "+l.ProductID(), "overflow", 1, math.MaxInt)
		}
		totals[l.ProductID()] = sum + l.Quantity()
	}

	adjustments := make([]product.StockAdjustment, 0, len(totals))
	for productID, quantity := range totals {
		adjustments = append(adjustments, product.StockAdjustment{
			ProductID: productID,
			Delta:     sign * quantity,
		})
	}
	sort.Slice(adjustments, func(i, j int) bool {
		return adjustments[i].ProductID < adjustments[j].ProductID
	})

	return adjustments, nil
}
