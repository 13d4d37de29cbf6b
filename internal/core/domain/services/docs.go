// Package services provides domain services that work across the order and
// product aggregates of the seller system, for business rules that do not
// naturally belong to a single aggregate root.
//
// The package includes:
//   - StockAllocator: turns order lines into the stock adjustments that reserve
//     goods when an order is placed and release them when it is canceled
package services
