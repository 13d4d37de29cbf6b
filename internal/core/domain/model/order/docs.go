// Package order provides the Order aggregate of the seller application: a
// buyer's purchase with its immutable line snapshot, its total, and its
// lifecycle state.
//
// The package includes:
//   - Order: the aggregate root owning its lines and recording lifecycle events
//   - Line: one product entry with the price captured at creation time
//   - Buyer: name, phone, address, and buyer identifier of the purchaser
//   - Status and PayStatus: two independent state machines
//
// Key business rules:
//   - A new order has at least one line and starts as New/Wait
//   - The total is the exact decimal sum of price × quantity, fixed at creation
//   - Status goes New -> Canceled or New -> Finished, nothing leaves a final state
//   - PayStatus goes Wait -> Success only, and only while the order is New
//   - Finishing does not require payment
package order
