// Package kernel provides the value objects shared by the seller domain model.
//
// The package includes:
//   - UUID: identifier for orders and order lines, backed by github.com/google/uuid
//   - Money: exact decimal amount, backed by github.com/shopspring/decimal
//
// Both are immutable and their zero values are invalid: they must be created
// through the constructor functions, and Validate reports values that were not.
package kernel
