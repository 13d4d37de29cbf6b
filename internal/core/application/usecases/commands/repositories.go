// Package commands contains the operations that change orders: create, cancel,
// pay, and finish. Every handler validates its command, opens a unit of work,
// and commits only when all writes succeeded.
package commands

import (
	"context"

	"seller/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogFactory provides access to the product catalog within a transaction.
	CatalogFactory interface {
		ProductCatalog() ports.ProductCatalog
	}

	// OrderUoW manages transactions for operations that touch orders only (pay, finish).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions that change orders and stock together (create, cancel).
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   catalog := uow.ProductCatalog()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CatalogFactory
	}

	// UoWFactory creates new unit of work instances for order and stock changes.
	UoWFactory interface {
		Create() UoW
	}
)
