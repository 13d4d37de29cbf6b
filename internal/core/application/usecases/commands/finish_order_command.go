package commands

import (
	"errors"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/pkg/guard"
)

var ErrFinishOrderCommandIsNotConstructed = errors.New(
	"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
)

// FinishOrderCommand closes a new order as fulfilled.
type FinishOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewFinishOrderCommand(orderID kernel.UUID) (FinishOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FinishOrderCommand{}, err
	}

	return FinishOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

func (c FinishOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
