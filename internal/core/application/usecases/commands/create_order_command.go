package commands

import (
	"errors"
	"fmt"
	"strings"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"
	"seller/internal/pkg/errs"
	"seller/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItem is one cart entry of a CreateOrderCommand.
type OrderItem struct {
	ProductID string
	Quantity  int
}

// CreateOrderCommand represents a buyer's request to place an order for a cart.
//
// Example:
//
//	buyer, _ := order.NewBuyer("Ann", "555-0100", "1 Main St", "buyer-1")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), buyer, []OrderItem{
//	    {ProductID: "p-1", Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyer   order.Buyer
	items   []OrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order id, the buyer, and every item.
// Items must be non-empty, each with a product id and a positive quantity.
func NewCreateOrderCommand(orderID kernel.UUID, buyer order.Buyer, items []OrderItem) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyer(buyer),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Buyer() order.Buyer {
	return c.buyer
}

// Items returns a copy of the cart entries in request order.
func (c CreateOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyer(buyer order.Buyer) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var itemErrs []error
	normalized := make([]OrderItem, 0, len(items))
	for i, item := range items {
		productID := strings.TrimSpace(item.ProductID)
		if productID == "" {
			itemErrs = append(itemErrs, errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].productId", i)))
		}
		if item.Quantity <= 0 || item.Quantity > order.MaxLineQuantity {
			itemErrs = append(itemErrs, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("items[%d].quantity", i),
				item.Quantity,
				1,
				order.MaxLineQuantity,
			))
		}
		normalized = append(normalized, OrderItem{ProductID: productID, Quantity: item.Quantity})
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = normalized
	return nil
}
