package order

import (
	"errors"
	"strings"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when validating a Line that bypassed its constructors.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewOrder or RestoreLine")

// MaxLineQuantity bounds the quantity of a single line.
const MaxLineQuantity = 9999

// LineItem describes a product to put on a new order, with the price resolved
// from the catalog at creation time.
type LineItem struct {
	ProductID   string
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
}

// Line is one product entry of an order. The product name and unit price are
// snapshots; later catalog changes do not affect them. Lines never change after
// creation.
type Line struct {
	id          kernel.UUID
	orderID     kernel.UUID
	productID   string
	productName string
	unitPrice   kernel.Money
	quantity    int
	subtotal    kernel.Money

	isConstructed bool
}

// RestoreLine rebuilds a persisted line.
func RestoreLine(
	id kernel.UUID,
	orderID kernel.UUID,
	productID string,
	productName string,
	unitPrice kernel.Money,
	quantity int,
) (*Line, error) {
	l := &Line{
		id:            id,
		orderID:       orderID,
		productID:     strings.TrimSpace(productID),
		productName:   productName,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		required(l.productID, "product id"),
		unitPrice.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return nil, err
	}

	subtotal, err := unitPrice.Mul(quantity)
	if err != nil {
		return nil, err
	}
	l.subtotal = subtotal

	return l, nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 || quantity > MaxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxLineQuantity)
	}
	return nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID         { return l.id }
func (l *Line) OrderID() kernel.UUID    { return l.orderID }
func (l *Line) ProductID() string       { return l.productID }
func (l *Line) ProductName() string     { return l.productName }
func (l *Line) UnitPrice() kernel.Money { return l.unitPrice }
func (l *Line) Quantity() int           { return l.quantity }

// Subtotal returns unit price × quantity, computed once on construction.
func (l *Line) Subtotal() kernel.Money { return l.subtotal }
