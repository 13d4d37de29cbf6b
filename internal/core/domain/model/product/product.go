package product

import (
	"errors"
	"fmt"
	"strings"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/pkg/errs"
)

var (
	ErrProductNotFound          = errors.New("product not found")
	ErrProductStockInsufficient = errors.New("product stock is insufficient")

	// ErrProductOffSale matches ErrProductNotFound, so callers treat an off-sale
	// product like a missing one.
	ErrProductOffSale = fmt.Errorf("%w: product is off sale", ErrProductNotFound)

	// ErrProductIsNotConstructed is returned when a Product bypassed its constructor.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Status tells whether a product is on sale.
type Status int

const (
	StatusUnknown Status = iota
	StatusUp
	StatusDown
)

func (s Status) Validate() error {
	if s != StatusUp && s != StatusDown {
		return errs.NewValueIsInvalidErrorWithCause("product status", fmt.Errorf("%d is not a valid product status", s))
	}
	return nil
}

func (s Status) String() string {
	switch s {
	case StatusUp:
		return "Up"
	case StatusDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// StockAdjustment is a signed change to a product's stock: negative when an
// order takes goods, positive when a canceled order returns them.
type StockAdjustment struct {
	ProductID string
	Delta     int
}

// Product is a catalog entry.
type Product struct {
	id     string
	name   string
	price  kernel.Money
	stock  int
	status Status

	isConstructed bool
}

// NewProduct builds a product. Stock must not be negative.
func NewProduct(id, name string, price kernel.Money, stock int, status Status) (*Product, error) {
	p := &Product{
		id:            strings.TrimSpace(id),
		name:          name,
		price:         price,
		stock:         stock,
		status:        status,
		isConstructed: true,
	}

	var idErr, stockErr error
	if p.id == "" {
		idErr = errs.NewValueIsRequiredError("product id")
	}
	if stock < 0 {
		stockErr = errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}

	if err := errors.Join(idErr, price.Validate(), stockErr, status.Validate()); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() string          { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Price() kernel.Money { return p.price }
func (p *Product) Stock() int          { return p.stock }
func (p *Product) Status() Status      { return p.status }

// IsOnSale reports whether the product can be put on a new order.
func (p *Product) IsOnSale() bool { return p.status == StatusUp }

// ApplyStockDelta changes stock by delta. A delta that would drive stock below
// zero leaves the product untouched and returns ErrProductStockInsufficient.
func (p *Product) ApplyStockDelta(delta int) error {
	next := p.stock + delta
	if next < 0 {
		return fmt.Errorf("%w: product %s has %d, requested %d", ErrProductStockInsufficient, p.id, p.stock, -delta)
	}
	p.stock = next
	return nil
}
