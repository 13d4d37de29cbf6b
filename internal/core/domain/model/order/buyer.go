package order

import (
	"errors"
	"strings"
	"unicode/utf8"

	"seller/internal/pkg/errs"
	"seller/internal/pkg/guard"
)

// ErrBuyerIsNotConstructed is returned when validating a zero-value Buyer.
var ErrBuyerIsNotConstructed = errors.New("Buyer must be created via NewBuyer")

// Buyer field limits, in characters.
const (
	MaxBuyerNameLength    = 32
	MaxBuyerPhoneLength   = 32
	MaxBuyerAddressLength = 128
	MaxBuyerIDLength      = 64
)

// Buyer is the purchaser of an order. All fields are required.
type Buyer struct {
	name    string
	phone   string
	address string
	id      string
	guard   guard.ConstructorGuard
}

// NewBuyer trims every field and reports all missing or too long ones at once.
func NewBuyer(name, phone, address, buyerID string) (Buyer, error) {
	b := Buyer{
		name:    strings.TrimSpace(name),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		id:      strings.TrimSpace(buyerID),
	}

	if err := errors.Join(
		requiredWithin(b.name, "buyer name", MaxBuyerNameLength),
		requiredWithin(b.phone, "buyer phone", MaxBuyerPhoneLength),
		requiredWithin(b.address, "buyer address", MaxBuyerAddressLength),
		requiredWithin(b.id, "buyer id", MaxBuyerIDLength),
	); err != nil {
		return Buyer{}, err
	}

	b.guard = guard.NewConstructorGuard()
	return b, nil
}

func required(value, param string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func requiredWithin(value, param string, maxLength int) error {
	if err := required(value, param); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(value); n > maxLength {
		return errs.NewValueIsOutOfRangeError(param+" length", n, 1, maxLength)
	}
	return nil
}

func (b Buyer) Validate() error {
	return b.guard.Validate(ErrBuyerIsNotConstructed)
}

func (b Buyer) Name() string    { return b.name }
func (b Buyer) Phone() string   { return b.phone }
func (b Buyer) Address() string { return b.address }
func (b Buyer) ID() string      { return b.id }
