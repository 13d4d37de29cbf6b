package kernel

import (
	"errors"
	"fmt"

	"seller/internal/pkg/errs"
	"seller/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a Money that bypassed its constructors.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is a non-negative monetary amount with exact decimal arithmetic.
// Prices and order totals never go through float64.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.00")
//	subtotal, _ := price.Mul(2)
//	total := kernel.ZeroMoney().Add(subtotal) // 20.00
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney wraps a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal literal such as "5.00".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney is the neutral element for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Mul returns m multiplied by a positive quantity.
func (m Money) Mul(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}, nil
}

// IsEqual compares amounts numerically, so 20 equals 20.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
