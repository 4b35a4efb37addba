package kernel

import (
	"fmt"
	"math"

	"suqia/internal/pkg/errs"
)

// Money is a value object for monetary amounts with two-decimal precision.
// Amounts are held as integer cents so that price snapshots survive
// arithmetic exactly. The zero value is a valid 0.00 amount.
type Money struct {
	cents int64
}

// NewMoney creates a Money from a decimal amount, e.g. 50.00 per barrel.
// Negative and non-finite amounts are rejected. The amount is rounded to
// the nearest cent.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%f is negative", amount))
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// MoneyFromCents restores a Money from its persisted cent count.
func MoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// MultiplyBy returns the amount multiplied by a whole quantity.
func (m Money) MultiplyBy(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

// Cents returns the amount as integer cents, for persistence.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the decimal amount, for presentation.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual reports whether two amounts are the same to the cent.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String implements fmt.Stringer, e.g. "150.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
