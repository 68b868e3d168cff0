package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percentage is a value object for a percentage in the range [0, 100].
// It is used for discount and tax rates on bills.
type Percentage struct {
	value decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// NewPercentage creates a Percentage, rejecting values outside [0, 100]
func NewPercentage(value decimal.Decimal) (Percentage, error) {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return Percentage{}, fmt.Errorf("percentage must be between 0 and 100, got %s", value.String())
	}
	return Percentage{value: value}, nil
}

// MustPercentage creates a Percentage, panicking on out-of-range values.
// Intended for constants and tests.
func MustPercentage(value decimal.Decimal) Percentage {
	p, err := NewPercentage(value)
	if err != nil {
		panic(err)
	}
	return p
}

// ZeroPercent returns a zero percentage
func ZeroPercent() Percentage {
	return Percentage{value: decimal.Zero}
}

// Value returns the underlying decimal value
func (p Percentage) Value() decimal.Decimal {
	return p.value
}

// IsZero returns true if the percentage is zero
func (p Percentage) IsZero() bool {
	return p.value.IsZero()
}

// ApplyTo returns amount × p / 100 (unrounded)
func (p Percentage) ApplyTo(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.value).Div(hundred)
}

// String returns the percentage as a string
func (p Percentage) String() string {
	return p.value.String() + "%"
}
