package billing

import (
	"github.com/bottleops/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// TotalsBreakdown holds every intermediate figure of a bill computation.
// Each amount is already rounded to two decimal places, so the figures
// can be persisted and redisplayed without drift.
type TotalsBreakdown struct {
	Quantity       int
	PricePerBottle decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountPct    decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxableValue   decimal.Decimal
	TaxPct         decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
}

// ComputeTotals derives the full billing breakdown from a quantity, a unit
// price and the discount/tax percentages. Rounding is half-up to two
// decimal places after each arithmetic step, and tax applies to the
// taxable value after discount, not to the raw subtotal.
func ComputeTotals(quantity int, pricePerBottle, discountPct, taxPct decimal.Decimal) (TotalsBreakdown, error) {
	if quantity < 0 {
		return TotalsBreakdown{}, ErrInvalidQuantity
	}
	if pricePerBottle.IsNegative() {
		return TotalsBreakdown{}, ErrInvalidPrice
	}

	discount, err := valueobject.NewPercentage(discountPct)
	if err != nil {
		return TotalsBreakdown{}, ErrInvalidPercentage
	}
	tax, err := valueobject.NewPercentage(taxPct)
	if err != nil {
		return TotalsBreakdown{}, ErrInvalidPercentage
	}

	subtotal := round2(pricePerBottle.Mul(decimal.NewFromInt(int64(quantity))))
	discountAmount := round2(discount.ApplyTo(subtotal))
	taxable := round2(subtotal.Sub(discountAmount))
	taxAmount := round2(tax.ApplyTo(taxable))
	total := round2(taxable.Add(taxAmount))

	return TotalsBreakdown{
		Quantity:       quantity,
		PricePerBottle: round2(pricePerBottle),
		Subtotal:       subtotal,
		DiscountPct:    discount.Value(),
		DiscountAmount: discountAmount,
		TaxableValue:   taxable,
		TaxPct:         tax.Value(),
		TaxAmount:      taxAmount,
		TotalAmount:    total,
	}, nil
}

// round2 rounds half-up to two decimal places. decimal.Round rounds half
// away from zero, which coincides with half-up for the non-negative
// amounts billing works with.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
