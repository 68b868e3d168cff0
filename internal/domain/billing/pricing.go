package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// BottlePricing is a single-row configuration record holding the current
// per-bottle price. Bills snapshot the price at generation time, so
// changing it never affects existing bills.
type BottlePricing struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	PricePerBottle decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_per_bottle"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PricingID is the fixed primary key of the singleton pricing row.
const PricingID uint = 1

// DefaultPricePerBottle seeds the pricing row on first access.
var DefaultPricePerBottle = decimal.NewFromInt(50)

// NewBottlePricing creates the singleton pricing record.
func NewBottlePricing(price decimal.Decimal) (*BottlePricing, error) {
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	return &BottlePricing{
		ID:             PricingID,
		PricePerBottle: price.Round(2),
		UpdatedAt:      time.Now(),
	}, nil
}

// UpdatePrice replaces the current per-bottle price.
func (p *BottlePricing) UpdatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	p.PricePerBottle = price.Round(2)
	p.UpdatedAt = time.Now()
	return nil
}

func (BottlePricing) TableName() string {
	return "bottle_pricing"
}
