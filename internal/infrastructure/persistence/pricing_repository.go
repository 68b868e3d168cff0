package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bottleops/backend/internal/domain/billing"
)

// GormPricingRepository implements PricingRepository using GORM
type GormPricingRepository struct {
	db        *gorm.DB
	seedPrice decimal.Decimal
}

// NewGormPricingRepository creates a new GormPricingRepository
func NewGormPricingRepository(db *gorm.DB) *GormPricingRepository {
	return &GormPricingRepository{db: db, seedPrice: billing.DefaultPricePerBottle}
}

// NewGormPricingRepositoryWithSeed creates a GormPricingRepository that
// seeds the pricing row with a configured price instead of the built-in
// default
func NewGormPricingRepositoryWithSeed(db *gorm.DB, seedPrice decimal.Decimal) *GormPricingRepository {
	return &GormPricingRepository{db: db, seedPrice: seedPrice}
}

// GetCurrent returns the pricing row, creating it with the default
// price on first access
func (r *GormPricingRepository) GetCurrent(ctx context.Context) (*billing.BottlePricing, error) {
	var pricing billing.BottlePricing
	err := r.db.WithContext(ctx).First(&pricing, "id = ?", billing.PricingID).Error
	if err == nil {
		return &pricing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	seeded, err := billing.NewBottlePricing(r.seedPrice)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Create(seeded).Error; err != nil {
		return nil, err
	}
	return seeded, nil
}

// Save updates the pricing row
func (r *GormPricingRepository) Save(ctx context.Context, pricing *billing.BottlePricing) error {
	return r.db.WithContext(ctx).Save(pricing).Error
}

// Ensure GormPricingRepository implements PricingRepository
var _ billing.PricingRepository = (*GormPricingRepository)(nil)
