package billing

import (
	"context"

	"github.com/bottleops/backend/internal/domain/billing"
)

// PricingService manages the singleton per-bottle price.
type PricingService struct {
	pricingRepo billing.PricingRepository
}

// NewPricingService creates a new PricingService
func NewPricingService(pricingRepo billing.PricingRepository) *PricingService {
	return &PricingService{pricingRepo: pricingRepo}
}

// GetCurrent returns the current pricing, seeding the default on first use.
func (s *PricingService) GetCurrent(ctx context.Context) (*PricingResponse, error) {
	pricing, err := s.pricingRepo.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	response := ToPricingResponse(pricing)
	return &response, nil
}

// UpdatePrice sets a new per-bottle price. Existing bills keep the price
// they were generated with.
func (s *PricingService) UpdatePrice(ctx context.Context, req UpdatePricingRequest) (*PricingResponse, error) {
	pricing, err := s.pricingRepo.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}
	if err := pricing.UpdatePrice(req.PricePerBottle); err != nil {
		return nil, err
	}
	if err := s.pricingRepo.Save(ctx, pricing); err != nil {
		return nil, err
	}
	response := ToPricingResponse(pricing)
	return &response, nil
}
