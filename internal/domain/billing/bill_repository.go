package billing

import (
	"context"

	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BillFilter narrows bill listings.
type BillFilter struct {
	ClientID *uuid.UUID
	Paid     *bool
	BillType *BillType
	Page     int
	PageSize int
}

// BillRepository persists bills together with their transaction links.
type BillRepository interface {
	// Create stores the bill and all of its BillTransaction links.
	Create(ctx context.Context, bill *Bill) error
	FindByID(ctx context.Context, id uuid.UUID) (*Bill, error)
	List(ctx context.Context, filter BillFilter) ([]*Bill, int64, error)
	Save(ctx context.Context, bill *Bill) error
	// Delete removes the bill; its links go with it through the cascade.
	Delete(ctx context.Context, id uuid.UUID) error
	// CustomBilledTransactionIDs returns the IDs of every transaction of
	// the client already linked to a custom bill.
	CustomBilledTransactionIDs(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error)
	Count(ctx context.Context, filter BillFilter) (int64, error)
}

// PricingRepository manages the singleton bottle pricing row.
type PricingRepository interface {
	// GetCurrent returns the pricing row, creating it with the default
	// price on first access.
	GetCurrent(ctx context.Context) (*BottlePricing, error)
	Save(ctx context.Context, pricing *BottlePricing) error
}

// DefaultBillFilter returns a filter with sane pagination.
func DefaultBillFilter() BillFilter {
	f := shared.DefaultFilter()
	return BillFilter{Page: f.Page, PageSize: f.PageSize}
}
