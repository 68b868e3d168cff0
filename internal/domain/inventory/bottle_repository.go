package inventory

import (
	"context"

	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockSummary holds bottle counts by status
type StockSummary struct {
	Total     int64 `json:"total"`
	InStock   int64 `json:"in_stock"`
	Delivered int64 `json:"delivered"`
}

// BottleRepository defines the interface for bottle persistence
type BottleRepository interface {
	// FindByID finds a bottle by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Bottle, error)

	// FindByCode finds a bottle by its unique code
	FindByCode(ctx context.Context, code string) (*Bottle, error)

	// FindByIDs finds multiple bottles by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Bottle, error)

	// FindByCodes finds multiple bottles by their codes
	FindByCodes(ctx context.Context, codes []string) ([]Bottle, error)

	// FindByStatus finds bottles with the given status
	FindByStatus(ctx context.Context, status BottleStatus, filter shared.Filter) ([]Bottle, error)

	// FindAll finds all bottles matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Bottle, error)

	// ExistingCodes returns which of the given codes are already registered
	ExistingCodes(ctx context.Context, codes []string) ([]string, error)

	// Save creates or updates a bottle
	Save(ctx context.Context, bottle *Bottle) error

	// SaveBatch creates or updates multiple bottles
	SaveBatch(ctx context.Context, bottles []*Bottle) error

	// Count counts bottles matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Summary returns bottle counts by status
	Summary(ctx context.Context) (StockSummary, error)
}
