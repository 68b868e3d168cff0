package inventory

import (
	"time"

	"github.com/bottleops/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// RegisterSeriesRequest registers a numbered series of bottles, e.g.
// prefix SV from 101 to 150.
type RegisterSeriesRequest struct {
	Prefix string `json:"prefix" binding:"required,min=1,max=5"`
	Start  int    `json:"start" binding:"required,min=1"`
	End    int    `json:"end" binding:"required,min=1"`
}

// BottleResponse represents a bottle in API responses
type BottleResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BottleListFilter represents filter options for the bottle list
type BottleListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=in_stock delivered"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=200"`
}

// RegisterSeriesResponse reports what a series registration produced.
type RegisterSeriesResponse struct {
	Registered int      `json:"registered"`
	Skipped    []string `json:"skipped,omitempty"`
}

// ToBottleResponse converts a bottle aggregate to its response representation.
func ToBottleResponse(bottle *inventory.Bottle) BottleResponse {
	return BottleResponse{
		ID:        bottle.ID,
		Code:      bottle.Code,
		Status:    string(bottle.Status),
		CreatedAt: bottle.CreatedAt,
		UpdatedAt: bottle.UpdatedAt,
	}
}
