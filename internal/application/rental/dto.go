package rental

import (
	"time"

	"github.com/bottleops/backend/internal/domain/rental"
	"github.com/google/uuid"
)

// RecordMovementRequest records a delivery to or a return from a client.
// Bottles are identified by their printed codes, which is what delivery
// staff actually scan or type in the field.
type RecordMovementRequest struct {
	ClientID    uuid.UUID  `json:"client_id" binding:"required"`
	BottleCodes []string   `json:"bottle_codes" binding:"required,min=1"`
	PhotoKey    string     `json:"photo_key" binding:"max=500"`
	RecordedBy  *uuid.UUID `json:"-"` // Set from JWT context, not from request body
}

// TransactionResponse represents a rental transaction in API responses
type TransactionResponse struct {
	ID          uuid.UUID   `json:"id"`
	Type        string      `json:"type"`
	ClientID    uuid.UUID   `json:"client_id"`
	BottleIDs   []uuid.UUID `json:"bottle_ids"`
	BottleCount int         `json:"bottle_count"`
	OccurredAt  time.Time   `json:"occurred_at"`
	PhotoKey    string      `json:"photo_key,omitempty"`
	RecordedBy  *uuid.UUID  `json:"recorded_by,omitempty"`
	Billed      bool        `json:"billed"`
	CreatedAt   time.Time   `json:"created_at"`
}

// TransactionListFilter represents filter options for the transaction list
type TransactionListFilter struct {
	ClientID *uuid.UUID `form:"client_id"`
	Type     string     `form:"type" binding:"omitempty,oneof=delivered returned"`
	Billed   *bool      `form:"billed"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"min=0"`
	PageSize int        `form:"page_size" binding:"min=0,max=100"`
}

// ToTransactionResponse converts a transaction aggregate to its response representation.
func ToTransactionResponse(tx *rental.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Type:        string(tx.Type),
		ClientID:    tx.ClientID,
		BottleIDs:   tx.BottleIDs(),
		BottleCount: tx.BottleCount(),
		OccurredAt:  tx.OccurredAt,
		PhotoKey:    tx.PhotoKey,
		RecordedBy:  tx.RecordedBy,
		Billed:      tx.Billed,
		CreatedAt:   tx.CreatedAt,
	}
}
