package rental

import (
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeTransaction = "RentalTransaction"

// Event type constants
const (
	EventTypeTransactionRecorded = "TransactionRecorded"
)

// TransactionRecordedEvent is published when a delivery or return is recorded
type TransactionRecordedEvent struct {
	shared.BaseDomainEvent
	TransactionID uuid.UUID       `json:"transaction_id"`
	ClientID      uuid.UUID       `json:"client_id"`
	Type          TransactionType `json:"transaction_type"`
	BottleCount   int             `json:"bottle_count"`
}

// NewTransactionRecordedEvent creates a new TransactionRecordedEvent
func NewTransactionRecordedEvent(tx *Transaction) *TransactionRecordedEvent {
	return &TransactionRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransactionRecorded, AggregateTypeTransaction, tx.ID),
		TransactionID:   tx.ID,
		ClientID:        tx.ClientID,
		Type:            tx.Type,
		BottleCount:     len(tx.Bottles),
	}
}
