package rental

import (
	"time"

	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionType distinguishes deliveries from returns
type TransactionType string

const (
	TransactionTypeDelivered TransactionType = "delivered"
	TransactionTypeReturned  TransactionType = "returned"
)

// Transaction represents one delivery or return event for one or more
// bottles belonging to one client. It is the aggregate root for rental
// activity; the Billed flag is mutated only by the billing ledger.
type Transaction struct {
	shared.BaseAggregateRoot
	Type       TransactionType     `gorm:"type:varchar(10);not null;index"`
	ClientID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	OccurredAt time.Time           `gorm:"not null;index"`
	PhotoKey   string              `gorm:"type:varchar(255)"`
	RecordedBy *uuid.UUID          `gorm:"type:uuid"`
	Billed     bool                `gorm:"not null;default:false;index"`
	Bottles    []TransactionBottle `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionBottle links a transaction to one of the bottles it covers
type TransactionBottle struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_transaction_bottle"`
	BottleID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_transaction_bottle"`
	CreatedAt     time.Time
}

// TableName returns the table name for GORM
func (TransactionBottle) TableName() string {
	return "transaction_bottles"
}

// NewTransaction creates a delivery or return transaction for a client
// covering the given bottles. Photo key is an opaque reference to the
// delivery evidence managed by the caller.
func NewTransaction(txType TransactionType, clientID uuid.UUID, bottleIDs []uuid.UUID, photoKey string, recordedBy *uuid.UUID) (*Transaction, error) {
	if txType != TransactionTypeDelivered && txType != TransactionTypeReturned {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be delivered or returned")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Transaction requires a client")
	}
	if len(bottleIDs) == 0 {
		return nil, shared.NewDomainError("EMPTY_BOTTLE_SET", "Transaction must cover at least one bottle")
	}

	seen := make(map[uuid.UUID]struct{}, len(bottleIDs))
	links := make([]TransactionBottle, 0, len(bottleIDs))
	tx := &Transaction{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              txType,
		ClientID:          clientID,
		OccurredAt:        time.Now(),
		PhotoKey:          photoKey,
		RecordedBy:        recordedBy,
		Billed:            false,
	}
	for _, bottleID := range bottleIDs {
		if _, dup := seen[bottleID]; dup {
			return nil, shared.NewDomainError("DUPLICATE_BOTTLE", "Transaction cannot cover the same bottle twice")
		}
		seen[bottleID] = struct{}{}
		links = append(links, TransactionBottle{
			ID:            uuid.New(),
			TransactionID: tx.ID,
			BottleID:      bottleID,
		})
	}
	tx.Bottles = links

	tx.AddDomainEvent(NewTransactionRecordedEvent(tx))

	return tx, nil
}

// NewDeliveryTransaction creates a delivery transaction
func NewDeliveryTransaction(clientID uuid.UUID, bottleIDs []uuid.UUID, photoKey string, recordedBy *uuid.UUID) (*Transaction, error) {
	return NewTransaction(TransactionTypeDelivered, clientID, bottleIDs, photoKey, recordedBy)
}

// NewReturnTransaction creates a return transaction
func NewReturnTransaction(clientID uuid.UUID, bottleIDs []uuid.UUID, photoKey string, recordedBy *uuid.UUID) (*Transaction, error) {
	return NewTransaction(TransactionTypeReturned, clientID, bottleIDs, photoKey, recordedBy)
}

// BottleCount returns how many bottles this transaction covers
func (t *Transaction) BottleCount() int {
	return len(t.Bottles)
}

// BottleIDs returns the IDs of the bottles this transaction covers
func (t *Transaction) BottleIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(t.Bottles))
	for i, link := range t.Bottles {
		ids[i] = link.BottleID
	}
	return ids
}

// IsDelivery returns true for delivery transactions
func (t *Transaction) IsDelivery() bool {
	return t.Type == TransactionTypeDelivered
}
