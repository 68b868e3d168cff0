package billing

import (
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const AggregateTypeBill = "Bill"

// BillGeneratedEvent is raised when a new bill is committed.
type BillGeneratedEvent struct {
	shared.BaseDomainEvent
	ClientID    uuid.UUID       `json:"client_id"`
	BillType    BillType        `json:"bill_type"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

func NewBillGeneratedEvent(billID, clientID uuid.UUID, billType BillType, totalAmount decimal.Decimal) *BillGeneratedEvent {
	return &BillGeneratedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("bill.generated", AggregateTypeBill, billID),
		ClientID:        clientID,
		BillType:        billType,
		TotalAmount:     totalAmount,
	}
}

// BillPaidEvent is raised when a bill reaches its terminal paid state.
type BillPaidEvent struct {
	shared.BaseDomainEvent
	ClientID    uuid.UUID       `json:"client_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

func NewBillPaidEvent(billID, clientID uuid.UUID, totalAmount decimal.Decimal) *BillPaidEvent {
	return &BillPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("bill.paid", AggregateTypeBill, billID),
		ClientID:        clientID,
		TotalAmount:     totalAmount,
	}
}
