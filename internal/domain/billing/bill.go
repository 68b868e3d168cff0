package billing

import (
	"time"

	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillType distinguishes the automatic sweep from a hand-picked selection.
type BillType string

const (
	BillTypeAuto   BillType = "auto"
	BillTypeCustom BillType = "custom"
)

// Bill is the aggregate root for a generated bill. It snapshots the full
// totals breakdown at generation time so later price or tax changes never
// alter an existing bill.
type Bill struct {
	shared.BaseAggregateRoot
	ClientID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
	BillDate       time.Time       `gorm:"not null" json:"bill_date"`
	BillType       BillType        `gorm:"type:varchar(10);not null" json:"bill_type"`
	DeliveredCount int             `gorm:"not null" json:"delivered_count"`
	ReturnedCount  int             `gorm:"not null" json:"returned_count"`
	PendingBottles int             `gorm:"not null" json:"pending_bottles"`
	PricePerBottle decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_per_bottle"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	DiscountPct    decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"discount_pct"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"discount_amount"`
	TaxableValue   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"taxable_value"`
	TaxPct         decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"tax_pct"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Description    string          `gorm:"type:text" json:"description"`
	GeneratedBy    *uuid.UUID      `gorm:"type:uuid" json:"generated_by,omitempty"`
	Paid           bool            `gorm:"not null;default:false" json:"paid"`
	PaidDate       *time.Time      `json:"paid_date,omitempty"`
	PaidBy         *uuid.UUID      `gorm:"type:uuid" json:"paid_by,omitempty"`

	Links []BillTransaction `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"links,omitempty"`
}

// BillTransaction links a bill to one transaction it covers. The link set
// is the exact scope for reversal: deleting the bill un-bills these
// transactions and no others.
type BillTransaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bill_transaction" json:"bill_id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bill_transaction;index" json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (BillTransaction) TableName() string {
	return "bill_transactions"
}

// NewBill creates an unpaid bill from a computed breakdown and the set of
// transactions it covers.
func NewBill(clientID uuid.UUID, billType BillType, breakdown TotalsBreakdown, delivered, returned, pending int, transactionIDs []uuid.UUID, generatedBy *uuid.UUID, description string) (*Bill, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client is required")
	}
	if billType != BillTypeAuto && billType != BillTypeCustom {
		return nil, shared.NewDomainError("INVALID_BILL_TYPE", "Bill type must be auto or custom")
	}

	bill := &Bill{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          clientID,
		BillDate:          time.Now(),
		BillType:          billType,
		DeliveredCount:    delivered,
		ReturnedCount:     returned,
		PendingBottles:    pending,
		PricePerBottle:    breakdown.PricePerBottle,
		Subtotal:          breakdown.Subtotal,
		DiscountPct:       breakdown.DiscountPct,
		DiscountAmount:    breakdown.DiscountAmount,
		TaxableValue:      breakdown.TaxableValue,
		TaxPct:            breakdown.TaxPct,
		TaxAmount:         breakdown.TaxAmount,
		TotalAmount:       breakdown.TotalAmount,
		Description:       description,
		GeneratedBy:       generatedBy,
	}

	bill.Links = make([]BillTransaction, 0, len(transactionIDs))
	for _, txID := range transactionIDs {
		bill.Links = append(bill.Links, BillTransaction{
			ID:            uuid.New(),
			BillID:        bill.ID,
			TransactionID: txID,
			CreatedAt:     time.Now(),
		})
	}

	bill.AddDomainEvent(NewBillGeneratedEvent(bill.ID, clientID, billType, bill.TotalAmount))
	return bill, nil
}

// MarkPaid transitions the bill to its terminal paid state. Paying twice
// is rejected; there is no way back.
func (b *Bill) MarkPaid(paidBy *uuid.UUID) error {
	if b.Paid {
		return ErrBillAlreadyPaid
	}
	now := time.Now()
	b.Paid = true
	b.PaidDate = &now
	b.PaidBy = paidBy
	b.UpdatedAt = now
	b.IncrementVersion()
	b.AddDomainEvent(NewBillPaidEvent(b.ID, b.ClientID, b.TotalAmount))
	return nil
}

// EnsureDeletable reports whether the bill may still be reversed.
func (b *Bill) EnsureDeletable() error {
	if b.Paid {
		return ErrBillAlreadyPaid
	}
	return nil
}

// LinkedTransactionIDs returns the IDs of the transactions this bill covers.
func (b *Bill) LinkedTransactionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.Links))
	for _, link := range b.Links {
		ids = append(ids, link.TransactionID)
	}
	return ids
}

func (b *Bill) IsCustom() bool {
	return b.BillType == BillTypeCustom
}

func (Bill) TableName() string {
	return "bills"
}
