package billing

import (
	"time"

	"github.com/bottleops/backend/internal/domain/billing"
	"github.com/bottleops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Bill DTOs
// =============================================================================

// GenerateAutoBillRequest sweeps every unbilled transaction of a client
// into one bill. Transactions already covered by a custom bill are left
// alone.
type GenerateAutoBillRequest struct {
	ClientID    uuid.UUID        `json:"client_id" binding:"required"`
	DiscountPct *decimal.Decimal `json:"discount_pct"`
	TaxPct      *decimal.Decimal `json:"tax_pct"`
	Description string           `json:"description" binding:"max=500"`
	GeneratedBy *uuid.UUID       `json:"-"` // Set from JWT context, not from request body
}

// GenerateCustomBillRequest bills a hand-picked set of transactions.
type GenerateCustomBillRequest struct {
	ClientID       uuid.UUID        `json:"client_id" binding:"required"`
	TransactionIDs []uuid.UUID      `json:"transaction_ids" binding:"required"`
	DiscountPct    *decimal.Decimal `json:"discount_pct"`
	TaxPct         *decimal.Decimal `json:"tax_pct"`
	Description    string           `json:"description" binding:"max=500"`
	GeneratedBy    *uuid.UUID       `json:"-"`
}

// BillResponse represents a bill in API responses
type BillResponse struct {
	ID             uuid.UUID       `json:"id"`
	ClientID       uuid.UUID       `json:"client_id"`
	BillDate       time.Time       `json:"bill_date"`
	BillType       string          `json:"bill_type"`
	DeliveredCount int             `json:"delivered_count"`
	ReturnedCount  int             `json:"returned_count"`
	PendingBottles int             `json:"pending_bottles"`
	PricePerBottle decimal.Decimal `json:"price_per_bottle"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountPct    decimal.Decimal `json:"discount_pct"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableValue   decimal.Decimal `json:"taxable_value"`
	TaxPct         decimal.Decimal `json:"tax_pct"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Description    string          `json:"description"`
	Paid           bool            `json:"paid"`
	PaidDate       *time.Time      `json:"paid_date,omitempty"`
	TransactionIDs []uuid.UUID     `json:"transaction_ids"`
	CreatedAt      time.Time       `json:"created_at"`
}

// BillListFilter represents filter options for the bill list
type BillListFilter struct {
	ClientID *uuid.UUID `form:"client_id"`
	Paid     *bool      `form:"paid"`
	BillType string     `form:"bill_type" binding:"omitempty,oneof=auto custom"`
	Page     int        `form:"page" binding:"min=0"`
	PageSize int        `form:"page_size" binding:"min=0,max=100"`
}

// ClientBillingSummary shows what a client could be billed for right now.
// EstimatedDue is the pending bottle count priced at the current rate,
// before discount and tax.
type ClientBillingSummary struct {
	ClientID          uuid.UUID         `json:"client_id"`
	UnbilledDelivered int               `json:"unbilled_delivered"`
	UnbilledReturned  int               `json:"unbilled_returned"`
	UnbilledPending   int               `json:"unbilled_pending"`
	PricePerBottle    decimal.Decimal   `json:"price_per_bottle"`
	EstimatedDue      valueobject.Money `json:"estimated_due"`
}

// PreviewTotalsRequest computes a billing breakdown without committing
// anything. Price falls back to the current pricing record, tax to the
// configured default.
type PreviewTotalsRequest struct {
	Quantity       int              `json:"quantity" binding:"min=0"`
	PricePerBottle *decimal.Decimal `json:"price_per_bottle"`
	DiscountPct    *decimal.Decimal `json:"discount_pct"`
	TaxPct         *decimal.Decimal `json:"tax_pct"`
}

// TotalsResponse represents a computed billing breakdown
type TotalsResponse struct {
	Quantity       int             `json:"quantity"`
	PricePerBottle decimal.Decimal `json:"price_per_bottle"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountPct    decimal.Decimal `json:"discount_pct"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableValue   decimal.Decimal `json:"taxable_value"`
	TaxPct         decimal.Decimal `json:"tax_pct"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// ToTotalsResponse converts a breakdown to its response representation.
func ToTotalsResponse(b billing.TotalsBreakdown) TotalsResponse {
	return TotalsResponse{
		Quantity:       b.Quantity,
		PricePerBottle: b.PricePerBottle,
		Subtotal:       b.Subtotal,
		DiscountPct:    b.DiscountPct,
		DiscountAmount: b.DiscountAmount,
		TaxableValue:   b.TaxableValue,
		TaxPct:         b.TaxPct,
		TaxAmount:      b.TaxAmount,
		TotalAmount:    b.TotalAmount,
	}
}

// UpdatePricingRequest sets the current per-bottle price.
type UpdatePricingRequest struct {
	PricePerBottle decimal.Decimal `json:"price_per_bottle" binding:"required"`
}

// PricingResponse represents the pricing record in API responses
type PricingResponse struct {
	PricePerBottle decimal.Decimal `json:"price_per_bottle"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToBillResponse converts a bill aggregate to its response representation.
func ToBillResponse(bill *billing.Bill) BillResponse {
	return BillResponse{
		ID:             bill.ID,
		ClientID:       bill.ClientID,
		BillDate:       bill.BillDate,
		BillType:       string(bill.BillType),
		DeliveredCount: bill.DeliveredCount,
		ReturnedCount:  bill.ReturnedCount,
		PendingBottles: bill.PendingBottles,
		PricePerBottle: bill.PricePerBottle,
		Subtotal:       bill.Subtotal,
		DiscountPct:    bill.DiscountPct,
		DiscountAmount: bill.DiscountAmount,
		TaxableValue:   bill.TaxableValue,
		TaxPct:         bill.TaxPct,
		TaxAmount:      bill.TaxAmount,
		TotalAmount:    bill.TotalAmount,
		Description:    bill.Description,
		Paid:           bill.Paid,
		PaidDate:       bill.PaidDate,
		TransactionIDs: bill.LinkedTransactionIDs(),
		CreatedAt:      bill.CreatedAt,
	}
}

// ToPricingResponse converts the pricing record to its response representation.
func ToPricingResponse(pricing *billing.BottlePricing) PricingResponse {
	return PricingResponse{
		PricePerBottle: pricing.PricePerBottle,
		UpdatedAt:      pricing.UpdatedAt,
	}
}
