package billing

import (
	"context"

	"github.com/bottleops/backend/internal/domain/billing"
	"github.com/bottleops/backend/internal/domain/partner"
	"github.com/bottleops/backend/internal/domain/rental"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/bottleops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService owns the transaction-billing-state machine: generating
// bills, reversing unpaid ones and settling them. Every state change runs
// inside a TransactionScope so the bill row, its links and the billed
// flags on transactions always move together.
type LedgerService struct {
	scope         TransactionScope
	clientRepo    partner.ClientRepository
	defaultTaxPct decimal.Decimal
}

// NewLedgerService creates a new LedgerService. defaultTaxPct is applied
// when a request does not carry its own tax percentage.
func NewLedgerService(scope TransactionScope, clientRepo partner.ClientRepository, defaultTaxPct decimal.Decimal) *LedgerService {
	return &LedgerService{
		scope:         scope,
		clientRepo:    clientRepo,
		defaultTaxPct: defaultTaxPct,
	}
}

// GenerateAutoBill sweeps all unbilled transactions of the client into a
// new bill. Transactions already linked to a custom bill stay out of the
// sweep. The sweep fails with NOTHING_TO_BILL only when the client has no
// unbilled activity at all; a client who returned more than they took
// still gets a bill recording the movement, billed at zero quantity.
func (s *LedgerService) GenerateAutoBill(ctx context.Context, req GenerateAutoBillRequest) (*BillResponse, error) {
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	var response BillResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		customIDs, err := repos.BillRepo().CustomBilledTransactionIDs(ctx, req.ClientID)
		if err != nil {
			return err
		}

		transactions, err := repos.RentalTransactionRepo().FindUnbilledByClient(ctx, req.ClientID, customIDs)
		if err != nil {
			return err
		}

		delivered, returned := countBottles(transactions)
		if delivered == 0 && returned == 0 {
			return billing.ErrNothingToBill
		}
		pending := delivered - returned

		bill, err := s.buildBill(ctx, repos, billing.BillTypeAuto, req.ClientID, transactions, delivered, returned, pending, req.DiscountPct, req.TaxPct, req.GeneratedBy, req.Description)
		if err != nil {
			return err
		}

		if err := s.commitBill(ctx, repos, bill); err != nil {
			return err
		}
		response = ToBillResponse(bill)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GenerateCustomBill bills a hand-picked set of the client's transactions.
// The selection must be non-empty, must not contain any transaction
// already covered by a bill, and must leave a positive pending bottle
// count.
func (s *LedgerService) GenerateCustomBill(ctx context.Context, req GenerateCustomBillRequest) (*BillResponse, error) {
	if len(req.TransactionIDs) == 0 {
		return nil, billing.ErrEmptySelection
	}
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	var response BillResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		transactions, err := repos.RentalTransactionRepo().FindByIDsForClient(ctx, req.ClientID, req.TransactionIDs)
		if err != nil {
			return err
		}
		if len(transactions) != len(req.TransactionIDs) {
			return shared.ErrNotFound
		}

		// Every committed bill, auto or custom, flags its transactions
		// as billed, so the flag alone rules out overlap with any
		// existing bill.
		for _, tx := range transactions {
			if tx.Billed {
				return billing.ErrAlreadyBilled
			}
		}

		delivered, returned := countBottles(transactions)
		pending := delivered - returned
		if pending <= 0 {
			return billing.ErrNothingToBill
		}

		bill, err := s.buildBill(ctx, repos, billing.BillTypeCustom, req.ClientID, transactions, delivered, returned, pending, req.DiscountPct, req.TaxPct, req.GeneratedBy, req.Description)
		if err != nil {
			return err
		}

		if err := s.commitBill(ctx, repos, bill); err != nil {
			return err
		}
		response = ToBillResponse(bill)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// DeleteBill reverses an unpaid bill: the bill and its links are removed
// and exactly the linked transactions go back to unbilled. Transactions
// covered by other bills are never touched.
func (s *LedgerService) DeleteBill(ctx context.Context, billID uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.BillRepo().FindByID(ctx, billID)
		if err != nil {
			return err
		}
		if err := bill.EnsureDeletable(); err != nil {
			return err
		}

		linked := bill.LinkedTransactionIDs()
		if len(linked) > 0 {
			if err := repos.RentalTransactionRepo().SetBilled(ctx, linked, false); err != nil {
				return err
			}
		}
		return repos.BillRepo().Delete(ctx, billID)
	})
}

// MarkPaid settles a bill. Paid is terminal; paying twice fails with
// BILL_ALREADY_PAID and nothing else about the bill changes.
func (s *LedgerService) MarkPaid(ctx context.Context, billID uuid.UUID, paidBy *uuid.UUID) (*BillResponse, error) {
	var response BillResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.BillRepo().FindByID(ctx, billID)
		if err != nil {
			return err
		}
		if err := bill.MarkPaid(paidBy); err != nil {
			return err
		}
		if err := repos.BillRepo().Save(ctx, bill); err != nil {
			return err
		}
		response = ToBillResponse(bill)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetBill retrieves a single bill with its linked transactions.
func (s *LedgerService) GetBill(ctx context.Context, billID uuid.UUID) (*BillResponse, error) {
	var response BillResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bill, err := repos.BillRepo().FindByID(ctx, billID)
		if err != nil {
			return err
		}
		response = ToBillResponse(bill)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ListBills retrieves bills with filtering and pagination.
func (s *LedgerService) ListBills(ctx context.Context, filter BillListFilter) ([]BillResponse, int64, error) {
	domainFilter := billing.DefaultBillFilter()
	domainFilter.ClientID = filter.ClientID
	domainFilter.Paid = filter.Paid
	if filter.BillType != "" {
		billType := billing.BillType(filter.BillType)
		domainFilter.BillType = &billType
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	var responses []BillResponse
	var total int64
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bills, count, err := repos.BillRepo().List(ctx, domainFilter)
		if err != nil {
			return err
		}
		responses = make([]BillResponse, 0, len(bills))
		for _, bill := range bills {
			responses = append(responses, ToBillResponse(bill))
		}
		total = count
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

// GetClientSummary reports the client's currently billable activity.
func (s *LedgerService) GetClientSummary(ctx context.Context, clientID uuid.UUID) (*ClientBillingSummary, error) {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return nil, err
	}

	var summary ClientBillingSummary
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		customIDs, err := repos.BillRepo().CustomBilledTransactionIDs(ctx, clientID)
		if err != nil {
			return err
		}
		transactions, err := repos.RentalTransactionRepo().FindUnbilledByClient(ctx, clientID, customIDs)
		if err != nil {
			return err
		}
		pricing, err := repos.PricingRepo().GetCurrent(ctx)
		if err != nil {
			return err
		}

		delivered, returned := countBottles(transactions)
		pending := delivered - returned
		billable := pending
		if billable < 0 {
			billable = 0
		}
		summary = ClientBillingSummary{
			ClientID:          clientID,
			UnbilledDelivered: delivered,
			UnbilledReturned:  returned,
			UnbilledPending:   pending,
			PricePerBottle:    pricing.PricePerBottle,
			EstimatedDue:      valueobject.NewMoneyINR(pricing.PricePerBottle).MultiplyByInt(int64(billable)).Round(2),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// PreviewTotals computes a billing breakdown without creating anything.
// A missing price falls back to the current pricing record, a missing
// tax percentage to the configured default.
func (s *LedgerService) PreviewTotals(ctx context.Context, req PreviewTotalsRequest) (*TotalsResponse, error) {
	price := decimal.Zero
	if req.PricePerBottle != nil {
		price = *req.PricePerBottle
	} else {
		err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
			pricing, err := repos.PricingRepo().GetCurrent(ctx)
			if err != nil {
				return err
			}
			price = pricing.PricePerBottle
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	discount := decimal.Zero
	if req.DiscountPct != nil {
		discount = *req.DiscountPct
	}
	tax := s.defaultTaxPct
	if req.TaxPct != nil {
		tax = *req.TaxPct
	}

	breakdown, err := billing.ComputeTotals(req.Quantity, price, discount, tax)
	if err != nil {
		return nil, err
	}
	resp := ToTotalsResponse(breakdown)
	return &resp, nil
}

// buildBill computes the totals with the current price and assembles the
// bill aggregate. The billed quantity is the delivered bottle count of
// the selected set; returns reduce the pending count on the bill but
// not the amount charged.
func (s *LedgerService) buildBill(ctx context.Context, repos TransactionalRepositories, billType billing.BillType, clientID uuid.UUID, transactions []rental.Transaction, delivered, returned, pending int, discountPct, taxPct *decimal.Decimal, generatedBy *uuid.UUID, description string) (*billing.Bill, error) {
	pricing, err := repos.PricingRepo().GetCurrent(ctx)
	if err != nil {
		return nil, err
	}

	discount := decimal.Zero
	if discountPct != nil {
		discount = *discountPct
	}
	tax := s.defaultTaxPct
	if taxPct != nil {
		tax = *taxPct
	}

	breakdown, err := billing.ComputeTotals(delivered, pricing.PricePerBottle, discount, tax)
	if err != nil {
		return nil, err
	}

	txIDs := make([]uuid.UUID, 0, len(transactions))
	for _, tx := range transactions {
		txIDs = append(txIDs, tx.ID)
	}

	return billing.NewBill(clientID, billType, breakdown, delivered, returned, pending, txIDs, generatedBy, description)
}

// commitBill persists the bill with its links and flips the billed flag
// on every covered transaction in the same database transaction.
func (s *LedgerService) commitBill(ctx context.Context, repos TransactionalRepositories, bill *billing.Bill) error {
	if err := repos.BillRepo().Create(ctx, bill); err != nil {
		return err
	}
	linked := bill.LinkedTransactionIDs()
	if len(linked) == 0 {
		return nil
	}
	return repos.RentalTransactionRepo().SetBilled(ctx, linked, true)
}

func countBottles(transactions []rental.Transaction) (delivered, returned int) {
	for _, tx := range transactions {
		if tx.IsDelivery() {
			delivered += tx.BottleCount()
		} else {
			returned += tx.BottleCount()
		}
	}
	return delivered, returned
}
