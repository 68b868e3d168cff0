package billing

import (
	"context"

	"github.com/bottleops/backend/internal/domain/billing"
	"github.com/bottleops/backend/internal/domain/rental"
)

// TransactionScope provides transactional access to the repositories the
// billing ledger touches. Everything executed within a scope commits or
// rolls back as one unit, which is what keeps the bill, its links and the
// billed flags consistent.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the
// current transaction. The bill aggregate owns its BillTransaction links;
// the rental transaction repository is included because committing a bill
// flips the billed flag on the covered transactions.
type TransactionalRepositories interface {
	BillRepo() billing.BillRepository
	PricingRepo() billing.PricingRepository
	RentalTransactionRepo() rental.TransactionRepository
}

// NoOpTransactionScope runs scope functions without a real transaction.
// Used by tests that inject mock repositories.
type NoOpTransactionScope struct {
	billRepo    billing.BillRepository
	pricingRepo billing.PricingRepository
	rentalRepo  rental.TransactionRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	billRepo billing.BillRepository,
	pricingRepo billing.PricingRepository,
	rentalRepo rental.TransactionRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		billRepo:    billRepo,
		pricingRepo: pricingRepo,
		rentalRepo:  rentalRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) BillRepo() billing.BillRepository {
	return s.billRepo
}

func (s *NoOpTransactionScope) PricingRepo() billing.PricingRepository {
	return s.pricingRepo
}

func (s *NoOpTransactionScope) RentalTransactionRepo() rental.TransactionRepository {
	return s.rentalRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
