package rental

import (
	"context"

	"github.com/bottleops/backend/internal/domain/inventory"
	"github.com/bottleops/backend/internal/domain/rental"
)

// TransactionScope provides transactional access to the repositories a
// rental movement touches. Recording a delivery or return writes the
// transaction and flips bottle statuses in one database transaction.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the
// current transaction.
type TransactionalRepositories interface {
	BottleRepo() inventory.BottleRepository
	RentalTransactionRepo() rental.TransactionRepository
}

// NoOpTransactionScope runs scope functions without a real transaction.
// Used by tests that inject mock repositories.
type NoOpTransactionScope struct {
	bottleRepo inventory.BottleRepository
	rentalRepo rental.TransactionRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(bottleRepo inventory.BottleRepository, rentalRepo rental.TransactionRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		bottleRepo: bottleRepo,
		rentalRepo: rentalRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) BottleRepo() inventory.BottleRepository {
	return s.bottleRepo
}

func (s *NoOpTransactionScope) RentalTransactionRepo() rental.TransactionRepository {
	return s.rentalRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
