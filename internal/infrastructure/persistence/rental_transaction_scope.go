package persistence

import (
	"context"

	apprental "github.com/bottleops/backend/internal/application/rental"
	"github.com/bottleops/backend/internal/domain/inventory"
	"github.com/bottleops/backend/internal/domain/rental"
	"gorm.io/gorm"
)

// GormRentalTransactionScope implements the rental TransactionScope
// using GORM transactions. Recording a movement writes the transaction
// and flips bottle statuses in one database transaction.
type GormRentalTransactionScope struct {
	db *gorm.DB
}

// NewGormRentalTransactionScope creates a new GormRentalTransactionScope
func NewGormRentalTransactionScope(db *gorm.DB) *GormRentalTransactionScope {
	return &GormRentalTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormRentalTransactionScope) Execute(ctx context.Context, fn func(repos apprental.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&rentalTransactionalRepositories{tx: tx})
	})
}

// rentalTransactionalRepositories provides repositories bound to the
// current transaction
type rentalTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *rentalTransactionalRepositories) BottleRepo() inventory.BottleRepository {
	return NewGormBottleRepository(r.tx)
}

func (r *rentalTransactionalRepositories) RentalTransactionRepo() rental.TransactionRepository {
	return NewGormTransactionRepository(r.tx)
}

// Ensure interface compliance
var _ apprental.TransactionScope = (*GormRentalTransactionScope)(nil)
var _ apprental.TransactionalRepositories = (*rentalTransactionalRepositories)(nil)
