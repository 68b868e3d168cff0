package persistence

import (
	"context"
	"database/sql"

	appbilling "github.com/bottleops/backend/internal/application/billing"
	"github.com/bottleops/backend/internal/domain/billing"
	"github.com/bottleops/backend/internal/domain/rental"
	"gorm.io/gorm"
)

// GormBillingTransactionScope implements the billing TransactionScope
// using GORM transactions. Committing a bill writes the bill row, its
// links and the billed flags in one database transaction.
//
// Transactions run at SERIALIZABLE isolation: the eligibility sweep
// reads unbilled rows and then flags them, so two concurrent sweeps
// at a weaker level could both select the same rows and bill them
// twice. Under serializable one of the two commits fails instead.
type GormBillingTransactionScope struct {
	db *gorm.DB
}

// NewGormBillingTransactionScope creates a new GormBillingTransactionScope
func NewGormBillingTransactionScope(db *gorm.DB) *GormBillingTransactionScope {
	return &GormBillingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormBillingTransactionScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&billingTransactionalRepositories{tx: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// billingTransactionalRepositories provides repositories bound to the
// current transaction
type billingTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *billingTransactionalRepositories) BillRepo() billing.BillRepository {
	return NewGormBillRepository(r.tx)
}

func (r *billingTransactionalRepositories) PricingRepo() billing.PricingRepository {
	return NewGormPricingRepository(r.tx)
}

func (r *billingTransactionalRepositories) RentalTransactionRepo() rental.TransactionRepository {
	return NewGormTransactionRepository(r.tx)
}

// Ensure interface compliance
var _ appbilling.TransactionScope = (*GormBillingTransactionScope)(nil)
var _ appbilling.TransactionalRepositories = (*billingTransactionalRepositories)(nil)
