package persistence

import (
	"context"
	"errors"

	"github.com/bottleops/backend/internal/domain/billing"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBillRepository implements BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// Create stores the bill and all of its BillTransaction links
func (r *GormBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

// FindByID finds a bill by ID with its transaction links
func (r *GormBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	var bill billing.Bill
	if err := r.db.WithContext(ctx).
		Preload("Links").
		First(&bill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// List lists bills matching the filter, newest first
func (r *GormBillRepository) List(ctx context.Context, filter billing.BillFilter) ([]*billing.Bill, int64, error) {
	var total int64
	countQuery := r.applyFilter(r.db.WithContext(ctx).Model(&billing.Bill{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.applyFilter(r.db.WithContext(ctx).Model(&billing.Bill{}), filter).
		Preload("Links").
		Order("bill_date DESC, created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var bills []*billing.Bill
	if err := query.Find(&bills).Error; err != nil {
		return nil, 0, err
	}
	return bills, total, nil
}

// Save updates a bill. Links are written at creation and never change,
// so association writes are skipped. The update carries the aggregate
// version as a predicate: callers increment the version before saving,
// and a row rewritten in between makes the update match zero rows.
func (r *GormBillRepository) Save(ctx context.Context, bill *billing.Bill) error {
	result := r.db.WithContext(ctx).
		Omit("Links").
		Where("version = ?", bill.Version-1).
		Save(bill)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete removes the bill and its links
func (r *GormBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&billing.BillTransaction{}, "bill_id = ?", id).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&billing.Bill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CustomBilledTransactionIDs returns the IDs of every transaction of
// the client already linked to a custom bill
func (r *GormBillRepository) CustomBilledTransactionIDs(ctx context.Context, clientID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&billing.BillTransaction{}).
		Joins("JOIN bills ON bills.id = bill_transactions.bill_id").
		Where("bills.client_id = ? AND bills.bill_type = ?", clientID, billing.BillTypeCustom).
		Pluck("bill_transactions.transaction_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Count counts bills matching the filter
func (r *GormBillRepository) Count(ctx context.Context, filter billing.BillFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&billing.Bill{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies the typed filter without pagination
func (r *GormBillRepository) applyFilter(query *gorm.DB, filter billing.BillFilter) *gorm.DB {
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Paid != nil {
		query = query.Where("paid = ?", *filter.Paid)
	}
	if filter.BillType != nil {
		query = query.Where("bill_type = ?", *filter.BillType)
	}
	return query
}

// Ensure GormBillRepository implements BillRepository
var _ billing.BillRepository = (*GormBillRepository)(nil)
