package persistence

import (
	"context"
	"errors"

	"github.com/bottleops/backend/internal/domain/rental"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
// All reads preload the bottle links so BottleCount is accurate.
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create persists a new transaction with its bottle links
func (r *GormTransactionRepository) Create(ctx context.Context, tx *rental.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// FindByID finds a transaction by ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Transaction, error) {
	var tx rental.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Bottles").
		First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tx, nil
}

// FindByIDsForClient finds the given transactions, restricted to one client
func (r *GormTransactionRepository) FindByIDsForClient(ctx context.Context, clientID uuid.UUID, ids []uuid.UUID) ([]rental.Transaction, error) {
	if len(ids) == 0 {
		return []rental.Transaction{}, nil
	}
	var txs []rental.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Bottles").
		Where("client_id = ? AND id IN ?", clientID, ids).
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// FindUnbilledByClient finds all transactions of a client with
// billed = false, excluding the given transaction IDs
func (r *GormTransactionRepository) FindUnbilledByClient(ctx context.Context, clientID uuid.UUID, exclude []uuid.UUID) ([]rental.Transaction, error) {
	query := r.db.WithContext(ctx).
		Preload("Bottles").
		Where("client_id = ? AND billed = ?", clientID, false)
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}

	var txs []rental.Transaction
	if err := query.Order("occurred_at ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// List lists transactions matching the filter, newest first
func (r *GormTransactionRepository) List(ctx context.Context, filter rental.TransactionFilter) ([]rental.Transaction, int64, error) {
	var total int64
	countQuery := r.applyFilter(r.db.WithContext(ctx).Model(&rental.Transaction{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.applyFilter(r.db.WithContext(ctx).Model(&rental.Transaction{}), filter).
		Preload("Bottles").
		Order("occurred_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var txs []rental.Transaction
	if err := query.Find(&txs).Error; err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

// SetBilled updates the billed flag on the given transactions
func (r *GormTransactionRepository) SetBilled(ctx context.Context, ids []uuid.UUID, billed bool) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&rental.Transaction{}).
		Where("id IN ?", ids).
		Update("billed", billed).Error
}

// applyFilter applies the typed filter without pagination
func (r *GormTransactionRepository) applyFilter(query *gorm.DB, filter rental.TransactionFilter) *gorm.DB {
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.Billed != nil {
		query = query.Where("billed = ?", *filter.Billed)
	}
	if filter.RecordedBy != nil {
		query = query.Where("recorded_by = ?", *filter.RecordedBy)
	}
	if filter.From != nil {
		query = query.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("occurred_at <= ?", *filter.To)
	}
	return query
}

// Ensure GormTransactionRepository implements TransactionRepository
var _ rental.TransactionRepository = (*GormTransactionRepository)(nil)
