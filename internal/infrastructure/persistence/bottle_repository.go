package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/bottleops/backend/internal/domain/inventory"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBottleRepository implements BottleRepository using GORM
type GormBottleRepository struct {
	db *gorm.DB
}

// NewGormBottleRepository creates a new GormBottleRepository
func NewGormBottleRepository(db *gorm.DB) *GormBottleRepository {
	return &GormBottleRepository{db: db}
}

// FindByID finds a bottle by its ID
func (r *GormBottleRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Bottle, error) {
	var bottle inventory.Bottle
	if err := r.db.WithContext(ctx).First(&bottle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bottle, nil
}

// FindByCode finds a bottle by its unique code
func (r *GormBottleRepository) FindByCode(ctx context.Context, code string) (*inventory.Bottle, error) {
	var bottle inventory.Bottle
	if err := r.db.WithContext(ctx).First(&bottle, "code = ?", strings.ToUpper(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bottle, nil
}

// FindByIDs finds multiple bottles by their IDs
func (r *GormBottleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.Bottle, error) {
	if len(ids) == 0 {
		return []inventory.Bottle{}, nil
	}
	var bottles []inventory.Bottle
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&bottles).Error; err != nil {
		return nil, err
	}
	return bottles, nil
}

// FindByCodes finds multiple bottles by their codes
func (r *GormBottleRepository) FindByCodes(ctx context.Context, codes []string) ([]inventory.Bottle, error) {
	if len(codes) == 0 {
		return []inventory.Bottle{}, nil
	}

	upperCodes := make([]string, len(codes))
	for i, code := range codes {
		upperCodes[i] = strings.ToUpper(code)
	}

	var bottles []inventory.Bottle
	if err := r.db.WithContext(ctx).Where("code IN ?", upperCodes).Find(&bottles).Error; err != nil {
		return nil, err
	}
	return bottles, nil
}

// FindByStatus finds bottles with the given status
func (r *GormBottleRepository) FindByStatus(ctx context.Context, status inventory.BottleStatus, filter shared.Filter) ([]inventory.Bottle, error) {
	var bottles []inventory.Bottle
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.Bottle{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&bottles).Error; err != nil {
		return nil, err
	}
	return bottles, nil
}

// FindAll finds all bottles matching the filter
func (r *GormBottleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Bottle, error) {
	var bottles []inventory.Bottle
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Bottle{}), filter)

	if err := query.Find(&bottles).Error; err != nil {
		return nil, err
	}
	return bottles, nil
}

// ExistingCodes returns which of the given codes are already registered
func (r *GormBottleRepository) ExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	if len(codes) == 0 {
		return []string{}, nil
	}
	var existing []string
	if err := r.db.WithContext(ctx).
		Model(&inventory.Bottle{}).
		Where("code IN ?", codes).
		Pluck("code", &existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// Save creates or updates a bottle
func (r *GormBottleRepository) Save(ctx context.Context, bottle *inventory.Bottle) error {
	return r.db.WithContext(ctx).Save(bottle).Error
}

// SaveBatch creates or updates multiple bottles
func (r *GormBottleRepository) SaveBatch(ctx context.Context, bottles []*inventory.Bottle) error {
	if len(bottles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(bottles).Error
}

// Count counts bottles matching the filter
func (r *GormBottleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.Bottle{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Summary returns bottle counts by status
func (r *GormBottleRepository) Summary(ctx context.Context) (inventory.StockSummary, error) {
	var summary inventory.StockSummary

	rows := []struct {
		Status inventory.BottleStatus
		Total  int64
	}{}
	if err := r.db.WithContext(ctx).
		Model(&inventory.Bottle{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&rows).Error; err != nil {
		return inventory.StockSummary{}, err
	}

	for _, row := range rows {
		summary.Total += row.Total
		switch row.Status {
		case inventory.BottleStatusInStock:
			summary.InStock = row.Total
		case inventory.BottleStatusDelivered:
			summary.Delivered = row.Total
		}
	}
	return summary, nil
}

// applyFilter applies filter options to the query
func (r *GormBottleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("code ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormBottleRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("code LIKE ?", "%"+strings.ToUpper(filter.Search)+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormBottleRepository implements BottleRepository
var _ inventory.BottleRepository = (*GormBottleRepository)(nil)
