package inventory

import (
	"context"

	"github.com/bottleops/backend/internal/domain/inventory"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BottleService handles bottle inventory operations
type BottleService struct {
	bottleRepo inventory.BottleRepository
}

// NewBottleService creates a new BottleService
func NewBottleService(bottleRepo inventory.BottleRepository) *BottleService {
	return &BottleService{bottleRepo: bottleRepo}
}

// RegisterSeries registers a numbered bottle series. Codes that already
// exist are skipped and reported back rather than failing the whole batch.
func (s *BottleService) RegisterSeries(ctx context.Context, req RegisterSeriesRequest) (*RegisterSeriesResponse, error) {
	codes, err := inventory.GenerateCodeSeries(req.Prefix, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	existing, err := s.bottleRepo.ExistingCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, code := range existing {
		taken[code] = true
	}

	bottles := make([]*inventory.Bottle, 0, len(codes))
	skipped := make([]string, 0)
	for _, code := range codes {
		if taken[code] {
			skipped = append(skipped, code)
			continue
		}
		bottle, err := inventory.NewBottle(code)
		if err != nil {
			return nil, err
		}
		bottles = append(bottles, bottle)
	}

	if len(bottles) == 0 {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "All bottles in this series are already registered")
	}
	if err := s.bottleRepo.SaveBatch(ctx, bottles); err != nil {
		return nil, err
	}

	return &RegisterSeriesResponse{
		Registered: len(bottles),
		Skipped:    skipped,
	}, nil
}

// GetByID retrieves a bottle by ID
func (s *BottleService) GetByID(ctx context.Context, id uuid.UUID) (*BottleResponse, error) {
	bottle, err := s.bottleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToBottleResponse(bottle)
	return &response, nil
}

// GetByCode retrieves a bottle by its printed code
func (s *BottleService) GetByCode(ctx context.Context, code string) (*BottleResponse, error) {
	bottle, err := s.bottleRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToBottleResponse(bottle)
	return &response, nil
}

// List retrieves bottles with filtering and pagination
func (s *BottleService) List(ctx context.Context, filter BottleListFilter) ([]BottleResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	domainFilter.OrderBy = "code"
	domainFilter.OrderDir = "asc"
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	var bottles []inventory.Bottle
	var err error
	if filter.Status != "" {
		bottles, err = s.bottleRepo.FindByStatus(ctx, inventory.BottleStatus(filter.Status), domainFilter)
		domainFilter.Filters["status"] = filter.Status
	} else {
		bottles, err = s.bottleRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.bottleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]BottleResponse, 0, len(bottles))
	for i := range bottles {
		responses = append(responses, ToBottleResponse(&bottles[i]))
	}
	return responses, total, nil
}

// Summary returns bottle counts by status
func (s *BottleService) Summary(ctx context.Context) (*inventory.StockSummary, error) {
	summary, err := s.bottleRepo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
