package inventory

import (
	"context"
	"testing"

	"github.com/bottleops/backend/internal/domain/inventory"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBottleRepository is a mock implementation of inventory.BottleRepository
type MockBottleRepository struct {
	mock.Mock
}

func (m *MockBottleRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Bottle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Bottle), args.Error(1)
}

func (m *MockBottleRepository) FindByCode(ctx context.Context, code string) (*inventory.Bottle, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Bottle), args.Error(1)
}

func (m *MockBottleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.Bottle, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]inventory.Bottle), args.Error(1)
}

func (m *MockBottleRepository) FindByCodes(ctx context.Context, codes []string) ([]inventory.Bottle, error) {
	args := m.Called(ctx, codes)
	return args.Get(0).([]inventory.Bottle), args.Error(1)
}

func (m *MockBottleRepository) FindByStatus(ctx context.Context, status inventory.BottleStatus, filter shared.Filter) ([]inventory.Bottle, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]inventory.Bottle), args.Error(1)
}

func (m *MockBottleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Bottle, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Bottle), args.Error(1)
}

func (m *MockBottleRepository) ExistingCodes(ctx context.Context, codes []string) ([]string, error) {
	args := m.Called(ctx, codes)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBottleRepository) Save(ctx context.Context, bottle *inventory.Bottle) error {
	args := m.Called(ctx, bottle)
	return args.Error(0)
}

func (m *MockBottleRepository) SaveBatch(ctx context.Context, bottles []*inventory.Bottle) error {
	args := m.Called(ctx, bottles)
	return args.Error(0)
}

func (m *MockBottleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBottleRepository) Summary(ctx context.Context) (inventory.StockSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(inventory.StockSummary), args.Error(1)
}

func TestRegisterSeries(t *testing.T) {
	repo := new(MockBottleRepository)
	service := NewBottleService(repo)

	repo.On("ExistingCodes", mock.Anything, []string{"SV-101", "SV-102", "SV-103"}).
		Return([]string{}, nil)
	repo.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.RegisterSeries(context.Background(), RegisterSeriesRequest{
		Prefix: "sv",
		Start:  101,
		End:    103,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Registered)
	assert.Empty(t, resp.Skipped)
	repo.AssertExpectations(t)
}

func TestRegisterSeries_SkipsExistingCodes(t *testing.T) {
	repo := new(MockBottleRepository)
	service := NewBottleService(repo)

	repo.On("ExistingCodes", mock.Anything, []string{"SV-101", "SV-102", "SV-103"}).
		Return([]string{"SV-102"}, nil)
	repo.On("SaveBatch", mock.Anything, mock.MatchedBy(func(bottles []*inventory.Bottle) bool {
		return len(bottles) == 2
	})).Return(nil)

	resp, err := service.RegisterSeries(context.Background(), RegisterSeriesRequest{
		Prefix: "SV",
		Start:  101,
		End:    103,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Registered)
	assert.Equal(t, []string{"SV-102"}, resp.Skipped)
}

func TestRegisterSeries_AllTaken(t *testing.T) {
	repo := new(MockBottleRepository)
	service := NewBottleService(repo)

	repo.On("ExistingCodes", mock.Anything, []string{"SV-101"}).Return([]string{"SV-101"}, nil)

	_, err := service.RegisterSeries(context.Background(), RegisterSeriesRequest{
		Prefix: "SV",
		Start:  101,
		End:    101,
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything)
}

func TestRegisterSeries_InvalidRange(t *testing.T) {
	repo := new(MockBottleRepository)
	service := NewBottleService(repo)

	_, err := service.RegisterSeries(context.Background(), RegisterSeriesRequest{
		Prefix: "SV",
		Start:  10,
		End:    5,
	})
	assert.Error(t, err)
}
