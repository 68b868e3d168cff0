package rental

import (
	"context"
	"testing"

	"github.com/bottleops/backend/internal/domain/inventory"
	"github.com/bottleops/backend/internal/domain/partner"
	"github.com/bottleops/backend/internal/domain/rental"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

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

// MockTransactionRepository is a mock implementation of rental.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *rental.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByIDsForClient(ctx context.Context, clientID uuid.UUID, ids []uuid.UUID) ([]rental.Transaction, error) {
	args := m.Called(ctx, clientID, ids)
	return args.Get(0).([]rental.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindUnbilledByClient(ctx context.Context, clientID uuid.UUID, exclude []uuid.UUID) ([]rental.Transaction, error) {
	args := m.Called(ctx, clientID, exclude)
	return args.Get(0).([]rental.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context, filter rental.TransactionFilter) ([]rental.Transaction, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]rental.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) SetBilled(ctx context.Context, ids []uuid.UUID, billed bool) error {
	args := m.Called(ctx, ids, billed)
	return args.Error(0)
}

// MockClientRepository is a mock implementation of partner.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindByContact(ctx context.Context, contact string) (*partner.Client, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) ExistsByContact(ctx context.Context, contact string) (bool, error) {
	args := m.Called(ctx, contact)
	return args.Bool(0), args.Error(1)
}

// =============================================================================
// Tests
// =============================================================================

type serviceFixture struct {
	bottleRepo *MockBottleRepository
	txRepo     *MockTransactionRepository
	clientRepo *MockClientRepository
	service    *TransactionService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		bottleRepo: new(MockBottleRepository),
		txRepo:     new(MockTransactionRepository),
		clientRepo: new(MockClientRepository),
	}
	scope := NewNoOpTransactionScope(f.bottleRepo, f.txRepo)
	f.service = NewTransactionService(scope, f.clientRepo)
	return f
}

func activeClient(t *testing.T) *partner.Client {
	t.Helper()
	client, err := partner.NewClient("Sharma Traders", "9876543210", "", "Pune")
	require.NoError(t, err)
	return client
}

func stockBottle(t *testing.T, code string) inventory.Bottle {
	t.Helper()
	bottle, err := inventory.NewBottle(code)
	require.NoError(t, err)
	return *bottle
}

func TestRecordDelivery_Success(t *testing.T) {
	f := newServiceFixture(t)
	client := activeClient(t)
	codes := []string{"SV-101", "SV-102"}
	bottles := []inventory.Bottle{stockBottle(t, "SV-101"), stockBottle(t, "SV-102")}

	f.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	f.bottleRepo.On("FindByCodes", mock.Anything, codes).Return(bottles, nil)
	f.bottleRepo.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)
	f.txRepo.On("Create", mock.Anything, mock.AnythingOfType("*rental.Transaction")).Return(nil)

	resp, err := f.service.RecordDelivery(context.Background(), RecordMovementRequest{
		ClientID:    client.ID,
		BottleCodes: codes,
	})
	require.NoError(t, err)

	assert.Equal(t, "delivered", resp.Type)
	assert.Equal(t, 2, resp.BottleCount)
	assert.False(t, resp.Billed)

	f.bottleRepo.AssertExpectations(t)
	f.txRepo.AssertExpectations(t)
}

func TestRecordDelivery_LowercaseCodesAreNormalized(t *testing.T) {
	f := newServiceFixture(t)
	client := activeClient(t)
	bottles := []inventory.Bottle{stockBottle(t, "SV-101")}

	f.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	f.bottleRepo.On("FindByCodes", mock.Anything, []string{"SV-101"}).Return(bottles, nil)
	f.bottleRepo.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)
	f.txRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.RecordDelivery(context.Background(), RecordMovementRequest{
		ClientID:    client.ID,
		BottleCodes: []string{" sv-101 "},
	})
	require.NoError(t, err)
}

func TestRecordDelivery_BottleNotInStock(t *testing.T) {
	f := newServiceFixture(t)
	client := activeClient(t)
	out := stockBottle(t, "SV-101")
	require.NoError(t, out.Deliver())

	f.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	f.bottleRepo.On("FindByCodes", mock.Anything, []string{"SV-101"}).Return([]inventory.Bottle{out}, nil)

	_, err := f.service.RecordDelivery(context.Background(), RecordMovementRequest{
		ClientID:    client.ID,
		BottleCodes: []string{"SV-101"},
	})
	assert.Error(t, err)

	f.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.bottleRepo.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything)
}

func TestRecordDelivery_UnknownCode(t *testing.T) {
	f := newServiceFixture(t)
	client := activeClient(t)

	f.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	f.bottleRepo.On("FindByCodes", mock.Anything, []string{"SV-101", "SV-999"}).
		Return([]inventory.Bottle{stockBottle(t, "SV-101")}, nil)

	_, err := f.service.RecordDelivery(context.Background(), RecordMovementRequest{
		ClientID:    client.ID,
		BottleCodes: []string{"SV-101", "SV-999"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SV-999")
}

func TestRecordDelivery_InactiveClient(t *testing.T) {
	f := newServiceFixture(t)
	client := activeClient(t)
	require.NoError(t, client.Deactivate())

	f.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

	_, err := f.service.RecordDelivery(context.Background(), RecordMovementRequest{
		ClientID:    client.ID,
		BottleCodes: []string{"SV-101"},
	})
	assert.Error(t, err)
}

func TestRecordDelivery_DuplicateCodes(t *testing.T) {
	f := newServiceFixture(t)
	client := activeClient(t)

	f.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)

	_, err := f.service.RecordDelivery(context.Background(), RecordMovementRequest{
		ClientID:    client.ID,
		BottleCodes: []string{"SV-101", "sv-101"},
	})
	assert.Error(t, err)
}

func TestRecordReturn_Success(t *testing.T) {
	f := newServiceFixture(t)
	client := activeClient(t)
	out := stockBottle(t, "SV-101")
	require.NoError(t, out.Deliver())

	f.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	f.bottleRepo.On("FindByCodes", mock.Anything, []string{"SV-101"}).Return([]inventory.Bottle{out}, nil)
	f.bottleRepo.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)
	f.txRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.service.RecordReturn(context.Background(), RecordMovementRequest{
		ClientID:    client.ID,
		BottleCodes: []string{"SV-101"},
	})
	require.NoError(t, err)

	assert.Equal(t, "returned", resp.Type)
	assert.Equal(t, 1, resp.BottleCount)
}

func TestRecordReturn_BottleInStock(t *testing.T) {
	f := newServiceFixture(t)
	client := activeClient(t)

	f.clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	f.bottleRepo.On("FindByCodes", mock.Anything, []string{"SV-101"}).
		Return([]inventory.Bottle{stockBottle(t, "SV-101")}, nil)

	_, err := f.service.RecordReturn(context.Background(), RecordMovementRequest{
		ClientID:    client.ID,
		BottleCodes: []string{"SV-101"},
	})
	assert.Error(t, err)
}
