package rental

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TransactionFilter holds typed query parameters for listing transactions
type TransactionFilter struct {
	ClientID   *uuid.UUID
	Type       *TransactionType
	Billed     *bool
	RecordedBy *uuid.UUID
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

// TransactionRepository defines the interface for rental transaction
// persistence. Implementations must preload the bottle links so that
// BottleCount reflects the full transaction.
type TransactionRepository interface {
	// Create persists a new transaction with its bottle links
	Create(ctx context.Context, tx *Transaction) error

	// FindByID finds a transaction by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)

	// FindByIDsForClient finds the given transactions, restricted to one client
	FindByIDsForClient(ctx context.Context, clientID uuid.UUID, ids []uuid.UUID) ([]Transaction, error)

	// FindUnbilledByClient finds all transactions of a client with
	// billed = false, excluding the given transaction IDs
	FindUnbilledByClient(ctx context.Context, clientID uuid.UUID, exclude []uuid.UUID) ([]Transaction, error)

	// List lists transactions matching the filter, newest first
	List(ctx context.Context, filter TransactionFilter) ([]Transaction, int64, error)

	// SetBilled updates the billed flag on the given transactions
	SetBilled(ctx context.Context, ids []uuid.UUID, billed bool) error
}
