package partner

import (
	"context"

	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindByContact finds a client by contact number
	FindByContact(ctx context.Context, contact string) (*Client, error)

	// FindAll finds all clients matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// Delete deletes a client
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts clients matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByContact checks if a client with the given contact number exists
	ExistsByContact(ctx context.Context, contact string) (bool, error)
}
