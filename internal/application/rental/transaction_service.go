package rental

import (
	"context"
	"fmt"
	"strings"

	"github.com/bottleops/backend/internal/domain/inventory"
	"github.com/bottleops/backend/internal/domain/partner"
	"github.com/bottleops/backend/internal/domain/rental"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionService records bottle movement between the warehouse and
// clients. Each movement writes the transaction and updates every bottle
// status atomically.
type TransactionService struct {
	scope      TransactionScope
	clientRepo partner.ClientRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(scope TransactionScope, clientRepo partner.ClientRepository) *TransactionService {
	return &TransactionService{
		scope:      scope,
		clientRepo: clientRepo,
	}
}

// RecordDelivery records bottles going out to a client. Every bottle must
// currently be in stock.
func (s *TransactionService) RecordDelivery(ctx context.Context, req RecordMovementRequest) (*TransactionResponse, error) {
	return s.recordMovement(ctx, rental.TransactionTypeDelivered, req)
}

// RecordReturn records bottles coming back from a client. Every bottle
// must currently be out with a client.
func (s *TransactionService) RecordReturn(ctx context.Context, req RecordMovementRequest) (*TransactionResponse, error) {
	return s.recordMovement(ctx, rental.TransactionTypeReturned, req)
}

func (s *TransactionService) recordMovement(ctx context.Context, txType rental.TransactionType, req RecordMovementRequest) (*TransactionResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if !client.IsActive() {
		return nil, shared.NewDomainError("CLIENT_INACTIVE", "Cannot record transactions for an inactive client")
	}

	codes, err := normalizeCodes(req.BottleCodes)
	if err != nil {
		return nil, err
	}

	var response TransactionResponse
	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		bottles, err := repos.BottleRepo().FindByCodes(ctx, codes)
		if err != nil {
			return err
		}
		if len(bottles) != len(codes) {
			return missingCodesError(codes, bottles)
		}

		bottleIDs := make([]uuid.UUID, 0, len(bottles))
		for i := range bottles {
			bottle := &bottles[i]
			if txType == rental.TransactionTypeDelivered {
				if err := bottle.Deliver(); err != nil {
					return err
				}
			} else {
				if err := bottle.Return(); err != nil {
					return err
				}
			}
			bottleIDs = append(bottleIDs, bottle.ID)
		}

		tx, err := rental.NewTransaction(txType, req.ClientID, bottleIDs, req.PhotoKey, req.RecordedBy)
		if err != nil {
			return err
		}

		toSave := make([]*inventory.Bottle, 0, len(bottles))
		for i := range bottles {
			toSave = append(toSave, &bottles[i])
		}
		if err := repos.BottleRepo().SaveBatch(ctx, toSave); err != nil {
			return err
		}
		if err := repos.RentalTransactionRepo().Create(ctx, tx); err != nil {
			return err
		}

		response = ToTransactionResponse(tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a single transaction.
func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (*TransactionResponse, error) {
	var response TransactionResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		tx, err := repos.RentalTransactionRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		response = ToTransactionResponse(tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// List retrieves transactions with filtering and pagination.
func (s *TransactionService) List(ctx context.Context, filter TransactionListFilter) ([]TransactionResponse, int64, error) {
	domainFilter := rental.TransactionFilter{
		ClientID: filter.ClientID,
		Billed:   filter.Billed,
		From:     filter.From,
		To:       filter.To,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if filter.Type != "" {
		txType := rental.TransactionType(filter.Type)
		domainFilter.Type = &txType
	}
	if domainFilter.Page <= 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize <= 0 {
		domainFilter.PageSize = 20
	}

	var responses []TransactionResponse
	var total int64
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		transactions, count, err := repos.RentalTransactionRepo().List(ctx, domainFilter)
		if err != nil {
			return err
		}
		responses = make([]TransactionResponse, 0, len(transactions))
		for i := range transactions {
			responses = append(responses, ToTransactionResponse(&transactions[i]))
		}
		total = count
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

func normalizeCodes(codes []string) ([]string, error) {
	seen := make(map[string]bool, len(codes))
	normalized := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if err := inventory.ValidateBottleCode(code); err != nil {
			return nil, err
		}
		if seen[code] {
			return nil, shared.NewDomainError("DUPLICATE_BOTTLE", fmt.Sprintf("Bottle %s is listed more than once", code))
		}
		seen[code] = true
		normalized = append(normalized, code)
	}
	return normalized, nil
}

func missingCodesError(requested []string, found []inventory.Bottle) error {
	known := make(map[string]bool, len(found))
	for _, b := range found {
		known[b.Code] = true
	}
	missing := make([]string, 0)
	for _, code := range requested {
		if !known[code] {
			missing = append(missing, code)
		}
	}
	return shared.NewDomainError("UNKNOWN_BOTTLE", fmt.Sprintf("Unknown bottle codes: %s", strings.Join(missing, ", ")))
}
