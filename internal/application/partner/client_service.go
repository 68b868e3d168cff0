package partner

import (
	"context"

	"github.com/bottleops/backend/internal/domain/partner"
	"github.com/bottleops/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	exists, err := s.clientRepo.ExistsByContact(ctx, req.Contact)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this contact number already exists")
	}

	client, err := partner.NewClient(req.Name, req.Contact, req.Email, req.Address)
	if err != nil {
		return nil, err
	}

	if req.AltContact != "" {
		if err := client.SetAltContact(req.AltContact); err != nil {
			return nil, err
		}
	}
	if req.CompanyName != "" || req.GSTNumber != "" {
		if err := client.SetCompanyDetails(req.CompanyName, req.GSTNumber); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Update updates a client's details
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Contact != client.Contact {
		exists, err := s.clientRepo.ExistsByContact(ctx, req.Contact)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this contact number already exists")
		}
	}

	if err := client.Update(req.Name, req.Contact, req.Email, req.Address); err != nil {
		return nil, err
	}
	if err := client.SetAltContact(req.AltContact); err != nil {
		return nil, err
	}
	if err := client.SetCompanyDetails(req.CompanyName, req.GSTNumber); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, ToClientResponse(&clients[i]))
	}
	return responses, total, nil
}

// Deactivate marks a client inactive
func (s *ClientService) Deactivate(ctx context.Context, clientID uuid.UUID) error {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return err
	}
	if err := client.Deactivate(); err != nil {
		return err
	}
	return s.clientRepo.Save(ctx, client)
}

// Activate marks a client active
func (s *ClientService) Activate(ctx context.Context, clientID uuid.UUID) error {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return err
	}
	if err := client.Activate(); err != nil {
		return err
	}
	return s.clientRepo.Save(ctx, client)
}

// Delete removes a client
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, clientID); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, clientID)
}
