package partner

import (
	"time"

	"github.com/bottleops/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Contact     string `json:"contact" binding:"required,len=10,numeric"`
	AltContact  string `json:"alt_contact" binding:"omitempty,len=10,numeric"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Address     string `json:"address" binding:"max=500"`
	CompanyName string `json:"company_name" binding:"max=150"`
	GSTNumber   string `json:"gst_number" binding:"max=20"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Contact     string `json:"contact" binding:"required,len=10,numeric"`
	AltContact  string `json:"alt_contact" binding:"omitempty,len=10,numeric"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Address     string `json:"address" binding:"max=500"`
	CompanyName string `json:"company_name" binding:"max=150"`
	GSTNumber   string `json:"gst_number" binding:"max=20"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Contact     string    `json:"contact"`
	AltContact  string    `json:"alt_contact,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	CompanyName string    `json:"company_name,omitempty"`
	GSTNumber   string    `json:"gst_number,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClientListFilter represents filter options for the client list
type ClientListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
}

// ToClientResponse converts a client aggregate to its response representation.
func ToClientResponse(client *partner.Client) ClientResponse {
	return ClientResponse{
		ID:          client.ID,
		Name:        client.Name,
		Contact:     client.Contact,
		AltContact:  client.AltContact,
		Email:       client.Email,
		Address:     client.Address,
		CompanyName: client.CompanyName,
		GSTNumber:   client.GSTNumber,
		Status:      string(client.Status),
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}
}
