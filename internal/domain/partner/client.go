package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/bottleops/backend/internal/domain/shared"
)

// ClientStatus represents the status of a client account
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// Client represents a rental client in the partner context.
// It is the aggregate root for client-related operations.
type Client struct {
	shared.BaseAggregateRoot
	Name        string       `gorm:"type:varchar(100);not null"`
	Contact     string       `gorm:"type:varchar(10);not null;index"`
	AltContact  string       `gorm:"type:varchar(10)"`
	Email       string       `gorm:"type:varchar(200);index"`
	Address     string       `gorm:"type:text"`
	CompanyName string       `gorm:"type:varchar(150)"`
	GSTNumber   string       `gorm:"type:varchar(20)"`
	Status      ClientStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client with required fields
func NewClient(name, contact, email, address string) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}
	if err := validateContact(contact); err != nil {
		return nil, err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}

	client := &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Contact:           contact,
		Email:             strings.ToLower(email),
		Address:           address,
		Status:            ClientStatusActive,
	}

	client.AddDomainEvent(NewClientCreatedEvent(client))

	return client, nil
}

// Update updates the client's basic information
func (c *Client) Update(name, contact, email, address string) error {
	if err := validateClientName(name); err != nil {
		return err
	}
	if err := validateContact(contact); err != nil {
		return err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.Name = name
	c.Contact = contact
	c.Email = strings.ToLower(email)
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewClientUpdatedEvent(c))

	return nil
}

// SetCompanyDetails sets the optional business details of the client
func (c *Client) SetCompanyDetails(companyName, gstNumber string) error {
	if companyName != "" && len(companyName) > 150 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 150 characters")
	}
	if gstNumber != "" && len(gstNumber) > 20 {
		return shared.NewDomainError("INVALID_GST_NUMBER", "GST number cannot exceed 20 characters")
	}

	c.CompanyName = companyName
	c.GSTNumber = strings.ToUpper(gstNumber)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetAltContact sets the optional alternate contact number
func (c *Client) SetAltContact(altContact string) error {
	if altContact != "" {
		if err := validateContact(altContact); err != nil {
			return err
		}
	}
	c.AltContact = altContact
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Deactivate marks the client inactive
func (c *Client) Deactivate() error {
	if c.Status == ClientStatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Client is already inactive")
	}
	c.Status = ClientStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Activate marks the client active
func (c *Client) Activate() error {
	if c.Status == ClientStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Client is already active")
	}
	c.Status = ClientStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// IsActive returns true if the client is active
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}

var (
	contactPattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func validateClientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Client name cannot exceed 100 characters")
	}
	return nil
}

func validateContact(contact string) error {
	if !contactPattern.MatchString(contact) {
		return shared.NewDomainError("INVALID_CONTACT", "Contact number must be exactly 10 digits")
	}
	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	return nil
}
