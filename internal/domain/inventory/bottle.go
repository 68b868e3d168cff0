package inventory

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bottleops/backend/internal/domain/shared"
)

// BottleStatus represents where a bottle currently is
type BottleStatus string

const (
	// BottleStatusInStock means the bottle is in the warehouse and available for delivery
	BottleStatusInStock BottleStatus = "in_stock"
	// BottleStatusDelivered means the bottle is out with a client
	BottleStatusDelivered BottleStatus = "delivered"
)

// Bottle represents a single gas cylinder tracked by its unique code.
// It is the aggregate root for inventory operations.
type Bottle struct {
	shared.BaseAggregateRoot
	Code   string       `gorm:"type:varchar(10);not null;uniqueIndex"`
	Status BottleStatus `gorm:"type:varchar(10);not null;default:'in_stock'"`
}

// TableName returns the table name for GORM
func (Bottle) TableName() string {
	return "bottles"
}

var bottleCodePattern = regexp.MustCompile(`^[A-Z]{1,5}-\d+$`)

// NewBottle creates a new bottle in stock with the given code
func NewBottle(code string) (*Bottle, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if err := ValidateBottleCode(code); err != nil {
		return nil, err
	}
	return &Bottle{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Status:            BottleStatusInStock,
	}, nil
}

// ValidateBottleCode checks the series-prefix code format (e.g. SV-101)
func ValidateBottleCode(code string) error {
	if !bottleCodePattern.MatchString(code) {
		return shared.NewDomainError("INVALID_BOTTLE_CODE", "Bottle code must look like SV-101 (series prefix, dash, number)")
	}
	if len(code) > 10 {
		return shared.NewDomainError("INVALID_BOTTLE_CODE", "Bottle code cannot exceed 10 characters")
	}
	return nil
}

// Deliver moves the bottle from stock to a client
func (b *Bottle) Deliver() error {
	if b.Status != BottleStatusInStock {
		return shared.NewDomainError("BOTTLE_NOT_IN_STOCK",
			fmt.Sprintf("Bottle %s is not in stock (status: %s)", b.Code, b.Status))
	}
	b.Status = BottleStatusDelivered
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// Return brings the bottle back from a client into stock
func (b *Bottle) Return() error {
	if b.Status != BottleStatusDelivered {
		return shared.NewDomainError("BOTTLE_NOT_DELIVERED",
			fmt.Sprintf("Bottle %s is not with a client (status: %s)", b.Code, b.Status))
	}
	b.Status = BottleStatusInStock
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
	return nil
}

// IsInStock returns true if the bottle is available for delivery
func (b *Bottle) IsInStock() bool {
	return b.Status == BottleStatusInStock
}

// GenerateCodeSeries builds the bottle codes for a series prefix and an
// inclusive numeric range, e.g. ("SV", 101, 103) -> SV-101, SV-102, SV-103.
func GenerateCodeSeries(prefix string, start, end int) ([]string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" || len(prefix) > 5 {
		return nil, shared.NewDomainError("INVALID_SERIES", "Series prefix must be 1 to 5 characters")
	}
	if start < 1 || end < 1 {
		return nil, shared.NewDomainError("INVALID_SERIES", "Series numbers must be positive")
	}
	if start > end {
		return nil, shared.NewDomainError("INVALID_SERIES", "Start number must be less than or equal to end number")
	}

	codes := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		code := fmt.Sprintf("%s-%d", prefix, i)
		if err := ValidateBottleCode(code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}
